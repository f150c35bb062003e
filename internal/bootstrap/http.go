package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/vitaltrack/vitaltrack/config"
	httpx "github.com/vitaltrack/vitaltrack/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Auth:      cfg.Services.Auth,
		Profiles:  cfg.Services.Profiles,
		Resources: cfg.Services.Resources,
		Tips:      cfg.Services.Tips,
		Saved:     cfg.Services.Saved,
		Verifier:  cfg.Services.Tokens,
		Cookies: httpx.CookiePolicy{
			Name:   appCfg.Auth.CookieName,
			Domain: appCfg.HTTP.CookieDomain,
			Secure: !appCfg.IsDev,
			TTL:    appCfg.Auth.TokenTTL,
		},
		Limiters: cfg.Services.Limiters,
		Logger:   logger,
	}

	handler := buildHTTPHandler(httpHandlerConfig{
		Logger:   logger,
		Services: services,
		HTTP:     appCfg.HTTP,
		IsDev:    appCfg.IsDev,
	})

	server := startServer(logger, handler, appCfg.HTTP.Addr)

	return server
}

type httpHandlerConfig struct {
	Logger   *slog.Logger
	Services httpx.RouterServices
	HTTP     config.HTTPConfig
	IsDev    bool
}

// The fixed cross-origin grant. Mirrors the cors.Options below and is
// stamped onto every response, not only preflights.
const (
	corsAllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowedHeaders = "Content-Type, Authorization"
	corsMaxAgeSeconds  = "86400"
)

func buildHTTPHandler(cfg httpHandlerConfig) http.Handler {
	router := httpx.NewRouter(cfg.Services)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.HTTP.CORSOrigins(cfg.IsDev),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	// Order: Recover -> Logging -> CORS stamp -> CORS -> Router
	h := corsHandler.Handler(router)
	h = stampCORSHeaders(h)
	h = httpx.Logging(cfg.Logger)(h)
	h = httpx.Recover(cfg.Logger, cfg.IsDev)(h)

	return h
}

// stampCORSHeaders forces the fixed method/header/max-age grant onto every
// response. The cors library emits those headers only on preflights, and
// echoes just the requested method; clients here expect the full permitted
// surface on success, denial, and preflight responses alike.
func stampCORSHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&corsStampWriter{ResponseWriter: w}, r)
	})
}

type corsStampWriter struct {
	http.ResponseWriter
	stamped bool
}

func (w *corsStampWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *corsStampWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

// stamp sets the grant headers just before the first byte of the response
// goes out, so it also overrides the method echo the cors library writes on
// preflight responses.
func (w *corsStampWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	h := w.Header()
	h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
	h.Set("Access-Control-Max-Age", corsMaxAgeSeconds)
}

func startServer(logger *slog.Logger, handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}

	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}

	return nil
}
