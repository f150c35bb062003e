package httpx

import (
	"log/slog"
	"net/http"

	"github.com/vitaltrack/vitaltrack/internal/ratelimit"
)

// RouteLimiters holds the per-class rate limiters. Each class is a distinct
// limiter instance with its own window, cap, and denial message.
type RouteLimiters struct {
	Auth     *ratelimit.Limiter // register/login
	Password *ratelimit.Limiter // password changes
	API      *ratelimit.Limiter // everything else under /api
}

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Profiles  ProfileServiceInterface
	Resources ResourceServiceInterface
	Tips      TipServiceInterface
	Saved     SavedItemServiceInterface

	Verifier TokenVerifier
	Cookies  CookiePolicy
	Limiters RouteLimiters
	Logger   *slog.Logger // optional
}

// NewRouter creates and configures the API router. The outer middleware
// chain (Recover, Logging, CORS) is applied by the bootstrap around the
// returned handler; per-route concerns (rate limits, auth) are applied here.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:      services.Auth,
		Verifier: services.Verifier,
		Cookies:  services.Cookies,
		Logger:   services.Logger,
	}
	profileHandlers := &ProfileHandlers{Svc: services.Profiles}
	resourceHandlers := &ResourceHandlers{Svc: services.Resources}
	tipHandlers := &TipHandlers{Svc: services.Tips}
	savedHandlers := &SavedItemHandlers{Svc: services.Saved}

	requireAuth := RequireAuth(services.Verifier, services.Cookies.Name)
	limitAuth := RateLimit(services.Limiters.Auth, services.Logger)
	limitPassword := RateLimit(services.Limiters.Password, services.Logger)
	limitAPI := RateLimit(services.Limiters.API, services.Logger)

	// Credential endpoints get the tight auth limiter; the password change
	// gets its own tighter one. Everything else shares the general API
	// limiter. Rate limiting runs before authentication so an attacker
	// cannot burn bcrypt time past the cap.
	handle := func(pattern string, h http.HandlerFunc, wrappers ...func(http.Handler) http.Handler) {
		var handler http.Handler = h
		for i := len(wrappers) - 1; i >= 0; i-- {
			handler = wrappers[i](handler)
		}
		mux.Handle(pattern, handler)
	}

	handle("POST /api/auth/register", authHandlers.Register, limitAuth)
	handle("POST /api/auth/login", authHandlers.Login, limitAuth)
	handle("POST /api/auth/logout", authHandlers.Logout, limitAPI, requireAuth)
	handle("PUT /api/auth/password", authHandlers.ChangePassword, limitPassword, requireAuth)
	handle("GET /api/auth/me", authHandlers.Me, limitAPI)

	handle("GET /api/profile", profileHandlers.Get, limitAPI, requireAuth)
	handle("PUT /api/profile", profileHandlers.Put, limitAPI, requireAuth)
	handle("DELETE /api/profile", profileHandlers.Delete, limitAPI, requireAuth)

	handle("GET /api/resources", resourceHandlers.Search, limitAPI, requireAuth)

	handle("GET /api/tips/daily", tipHandlers.Daily, limitAPI, requireAuth)
	handle("POST /api/tips/refresh", tipHandlers.Refresh, limitAPI, requireAuth)

	handle("GET /api/saved", savedHandlers.List, limitAPI, requireAuth)
	handle("POST /api/saved", savedHandlers.Create, limitAPI, requireAuth)
	handle("DELETE /api/saved/{id}", savedHandlers.Delete, limitAPI, requireAuth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}
