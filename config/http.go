package config

// HTTPConfig contains HTTP server and CORS configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://app.example.com").
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// AllowedOrigins is the list of origins permitted by CORS in production.
	AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" envSeparator:"," envDefault:""`

	// DevOrigin is the origin permitted by CORS in development mode.
	DevOrigin string `env:"HTTP_DEV_ORIGIN" envDefault:"http://localhost:5173"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.Addr == "" {
		h.Addr = ":8080"
	}
	if h.DevOrigin == "" {
		h.DevOrigin = "http://localhost:5173"
	}
}

// CORSOrigins returns the origins to allow given the dev-mode flag.
func (h *HTTPConfig) CORSOrigins(isDev bool) []string {
	if isDev || len(h.AllowedOrigins) == 0 {
		return []string{h.DevOrigin}
	}
	return h.AllowedOrigins
}
