package config

import "time"

// AuthConfig groups authentication and token configuration.
type AuthConfig struct {
	// JWTSecret signs identity tokens. The process refuses to start without it.
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenTTL is the lifetime of an issued identity token and its cookie.
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"168h"`

	// CookieName is the session cookie carrying the identity token.
	CookieName string `env:"AUTH_COOKIE_NAME" envDefault:"vt_session"`

	// BcryptCost is the bcrypt cost factor for password hashing (4-31).
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"12"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenTTL <= 0 {
		a.TokenTTL = 168 * time.Hour
	}
	if a.CookieName == "" {
		a.CookieName = "vt_session"
	}
}
