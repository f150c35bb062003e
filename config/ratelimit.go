package config

import "time"

// RateLimitRule configures a single fixed-window limiter instance.
type RateLimitRule struct {
	Window time.Duration `env:"WINDOW"`
	Max    int           `env:"MAX"`
}

// RateLimitConfig groups the per-route-class rate limit rules.
// Authentication and password-change routes get stricter limits than
// general API routes.
type RateLimitConfig struct {
	Auth     RateLimitRule `envPrefix:"RATE_LIMIT_AUTH_"`
	Password RateLimitRule `envPrefix:"RATE_LIMIT_PASSWORD_"`
	API      RateLimitRule `envPrefix:"RATE_LIMIT_API_"`

	// UseRedis switches the window counter store from in-process memory to
	// Redis, sharing counts across instances.
	UseRedis bool `env:"RATE_LIMIT_USE_REDIS" envDefault:"false"`
}

// Sanitize applies defaults for unset or nonsensical rules.
func (c *RateLimitConfig) Sanitize() {
	c.Auth.sanitize(15*time.Minute, 10)
	c.Password.sanitize(15*time.Minute, 5)
	c.API.sanitize(15*time.Minute, 100)
}

func (r *RateLimitRule) sanitize(window time.Duration, maxReq int) {
	if r.Window <= 0 {
		r.Window = window
	}
	if r.Max <= 0 {
		r.Max = maxReq
	}
}
