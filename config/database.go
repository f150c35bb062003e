package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"vitaltrack"`
	Password string `env:"PASSWORD" envDefault:"vitaltrack"`
	Name     string `env:"NAME"     envDefault:"vitaltrack"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// CacheConfig contains cache configuration (Redis-based).
type CacheConfig struct {
	// TipTTL is the TTL for cached LLM tip responses.
	TipTTL time.Duration `env:"CACHE_TIP_TTL" envDefault:"24h"`

	// ResourceTTL is the TTL for cached third-party health resource lookups.
	ResourceTTL time.Duration `env:"CACHE_RESOURCE_TTL" envDefault:"1h"`
}
