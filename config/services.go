package config

import "time"

// MedlinePlusConfig configures the MedlinePlus Connect client.
type MedlinePlusConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://wsearch.nlm.nih.gov/ws/query"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"10s"`
	// RPS throttles outbound requests (NLM asks clients to stay under 85/min).
	RPS float64 `env:"RPS" envDefault:"1"`
}

// HealthFinderConfig configures the Health.gov MyHealthFinder client.
type HealthFinderConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://odphp.health.gov/myhealthfinder/api/v3"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"10s"`
	RPS     float64       `env:"RPS"      envDefault:"2"`
}

// LLMConfig configures the chat-completions client used for tip generation.
type LLMConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.openai.com/v1"`
	APIKey  string        `env:"API_KEY"`
	Model   string        `env:"MODEL"    envDefault:"gpt-4o-mini"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"30s"`
}

// ServicesConfig groups third-party service configuration.
type ServicesConfig struct {
	MedlinePlus  MedlinePlusConfig  `envPrefix:"MEDLINEPLUS_"`
	HealthFinder HealthFinderConfig `envPrefix:"HEALTHFINDER_"`
	LLM          LLMConfig          `envPrefix:"LLM_"`
}

// Sanitize applies guardrails to service configuration values.
func (s *ServicesConfig) Sanitize() {
	if s.MedlinePlus.Timeout <= 0 {
		s.MedlinePlus.Timeout = 10 * time.Second
	}
	if s.HealthFinder.Timeout <= 0 {
		s.HealthFinder.Timeout = 10 * time.Second
	}
	if s.LLM.Timeout <= 0 {
		s.LLM.Timeout = 30 * time.Second
	}
}
