package bootstrap

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitaltrack/vitaltrack/config"
	"github.com/vitaltrack/vitaltrack/internal/domain/model"
)

func testRateLimitConfig() *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.RateLimit.Sanitize()
	return cfg
}

func TestBuildLimiters_MemoryStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiters, err := buildLimiters(ctx, testRateLimitConfig(), nil)
	require.NoError(t, err)
	require.NotNil(t, limiters.Auth)
	require.NotNil(t, limiters.Password)
	require.NotNil(t, limiters.API)

	// Instances share a store but count independently per configured class.
	denial, err := limiters.Auth.Allow(ctx, "1.2.3.4|/api/auth/login")
	require.NoError(t, err)
	assert.Nil(t, denial)
}

func TestBuildLimiters_DeniesPastAuthCap(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := testRateLimitConfig()
	limiters, err := buildLimiters(ctx, cfg, nil)
	require.NoError(t, err)

	var denied bool
	for i := 0; i < cfg.RateLimit.Auth.Max+1; i++ {
		denial, allowErr := limiters.Auth.Allow(ctx, "9.9.9.9|/api/auth/login")
		require.NoError(t, allowErr)
		denied = denial != nil
	}
	assert.True(t, denied, "request %d should exceed the auth window cap", cfg.RateLimit.Auth.Max+1)
}

func TestBuildTopicSources_Order(t *testing.T) {
	var svcCfg config.ServicesConfig
	svcCfg.Sanitize()
	svcCfg.MedlinePlus.BaseURL = "https://wsearch.nlm.nih.gov/ws/query"
	svcCfg.HealthFinder.BaseURL = "https://odphp.health.gov/myhealthfinder/api/v3"

	sources := buildTopicSources(svcCfg, slog.New(slog.DiscardHandler))
	require.Len(t, sources, 2)
	assert.Equal(t, model.SourceMedlinePlus, sources[0].Name())
	assert.Equal(t, model.SourceHealthFinder, sources[1].Name())
}

func TestBuildTipGenerator_Misconfigured(t *testing.T) {
	gen := buildTipGenerator(config.LLMConfig{Timeout: time.Second}, slog.New(slog.DiscardHandler))
	require.NotNil(t, gen)

	_, err := gen.Generate(context.Background(), "sleep: poor")
	assert.Error(t, err, "blank endpoint and model should yield an unusable generator")
}
