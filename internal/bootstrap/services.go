package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/vitaltrack/vitaltrack/config"
	"github.com/vitaltrack/vitaltrack/internal/adapters/healthfinder"
	"github.com/vitaltrack/vitaltrack/internal/adapters/llm"
	"github.com/vitaltrack/vitaltrack/internal/adapters/medlineplus"
	"github.com/vitaltrack/vitaltrack/internal/data"
	httpx "github.com/vitaltrack/vitaltrack/internal/http"
	"github.com/vitaltrack/vitaltrack/internal/ports"
	"github.com/vitaltrack/vitaltrack/internal/ratelimit"
	"github.com/vitaltrack/vitaltrack/internal/security"
	"github.com/vitaltrack/vitaltrack/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Profiles  *service.ProfileService
	Resources *service.ResourceService
	Tips      *service.TipService
	Saved     *service.SavedItemService

	Tokens   *security.TokenService
	Limiters httpx.RouteLimiters
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	UserRepo      *data.UserRepo
	ProfileRepo   *data.ProfileRepo
	SavedItemRepo *data.SavedItemRepo
	CacheRepo     *data.RedisCacheRepo
}

// NewServices wires repositories, adapters, and services. The context bounds
// background work owned by the container (the in-memory rate limit janitor);
// cancel it on shutdown.
func NewServices(ctx context.Context, deps *ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos, err := buildRepositories(deps, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	tokens, err := security.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("token service: %w", err)
	}

	limiters, err := buildLimiters(ctx, cfg, deps.RedisClient)
	if err != nil {
		return ServiceContainer{}, err
	}

	authSvc, err := service.NewAuthService(service.AuthServiceOptions{
		Users:  repos.UserRepo,
		Hasher: security.NewHasher(cfg.Auth.BcryptCost),
		Tokens: tokens,
		Logger: logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("auth service: %w", err)
	}

	profileSvc, err := service.NewProfileService(service.ProfileServiceOptions{
		Profiles: repos.ProfileRepo,
		Logger:   logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("profile service: %w", err)
	}

	// Keep the interface nil when no cache backend exists; a typed nil
	// pointer would slip past the services' nil checks.
	var cache ports.CacheRepository
	if repos.CacheRepo != nil {
		cache = repos.CacheRepo
	}

	resourceSvc, err := service.NewResourceService(service.ResourceServiceOptions{
		Sources:  buildTopicSources(cfg.Services, logger),
		Cache:    cache,
		CacheTTL: cfg.Cache.ResourceTTL,
		Logger:   logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("resource service: %w", err)
	}

	tipSvc, err := service.NewTipService(service.TipServiceOptions{
		Profiles:  repos.ProfileRepo,
		Generator: buildTipGenerator(cfg.Services.LLM, logger),
		Cache:     cache,
		CacheTTL:  cfg.Cache.TipTTL,
		Logger:    logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("tip service: %w", err)
	}

	savedSvc, err := service.NewSavedItemService(service.SavedItemServiceOptions{
		Items:  repos.SavedItemRepo,
		Logger: logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("saved item service: %w", err)
	}

	return ServiceContainer{
		Auth:      authSvc,
		Profiles:  profileSvc,
		Resources: resourceSvc,
		Tips:      tipSvc,
		Saved:     savedSvc,
		Tokens:    tokens,
		Limiters:  limiters,
	}, nil
}

// buildRepositories builds data adapters backing service ports; no business rules here.
func buildRepositories(deps *ServiceDeps, logger *slog.Logger) (*serviceRepositories, error) {
	enc, err := CreateEncryptor(deps.Config.ProfileEncryptionKey, deps.Config.IsDev, logger)
	if err != nil {
		return nil, fmt.Errorf("profile encryptor: %w", err)
	}

	repos := &serviceRepositories{
		UserRepo:      data.NewUserRepo(deps.DB),
		ProfileRepo:   data.NewProfileRepo(deps.DB, enc),
		SavedItemRepo: data.NewSavedItemRepo(deps.DB),
	}
	if deps.RedisClient != nil {
		repos.CacheRepo = data.NewRedisCacheRepo(deps.RedisClient)
	}
	return repos, nil
}

// buildTopicSources constructs the external health information providers in
// merge order.
func buildTopicSources(cfg config.ServicesConfig, logger *slog.Logger) []ports.TopicSource {
	medline := medlineplus.NewClient(medlineplus.ClientOptions{
		BaseURL:           cfg.MedlinePlus.BaseURL,
		HTTPClient:        &http.Client{Timeout: cfg.MedlinePlus.Timeout},
		Logger:            logger,
		RequestsPerSecond: cfg.MedlinePlus.RPS,
	})
	finder := healthfinder.NewClient(healthfinder.ClientOptions{
		BaseURL:           cfg.HealthFinder.BaseURL,
		HTTPClient:        &http.Client{Timeout: cfg.HealthFinder.Timeout},
		Logger:            logger,
		RequestsPerSecond: cfg.HealthFinder.RPS,
	})
	return []ports.TopicSource{medline, finder}
}

//nolint:ireturn // the tip service depends on the TipGenerator port, not the concrete client.
func buildTipGenerator(cfg config.LLMConfig, logger *slog.Logger) ports.TipGenerator {
	client, err := llm.NewClient(llm.ClientOptions{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Logger:     logger,
	})
	if err != nil {
		// Config sanitation guarantees BaseURL and Model; reaching here means
		// both were explicitly blanked, so fall back to an unusable client and
		// let the tip endpoint surface the failure.
		logger.Warn("tip generator misconfigured, daily tips will be unavailable", "error", err)
		return unavailableTipGenerator{}
	}
	return client
}

// unavailableTipGenerator is the stand-in when no LLM endpoint is configured.
type unavailableTipGenerator struct{}

func (unavailableTipGenerator) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("tip generator is not configured")
}

// buildLimiters constructs the per-route-class rate limiters. When Redis is
// not selected as the counter store, a shared in-memory store is used and its
// janitor runs until ctx is canceled.
func buildLimiters(ctx context.Context, cfg *config.AppConfig, redisClient redis.UniversalClient) (httpx.RouteLimiters, error) {
	var store ratelimit.WindowStore
	if cfg.RateLimit.UseRedis && redisClient != nil {
		store = ratelimit.NewRedisStore(redisClient)
	} else {
		mem := ratelimit.NewMemoryStore()
		mem.StartJanitor(ctx)
		store = mem
	}

	auth, err := ratelimit.New(ratelimit.Config{
		Window:  cfg.RateLimit.Auth.Window,
		Max:     cfg.RateLimit.Auth.Max,
		Message: "Too many attempts, please try again later",
	}, store)
	if err != nil {
		return httpx.RouteLimiters{}, fmt.Errorf("auth rate limiter: %w", err)
	}

	password, err := ratelimit.New(ratelimit.Config{
		Window:  cfg.RateLimit.Password.Window,
		Max:     cfg.RateLimit.Password.Max,
		Message: "Too many attempts, please try again later",
	}, store)
	if err != nil {
		return httpx.RouteLimiters{}, fmt.Errorf("password rate limiter: %w", err)
	}

	api, err := ratelimit.New(ratelimit.Config{
		Window:  cfg.RateLimit.API.Window,
		Max:     cfg.RateLimit.API.Max,
		Message: "Too many requests, please try again later",
	}, store)
	if err != nil {
		return httpx.RouteLimiters{}, fmt.Errorf("api rate limiter: %w", err)
	}

	return httpx.RouteLimiters{Auth: auth, Password: password, API: api}, nil
}
