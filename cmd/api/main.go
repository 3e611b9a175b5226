package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"carbon-edu/internal/config"
	"carbon-edu/internal/db"
	apihttp "carbon-edu/internal/http"
	"carbon-edu/internal/llm"
	"carbon-edu/internal/observability"
	"carbon-edu/internal/repository"
	"carbon-edu/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	shutdownTracing, err := observability.InitTracing(ctx, cfg, logger)
	if err != nil {
		logger.Warn("tracing init failed", zap.Error(err))
	}
	defer func() {
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctxShutdown)
	}()

	factors, err := service.LoadEmissionFactors(cfg.EmissionFactorsFile)
	if err != nil {
		logger.Fatal("emission factors", zap.Error(err))
	}
	assessmentSvc := service.NewAssessmentService(factors)

	var (
		knowledge service.KnowledgeSource
		readiness func(context.Context) error
	)
	pool, err := db.NewPool(ctx, cfg)
	switch {
	case errors.Is(err, db.ErrNoDatabase):
		logger.Warn("database not configured, ai insights will run without knowledge context")
	case err != nil:
		logger.Fatal("db connect", zap.Error(err))
	default:
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		knowledge = repository.NewPgKnowledgeRepository(pool)
		readiness = func(ctx context.Context) error { return db.Ping(ctx, pool) }
	}

	var (
		cache   service.InsightCache
		limiter service.RequestRateLimiter
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisInsightCache(redisClient)
			limiter = service.NewRedisRateLimiter(redisClient, service.RateLimitPolicy{
				Route:  "insights_ai",
				Window: time.Duration(cfg.AIRateLimitWindowSec) * time.Second,
				Limit:  cfg.AIRateLimitPerMin,
			})
		}
		cancel()
	}
	if cache == nil {
		cache = service.NewMemoryInsightCache(cfg.InsightCacheMaxEntries)
	}

	llmClient, err := newLLMClient(ctx, cfg, logger)
	if err != nil {
		logger.Warn("llm client init failed, ai insights disabled", zap.Error(err))
	}
	aiSvc := service.NewAIInsightService(
		llmClient,
		knowledge,
		cache,
		time.Duration(cfg.InsightCacheTTLMin)*time.Minute,
		logger,
	)

	tokens := service.NewAccessTokenService(cfg.AuthTokenSecret, time.Duration(cfg.AuthTokenTTLMin)*time.Minute)
	if !tokens.Enabled() {
		logger.Warn("auth token secret not configured, /insights/ai is open")
	}

	var tracingService string
	if cfg.OTelEnabled {
		tracingService = cfg.OTelServiceName
	}
	router := apihttp.NewRouter(logger,
		apihttp.RouterOptions{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			TracingService: tracingService,
			Tokens:         tokens,
			Limiter:        limiter,
			Readiness:      readiness,
		},
		apihttp.NewFootprintHandler(logger, assessmentSvc),
		apihttp.NewInsightHandler(logger, aiSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctxShutdown)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

// newLLMClient devuelve nil (interfaz nula) cuando no hay API key.
func newLLMClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.LLMClient, error) {
	if !cfg.LLMEnabled() {
		return nil, llm.ErrNotConfigured
	}
	switch cfg.LLMProvider {
	case "gemini":
		client, err := llm.NewGenAIClient(ctx, cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
		return llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, timeout, zap.NewStdLog(logger)), nil
	}
}
