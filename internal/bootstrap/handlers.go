package bootstrap

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/voiceowl/transcription-backend/internal/health"
	"github.com/voiceowl/transcription-backend/internal/ratelimit"
	"github.com/voiceowl/transcription-backend/internal/shared"
	"github.com/voiceowl/transcription-backend/internal/streaming"
	"github.com/voiceowl/transcription-backend/internal/transcription"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const version = "1.0.0"

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func retryOptions(cfg *Config) shared.RetryOptions {
	return shared.RetryOptions{
		MaxAttempts: cfg.MaxRetryAttempts,
		BaseDelay:   cfg.RetryDelay,
	}
}

func ProvideRegistry() *streaming.Registry {
	return streaming.NewRegistry()
}

func ProvideBackend() streaming.Backend {
	return streaming.NewMockBackend()
}

func ProvideAvailability(db *gorm.DB) streaming.Availability {
	return streaming.NewDBAvailability(db, 0)
}

func ProvideController(
	cfg *Config,
	store *streaming.Store,
	registry *streaming.Registry,
	backend streaming.Backend,
	avail streaming.Availability,
	logger *slog.Logger,
) *streaming.Controller {
	return streaming.NewController(streaming.ControllerConfig{
		Store:               store,
		Registry:            registry,
		Backend:             backend,
		Availability:        avail,
		Retry:               retryOptions(cfg),
		CompletionThreshold: cfg.CompletionThreshold,
		Logger:              logger,
	})
}

func ProvideWSHandler(controller *streaming.Controller, logger *slog.Logger) *streaming.WSHandler {
	return streaming.NewWSHandler(controller, logger)
}

func ProvideDownloader(cfg *Config) *transcription.Downloader {
	return transcription.NewDownloader(nil, !cfg.IsProduction())
}

func ProvideTranscriptionService(cfg *Config, store *transcription.Store, downloader *transcription.Downloader, logger *slog.Logger) *transcription.Service {
	return transcription.NewService(store, downloader, retryOptions(cfg), logger)
}

func ProvideAzureService(cfg *Config, downloader *transcription.Downloader, logger *slog.Logger) *transcription.AzureService {
	return transcription.NewAzureService(transcription.AzureConfig{
		SpeechKey:    cfg.AzureSpeechKey,
		SpeechRegion: cfg.AzureSpeechRegion,
	}, downloader, retryOptions(cfg), logger)
}

func ProvideTranscriptionHandler(service *transcription.Service, azure *transcription.AzureService, logger *slog.Logger) *transcription.Handler {
	return transcription.NewHandler(service, azure, logger.With("handler", "transcription"))
}

func ProvideRateLimiter(cfg *Config, redisClient *redis.Client, logger *slog.Logger) *ratelimit.Limiter {
	return ratelimit.New(redisClient, cfg.RateLimitRequests, cfg.RateLimitWindow, logger)
}

func ProvideHealthHandler(db *gorm.DB, redisClient *redis.Client, registry *streaming.Registry) *health.Handler {
	return health.NewHandler(db, redisClient, registry, version)
}

type HandlerParams struct {
	fx.In

	TranscriptionHandler *transcription.Handler
	WSHandler            *streaming.WSHandler
	HealthHandler        *health.Handler
	RateLimiter          *ratelimit.Limiter
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	params.HealthHandler.RegisterRoutes(e)

	api := e.Group("/v1")
	api.Use(params.RateLimiter.Middleware())

	params.TranscriptionHandler.RegisterRoutes(api)
	params.WSHandler.RegisterRoutes(api)

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler())
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideRegistry,
		ProvideBackend,
		ProvideAvailability,
		ProvideController,
		ProvideWSHandler,
		ProvideDownloader,
		ProvideTranscriptionService,
		ProvideAzureService,
		ProvideTranscriptionHandler,
		ProvideRateLimiter,
		ProvideHealthHandler,
	),
	fx.Invoke(RegisterRoutes),
)
