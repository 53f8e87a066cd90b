// Package main реализует точку входа сервиса заметок и закладок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	authcache "notemark/internal/auth/adapters/cache"
	authpostgres "notemark/internal/auth/adapters/postgres"
	authservices "notemark/internal/auth/adapters/services"
	authapp "notemark/internal/auth/app"
	"notemark/internal/auth/ports/cache"
	"notemark/internal/config"
	httpapi "notemark/internal/gateway/adapters/http"
	"notemark/internal/gateway/adapters/http/handlers"
	"notemark/internal/items/adapters/enrichment"
	itemspostgres "notemark/internal/items/adapters/postgres"
	itemsapp "notemark/internal/items/app"
	itemservices "notemark/internal/items/ports/services"
	"notemark/pkg/db/postgres"
	"notemark/pkg/db/redis"
	"notemark/pkg/logger"
	"notemark/pkg/resilience"
	"notemark/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTEMARK_LOG_MODE"
	EnvLoggerLevel = "NOTEMARK_LOG_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrMigrateDB            = "failed to apply database migrations"
	ErrInitDB               = "failed to initialize database"
	ErrInitRedis            = "redis unavailable, principal cache disabled"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrShutdown             = "shutdown finished with errors"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notemark service started"
	LogServiceShutdownDone = "notemark service shutdown complete"
	LogApplyingMigrations  = "applying database migrations"
	LogInitRepo            = "initializing repositories"
	LogInitCache           = "initializing principal cache"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing principal cache"
	LogSummarizerDisabled  = "OPENAI_API_KEY not set, bookmark summaries disabled"

	principalKeyPrefix = "principal:"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		usage, err := config.Usage()
		if err != nil {
			panic(err)
		}
		fmt.Println(usage)
		return
	}

	env := logger.ParseEnvironment(os.Getenv(EnvLoggerMode))

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		dsn := cfg.Postgres.GetConnectionURL()
		if cfg.Postgres.MigrateOnStart {
			log.Info(ctx, LogApplyingMigrations, zap.String("source", cfg.Postgres.GetMigrationsSource()))
			if err := postgres.Migrate(ctx, cfg.Postgres.GetMigrationsSource(), dsn); err != nil {
				log.Error(ctx, ErrMigrateDB, zap.Error(err))
				exitCode = 1
				return
			}
		}

		db, err := postgres.New(ctx, postgres.Options{
			DSN:             dsn,
			MinConns:        cfg.Postgres.MinConn,
			MaxConns:        cfg.Postgres.MaxConn,
			MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
			ConnectTimeout:  cfg.Postgres.ConnectTimeout,
		})
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitRepo)
		authRepos := authpostgres.NewRepositoryFactory(db.Pool())
		itemRepos := itemspostgres.NewRepositoryFactory(db.Pool())

		log.Info(ctx, LogInitCache)
		principalCache := newPrincipalCache(ctx, cfg)

		log.Info(ctx, LogInitServices)
		authSvc := authservices.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.TokenTTL, cfg.JWT.BCryptCost)
		titleFetcher := enrichment.NewTitleFetcher(nil, enrichment.FetcherOptions{
			Timeout:              cfg.Enrichment.FetchTimeout,
			UserAgent:            cfg.Enrichment.UserAgent,
			MaxBodyBytes:         cfg.Enrichment.MaxBodyBytes,
			AllowPrivateNetworks: cfg.Enrichment.AllowPrivate,
			Breaker: resilience.CircuitBreakerConfig{
				ErrorThreshold:   cfg.Enrichment.BreakerFailures,
				Timeout:          cfg.Enrichment.BreakerOpenDuration,
				SuccessThreshold: 1,
			},
		})

		var summarizer itemservices.Summarizer
		if cfg.Enrichment.SummarizerEnabled() {
			summarizer = enrichment.NewOpenAISummarizer(enrichment.SummarizerOptions{
				APIKey:  cfg.Enrichment.OpenAIKey,
				Model:   cfg.Enrichment.OpenAIModel,
				BaseURL: cfg.Enrichment.OpenAIBaseURL,
				Timeout: cfg.Enrichment.SummaryTimeout,
			})
		} else {
			log.Info(ctx, LogSummarizerDisabled)
		}

		log.Info(ctx, LogInitUseCases)
		authUseCase := authapp.NewAuthUseCase(authRepos.UserRepository(), authSvc.PasswordService(), authSvc.TokenService())
		userUseCase := authapp.NewUserUseCase(authRepos.UserRepository(), authSvc.TokenService(), principalCache, cfg.Redis.PrincipalTTL)
		noteUseCase := itemsapp.NewNoteUseCase(itemRepos.NoteRepository())
		bookmarkUseCase := itemsapp.NewBookmarkUseCase(itemRepos.BookmarkRepository(), titleFetcher, summarizer,
			cfg.Enrichment.FetchTimeout+cfg.Enrichment.SummaryTimeout)

		log.Info(ctx, LogInitHTTPServer)
		app := httpapi.NewApp(&cfg.HTTP)
		httpapi.SetupRouter(app, httpapi.Dependencies{
			Auth:      authUseCase,
			Users:     userUseCase,
			Notes:     noteUseCase,
			Bookmarks: bookmarkUseCase,
			HealthChecks: map[string]handlers.HealthCheck{
				"postgres": db.Ping,
			},
			CORSOrigins: cfg.HTTP.CORSOrigins,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := app.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		err = shutdown.Wait(ctx, cfg.Shutdown.Timeout,
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return app.ShutdownWithContext(ctx)
			},
			// Закрытие кэша принципалов.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingCache)
				return principalCache.Close()
			},
			// Закрытие пула Postgres.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				db.Close(ctx)
				return nil
			},
		)
		if err != nil {
			log.Warn(ctx, ErrShutdown, zap.Error(err))
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// newPrincipalCache подключает Redis; при ошибке сервис работает без кэша.
func newPrincipalCache(ctx context.Context, cfg *config.Config) cache.Cache {
	log := logger.Log(ctx)

	if !cfg.Redis.Enabled {
		return authcache.NewNoopCache()
	}

	client, err := redis.NewClient(ctx, redis.Config{
		Addr:         cfg.Redis.GetAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.Warn(ctx, ErrInitRedis, zap.Error(err))
		return authcache.NewNoopCache()
	}

	return authcache.NewRedisCache(client, principalKeyPrefix, cfg.Redis.PrincipalTTL)
}
