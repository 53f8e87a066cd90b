// Package config описывает конфигурацию сервиса notemark.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "notemark/pkg/config"
	"notemark/pkg/logger"
)

// ServiceName используется в логах и справке.
const ServiceName = "notemark"

// DefaultEnvFiles - .env файлы, читаемые при старте, если они существуют.
var DefaultEnvFiles = []string{".env", "deploy/.env"}

const (
	LogConfigLoaded     = "service configuration"
	ErrFailedLoadConfig = "failed to load configuration"
)

// Config - полная конфигурация сервиса.
type Config struct {
	HTTP       HTTPConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Logging    LoggingConfig
	Shutdown   ShutdownConfig
	Enrichment EnrichmentConfig
}

// Load читает конфигурацию из окружения и .env файлов.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = DefaultEnvFiles
	}

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envFiles...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.Duration("token_ttl", cfg.JWT.TokenTTL),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Bool("summarizer_enabled", cfg.Enrichment.SummarizerEnabled()))

	return cfg, nil
}

// Usage возвращает справку по переменным окружения.
func Usage() (string, error) {
	return pkgconfig.Description[Config]("Environment variables:")
}
