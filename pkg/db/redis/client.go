package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notemark/pkg/logger"
)

const (
	logConnecting = "connecting to Redis"
	logConnected  = "successfully connected to Redis"

	errPing = "failed to connect to Redis"
)

// NewClient создает клиента и выполняет PING. При ошибке клиент закрывается.
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	log := logger.Log(ctx).With(zap.String("component", "redis"), zap.String("addr", cfg.Addr))
	log.Info(ctx, logConnecting)

	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Warn(ctx, errPing, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errPing, err)
	}

	log.Info(ctx, logConnected)
	return client, nil
}
