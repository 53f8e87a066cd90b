// Package cache определяет порт кэша принципалов.
package cache

import (
	"context"
	"time"
)

// Cache - строковое хранилище с TTL. Отсутствие ключа дает ("", false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)

	Set(ctx context.Context, key, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Close() error
}
