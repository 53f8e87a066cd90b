package cache

import (
	"context"
	"time"

	"notemark/internal/auth/ports/cache"
)

// NoopCache ничего не хранит.
type NoopCache struct{}

// NewNoopCache возвращает пустой кэш.
func NewNoopCache() cache.Cache {
	return NoopCache{}
}

// Get всегда сообщает об отсутствии ключа.
func (NoopCache) Get(context.Context, string) (string, bool, error) { return "", false, nil }

// Set ничего не делает.
func (NoopCache) Set(context.Context, string, string, time.Duration) error { return nil }

// Delete ничего не делает.
func (NoopCache) Delete(context.Context, string) error { return nil }

// Close ничего не делает.
func (NoopCache) Close() error { return nil }
