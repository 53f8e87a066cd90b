package resilience

import (
	"context"

	"go.uber.org/zap"

	"notemark/pkg/logger"
)

// Policy объединяет breaker и повторы для одной зависимости.
type Policy struct {
	name    string
	breaker *CircuitBreaker
	retry   *Retry
}

// NewPolicy создает политику с заданными настройками.
func NewPolicy(name string, cbCfg CircuitBreakerConfig, retryCfg RetryConfig) *Policy {
	return &Policy{
		name:    name,
		breaker: NewCircuitBreaker(name, cbCfg),
		retry:   NewRetry(name, retryCfg),
	}
}

// Breaker возвращает breaker политики.
func (p *Policy) Breaker() *CircuitBreaker {
	return p.breaker
}

// Run выполняет operation с повторами внутри breaker: серия неудачных повторов
// засчитывается breaker как одна ошибка.
func (p *Policy) Run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	logger.Log(ctx).With(
		zap.String("dependency", p.name),
		zap.String("operation", operation),
	).Debug(ctx, "executing with resilience")

	return p.breaker.Execute(ctx, func() error {
		return p.retry.Execute(ctx, func() error {
			return fn(ctx)
		})
	})
}

// Do выполняет fn под политикой p и возвращает его результат.
func Do[T any](ctx context.Context, p *Policy, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := p.Run(ctx, operation, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}
