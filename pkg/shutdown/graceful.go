// Package shutdown ждет SIGINT/SIGTERM и выполняет хуки завершения с ограничением по времени.
package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"notemark/pkg/logger"
)

const (
	logSignalReceived   = "shutdown signal received"
	logContextDone      = "parent context done, shutting down"
	logHookFailed       = "shutdown hook failed"
	logShutdownTimedOut = "shutdown timed out"
)

// Hook - функция освобождения ресурса.
type Hook func(ctx context.Context) error

// Wait блокируется до сигнала или отмены ctx, затем параллельно вызывает хуки.
// Возвращает объединенные ошибки хуков либо context.DeadlineExceeded при таймауте.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	log := logger.Log(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		log.Info(ctx, logSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
		log.Info(ctx, logContextDone)
	}

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(stopCtx); err != nil {
				log.Error(stopCtx, logHookFailed, zap.Error(err))
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		mu.Lock()
		defer mu.Unlock()
		return errors.Join(errs...)
	case <-stopCtx.Done():
		log.Warn(stopCtx, logShutdownTimedOut, zap.Duration("timeout", timeout))
		return stopCtx.Err()
	}
}
