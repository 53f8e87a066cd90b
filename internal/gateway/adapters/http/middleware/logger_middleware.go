package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemark/pkg/logger"
)

// HeaderRequestID - заголовок идентификатора запроса.
const HeaderRequestID = "X-Request-ID"

// NewLoggerMiddleware присваивает запросу request_id, кладет logger с ним в
// контекст и пишет начало и завершение запроса.
func NewLoggerMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		ctx := logger.NewRequestIDContext(c.Context(), c.Get(HeaderRequestID))
		requestID, _ := logger.GetRequestID(ctx)
		c.Set(HeaderRequestID, requestID)

		log := logger.Log(ctx).With(
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("ip", c.IP()),
		)
		ctx = logger.NewContext(ctx, log)
		c.SetContext(ctx)

		log.Debug(ctx, "request started")

		err := c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			log.Error(ctx, "request failed", append(fields, zap.Error(err))...)
			return err
		}

		log.Info(ctx, "request completed", fields...)
		return nil
	}
}
