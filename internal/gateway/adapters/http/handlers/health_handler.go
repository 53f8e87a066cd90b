package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemark/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck проверяет одну зависимость.
type HealthCheck func(ctx context.Context) error

// HealthResponse - тело GET /health.
type HealthResponse struct {
	Status string   `json:"status"`
	Failed []string `json:"failed,omitempty"`
}

// HealthHandler обслуживает GET /health.
type HealthHandler struct {
	checks map[string]HealthCheck
}

// NewHealthHandler создает обработчик; checks - обязательные зависимости по имени.
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Check отвечает 200, если все проверки прошли, иначе 503.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
	defer cancel()

	var failed []string
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			logger.Log(ctx).Warn(ctx, "health check failed", zap.String("dependency", name), zap.Error(err))
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{Status: "unavailable", Failed: failed})
	}
	return c.JSON(HealthResponse{Status: "ok"})
}
