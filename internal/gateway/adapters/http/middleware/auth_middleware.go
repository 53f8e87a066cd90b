// Package middleware содержит промежуточное ПО HTTP сервера.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemark/internal/auth/domain/entities"
	"notemark/internal/auth/domain/services"
	"notemark/internal/auth/ports/api"
	"notemark/pkg/logger"
)

// Тексты ответов и сообщения logger.
const (
	MsgNoToken      = "No token provided"
	MsgInvalidToken = "Invalid token"
	MsgServerError  = "Server error"

	LogAuthMiddleware = "auth middleware"
	LogTokenMissing   = "no bearer token"
	LogTokenRejected  = "token rejected"
	LogResolveFailed  = "failed to resolve principal"

	bearerPrefix = "Bearer "
)

type principalKey struct{}

// NewAuthMiddleware проверяет заголовок Authorization: Bearer <token> и
// кладет принципала в Locals. Отказ завершает запрос с 401.
func NewAuthMiddleware(users api.UserUseCase) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := c.Context()
		log := logger.Log(ctx).With(zap.String("middleware", "auth"))
		log.Debug(ctx, LogAuthMiddleware)

		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			log.Debug(ctx, LogTokenMissing)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": MsgNoToken})
		}

		principal, err := users.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, services.ErrUnauthenticated) {
				log.Debug(ctx, LogTokenRejected, zap.Error(err))
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": MsgInvalidToken})
			}
			log.Error(ctx, LogResolveFailed, zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": MsgServerError})
		}

		c.Locals(principalKey{}, principal)
		c.SetContext(logger.NewContext(ctx, logger.Log(ctx).With(zap.String("user_id", principal.ID))))

		return c.Next()
	}
}

// PrincipalFromCtx возвращает принципала, установленного NewAuthMiddleware.
func PrincipalFromCtx(c fiber.Ctx) (*entities.Principal, bool) {
	p, ok := c.Locals(principalKey{}).(*entities.Principal)
	return p, ok && p != nil
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
