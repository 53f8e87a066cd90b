// Package handlers содержит HTTP обработчики API.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemark/internal/auth/domain/services"
	"notemark/internal/gateway/adapters/http/middleware"
	"notemark/internal/gateway/app/dto"
	"notemark/internal/items/domain/entities"
	"notemark/pkg/logger"
)

// Тексты ответов API.
const (
	MsgAllFieldsRequired  = "All fields are required"
	MsgEmailInUse         = "Email already in use"
	MsgInvalidCredentials = "Invalid email or password"
	MsgInvalidBody        = "Invalid request body"
	MsgNoteNotFound       = "Note not found"
	MsgBookmarkNotFound   = "Bookmark not found"
	MsgServerError        = middleware.MsgServerError
	MsgRouteNotFound      = "Route not found"

	MsgUserRegistered  = "User registered"
	MsgLoginSuccessful = "Login successful"
	MsgNoteDeleted     = "Note deleted"
	MsgBookmarkDeleted = "Bookmark deleted"
	MsgFavoriteToggled = "Favorite toggled"
)

// handleError переводит ошибку сценария в ответ. notFound - текст 404 для ресурса.
// Детали ошибок 500 попадают только в лог.
func handleError(c fiber.Ctx, err error, notFound string) error {
	var verr *entities.ValidationError

	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrMissingFields):
		return writeError(c, fiber.StatusBadRequest, MsgAllFieldsRequired)
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return writeError(c, fiber.StatusBadRequest, MsgEmailInUse)
	case errors.Is(err, services.ErrInvalidCredentials):
		return writeError(c, fiber.StatusBadRequest, MsgInvalidCredentials)
	case errors.Is(err, services.ErrUnauthenticated):
		return writeError(c, fiber.StatusUnauthorized, middleware.MsgInvalidToken)
	case errors.Is(err, entities.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, notFound)
	default:
		ctx := c.Context()
		logger.Log(ctx).Error(ctx, "request failed with internal error", zap.Error(err))
		return writeError(c, fiber.StatusInternalServerError, MsgServerError)
	}
}

func writeError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: message})
}

// bindJSON разбирает тело как JSON. Пустое тело равно {}.
func bindJSON(c fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.Bind().JSON(out)
}

// ErrorHandler - обработчик ошибок fiber для всего, что не обработали хендлеры.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		msg := fe.Message
		if fe.Code == fiber.StatusNotFound {
			msg = MsgRouteNotFound
		}
		return writeError(c, fe.Code, msg)
	}
	return handleError(c, err, MsgRouteNotFound)
}

// NewNotFoundHandler отвечает 404 на неизвестный маршрут.
func NewNotFoundHandler() fiber.Handler {
	return func(c fiber.Ctx) error {
		return writeError(c, fiber.StatusNotFound, MsgRouteNotFound)
	}
}
