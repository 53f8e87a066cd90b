package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notemark/internal/auth/ports/api"
	"notemark/internal/gateway/app/dto"
	"notemark/pkg/logger"
)

// AuthHandler обслуживает /api/auth.
type AuthHandler struct {
	auth api.AuthUseCase
}

// NewAuthHandler создает обработчик регистрации и входа.
func NewAuthHandler(auth api.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register - POST /api/auth/register.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	ctx := c.Context()
	log := logger.Log(ctx).With(zap.String("handler", "AuthHandler.Register"))

	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		log.Debug(ctx, MsgInvalidBody, zap.Error(err))
		return writeError(c, fiber.StatusBadRequest, MsgInvalidBody)
	}

	session, err := h.auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return handleError(c, err, MsgServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAuthResponse(MsgUserRegistered, session))
}

// Login - POST /api/auth/login.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	ctx := c.Context()
	log := logger.Log(ctx).With(zap.String("handler", "AuthHandler.Login"))

	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		log.Debug(ctx, MsgInvalidBody, zap.Error(err))
		return writeError(c, fiber.StatusBadRequest, MsgInvalidBody)
	}

	session, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return handleError(c, err, MsgServerError)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewAuthResponse(MsgLoginSuccessful, session))
}
