package api

import (
	"context"

	"notemark/internal/auth/domain/services"
)

// AuthUseCase - регистрация и вход.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (*services.Session, error)

	Login(ctx context.Context, email, password string) (*services.Session, error)
}
