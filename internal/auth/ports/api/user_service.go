package api

import (
	"context"

	"notemark/internal/auth/domain/entities"
)

// UserUseCase разрешает токен сессии в принципала.
type UserUseCase interface {
	// Authenticate проверяет токен и возвращает существующего пользователя.
	// Любой отказ оборачивает services.ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*entities.Principal, error)

	GetPrincipal(ctx context.Context, userID string) (*entities.Principal, error)
}
