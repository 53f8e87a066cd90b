package repositories

import (
	"context"

	"notemark/internal/auth/domain/entities"
)

// UserRepository - хранилище пользователей.
type UserRepository interface {
	// Create сохраняет пользователя; занятый email дает entities.ErrDuplicateEmail.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
