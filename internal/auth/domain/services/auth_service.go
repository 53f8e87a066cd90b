package services

import (
	"errors"
	"time"

	"notemark/internal/auth/domain/entities"
)

// Ошибки домена аутентификации.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Session - результат успешной регистрации или входа.
type Session struct {
	User      entities.Principal
	Token     string
	ExpiresAt time.Time
}
