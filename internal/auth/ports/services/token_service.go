package services

import (
	"context"
	"time"
)

// TokenService выпускает и проверяет токены сессии.
type TokenService interface {
	IssueToken(ctx context.Context, userID string) (string, time.Time, error)

	ValidateToken(ctx context.Context, token string) (string, error)
}
