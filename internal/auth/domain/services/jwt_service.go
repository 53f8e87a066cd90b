package services

import (
	"errors"
	"time"
)

// Ошибки токенов сессии. Обе ошибки проверки означают отказ в аутентификации.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// DefaultTokenTTL - срок жизни токена сессии.
const DefaultTokenTTL = 7 * 24 * time.Hour

// JWTConfig - настройки кодека токенов.
type JWTConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}

// JWTClaims - полезная нагрузка токена в терминах домена.
type JWTClaims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
