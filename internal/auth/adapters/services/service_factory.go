// Package services содержит реализации хэширования паролей и токенов сессии.
package services

import (
	"time"

	"notemark/internal/auth/ports/services"
)

// ServiceFactory собирает сервисы аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
}

// NewServiceFactory создает фабрику сервисов.
func NewServiceFactory(jwtSecretKey string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewJWT(jwtSecretKey, tokenTTL),
	}
}

// PasswordService возвращает хэшер паролей.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает кодек токенов.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}
