// Package dto описывает тела HTTP запросов и ответов.
package dto

import (
	"notemark/internal/auth/domain/entities"
	"notemark/internal/auth/domain/services"
)

// RegisterRequest - тело POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest - тело POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse - публичные данные пользователя.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse - ответ на регистрацию и вход.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// NewUserResponse переносит принципала в ответ.
func NewUserResponse(p entities.Principal) UserResponse {
	return UserResponse{ID: p.ID, Name: p.Name, Email: p.Email}
}

// NewAuthResponse собирает ответ из сессии.
func NewAuthResponse(message string, s *services.Session) AuthResponse {
	return AuthResponse{
		Message: message,
		User:    NewUserResponse(s.User),
		Token:   s.Token,
	}
}
