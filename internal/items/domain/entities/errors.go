// Package entities описывает заметки, закладки и запрос списка элементов.
package entities

import "errors"

// Ошибки домена элементов.
var (
	ErrNotFound   = errors.New("item not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError сообщает, какое поле не прошло проверку. Оборачивает ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap позволяет errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError создает ошибку проверки поля.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
