// Package postgres реализует хранилище пользователей на PostgreSQL.
package postgres

import (
	"notemark/internal/auth/ports/repositories"
)

// RepositoryFactory собирает репозитории auth поверх одного пула.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
}

// NewRepositoryFactory создает фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}
