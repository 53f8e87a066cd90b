// Package postgres реализует хранилище заметок и закладок на PostgreSQL.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"notemark/internal/items/ports/repositories"
)

// PgxPoolInterface - подмножество pgxpool.Pool, используемое репозиториями.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// RepositoryFactory собирает репозитории элементов поверх одного пула.
type RepositoryFactory struct {
	noteRepo     repositories.NoteRepository
	bookmarkRepo repositories.BookmarkRepository
}

// NewRepositoryFactory создает фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		noteRepo:     NewNoteRepository(pool),
		bookmarkRepo: NewBookmarkRepository(pool),
	}
}

// NoteRepository возвращает репозиторий заметок.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return f.noteRepo
}

// BookmarkRepository возвращает репозиторий закладок.
func (f *RepositoryFactory) BookmarkRepository() repositories.BookmarkRepository {
	return f.bookmarkRepo
}
