package repositories

import (
	"context"

	"notemark/internal/items/domain/entities"
)

// NoteRepository - хранилище заметок.
type NoteRepository interface {
	// Create сохраняет заметку и возвращает ее с идентификатором и временем создания.
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// FindByID возвращает заметку независимо от владельца; отсутствие дает entities.ErrNotFound.
	FindByID(ctx context.Context, id string) (*entities.Note, error)

	// List возвращает заметки по запросу, от новых к старым.
	List(ctx context.Context, query entities.ItemQuery) ([]*entities.Note, error)

	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// Delete удаляет заметку владельца ownerID и сообщает, была ли она удалена.
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
