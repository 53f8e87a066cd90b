package api

import (
	"context"

	"notemark/internal/items/domain/entities"
)

// NoteUseCase - операции над заметками. Каждый метод получает идентификатор вызывающего.
type NoteUseCase interface {
	Create(ctx context.Context, ownerID string, in entities.NoteInput) (*entities.Note, error)

	// List фильтрует заметки владельца по подстроке q и тегам tags (через запятую).
	List(ctx context.Context, ownerID, q, tags string) ([]*entities.Note, error)

	Get(ctx context.Context, ownerID, id string) (*entities.Note, error)

	Update(ctx context.Context, ownerID, id string, patch entities.NotePatch) (*entities.Note, error)

	// Delete идемпотентен: чужая или отсутствующая заметка не считается ошибкой.
	Delete(ctx context.Context, ownerID, id string) error

	// ToggleFavorite инвертирует флаг и возвращает новое значение.
	ToggleFavorite(ctx context.Context, ownerID, id string) (bool, error)
}
