package api

import (
	"context"

	"notemark/internal/items/domain/entities"
)

// BookmarkUseCase - операции над закладками.
type BookmarkUseCase interface {
	// Create дополняет пустой заголовок и описание данными страницы; ошибки обогащения не возвращаются.
	Create(ctx context.Context, ownerID string, in entities.BookmarkInput) (*entities.Bookmark, error)

	List(ctx context.Context, ownerID, q, tags string) ([]*entities.Bookmark, error)

	Get(ctx context.Context, ownerID, id string) (*entities.Bookmark, error)

	Update(ctx context.Context, ownerID, id string, patch entities.BookmarkPatch) (*entities.Bookmark, error)

	Delete(ctx context.Context, ownerID, id string) error

	ToggleFavorite(ctx context.Context, ownerID, id string) (bool, error)
}
