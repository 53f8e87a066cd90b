package repositories

import (
	"context"

	"notemark/internal/items/domain/entities"
)

// BookmarkRepository - хранилище закладок.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *entities.Bookmark) (*entities.Bookmark, error)

	FindByID(ctx context.Context, id string) (*entities.Bookmark, error)

	List(ctx context.Context, query entities.ItemQuery) ([]*entities.Bookmark, error)

	Update(ctx context.Context, bookmark *entities.Bookmark) (*entities.Bookmark, error)

	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
