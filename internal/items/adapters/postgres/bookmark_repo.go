package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notemark/internal/items/domain/entities"
	"notemark/internal/items/ports/repositories"
	"notemark/pkg/logger"
)

const (
	queryCreateBookmark = `
        INSERT INTO bookmarks (user_id, url, title, description, tags, favorite)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + bookmarkColumns
	queryFindBookmarkByID = `
        SELECT ` + bookmarkColumns + `
        FROM bookmarks
        WHERE id = $1
    `
	queryUpdateBookmark = `
        UPDATE bookmarks
        SET url = $1, title = $2, description = $3, tags = $4, favorite = $5, updated_at = now()
        WHERE id = $6 AND user_id = $7
        RETURNING ` + bookmarkColumns
	queryDeleteBookmark = `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`
)

// BookmarkRepository хранит закладки в Postgres.
type BookmarkRepository struct {
	pool PgxPoolInterface
}

// NewBookmarkRepository создает репозиторий закладок.
func NewBookmarkRepository(pool PgxPoolInterface) repositories.BookmarkRepository {
	return &BookmarkRepository{pool: pool}
}

func (r *BookmarkRepository) Create(ctx context.Context, bm *entities.Bookmark) (*entities.Bookmark, error) {
	log := logger.Log(ctx).With(zap.String("repository", "bookmark"), zap.String("method", "Create"))

	created, err := scanBookmark(r.pool.QueryRow(ctx, queryCreateBookmark,
		bm.UserID, bm.URL, bm.Title, bm.Description, tagsOrEmpty(bm.Tags), bm.Favorite))
	if err != nil {
		log.Error(ctx, "failed to create bookmark", zap.Error(err))
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	log.Debug(ctx, "bookmark created", zap.String("id", created.ID))
	return created, nil
}

func (r *BookmarkRepository) FindByID(ctx context.Context, id string) (*entities.Bookmark, error) {
	log := logger.Log(ctx).With(zap.String("repository", "bookmark"), zap.String("method", "FindByID"))

	bm, err := scanBookmark(r.pool.QueryRow(ctx, queryFindBookmarkByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "bookmark not found", zap.String("id", id))
			return nil, entities.ErrNotFound
		}
		log.Error(ctx, "failed to get bookmark", zap.Error(err))
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	return bm, nil
}

func (r *BookmarkRepository) List(ctx context.Context, query entities.ItemQuery) ([]*entities.Bookmark, error) {
	log := logger.Log(ctx).With(zap.String("repository", "bookmark"), zap.String("method", "List"))

	sql, args := buildItemQuery(bookmarkKind, query)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		log.Error(ctx, "failed to list bookmarks", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := make([]*entities.Bookmark, 0)
	for rows.Next() {
		bm, err := scanBookmark(rows)
		if err != nil {
			log.Error(ctx, "failed to scan bookmark", zap.Error(err))
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, bm)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	log.Debug(ctx, "bookmarks listed", zap.Int("count", len(bookmarks)))
	return bookmarks, nil
}

func (r *BookmarkRepository) Update(ctx context.Context, bm *entities.Bookmark) (*entities.Bookmark, error) {
	log := logger.Log(ctx).With(zap.String("repository", "bookmark"), zap.String("method", "Update"))

	updated, err := scanBookmark(r.pool.QueryRow(ctx, queryUpdateBookmark,
		bm.URL, bm.Title, bm.Description, tagsOrEmpty(bm.Tags), bm.Favorite, bm.ID, bm.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "bookmark not found or not owned by user", zap.String("id", bm.ID))
			return nil, entities.ErrNotFound
		}
		log.Error(ctx, "failed to update bookmark", zap.Error(err))
		return nil, fmt.Errorf("failed to update bookmark: %w", err)
	}

	return updated, nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "bookmark"), zap.String("method", "Delete"))

	tag, err := r.pool.Exec(ctx, queryDeleteBookmark, id, ownerID)
	if err != nil {
		log.Error(ctx, "failed to delete bookmark", zap.Error(err))
		return false, fmt.Errorf("failed to delete bookmark: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanBookmark(row pgx.Row) (*entities.Bookmark, error) {
	var bm entities.Bookmark
	if err := row.Scan(
		&bm.ID,
		&bm.UserID,
		&bm.URL,
		&bm.Title,
		&bm.Description,
		&bm.Tags,
		&bm.Favorite,
		&bm.CreatedAt,
		&bm.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if bm.Tags == nil {
		bm.Tags = []string{}
	}
	return &bm, nil
}
