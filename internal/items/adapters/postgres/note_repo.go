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
	queryCreateNote = `
        INSERT INTO notes (user_id, title, content, tags, favorite)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + noteColumns
	queryFindNoteByID = `
        SELECT ` + noteColumns + `
        FROM notes
        WHERE id = $1
    `
	queryUpdateNote = `
        UPDATE notes
        SET title = $1, content = $2, tags = $3, favorite = $4, updated_at = now()
        WHERE id = $5 AND user_id = $6
        RETURNING ` + noteColumns
	queryDeleteNote = `DELETE FROM notes WHERE id = $1 AND user_id = $2`
)

// NoteRepository хранит заметки в Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет заметку.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))

	created, err := scanNote(r.pool.QueryRow(ctx, queryCreateNote,
		note.UserID, note.Title, note.Content, tagsOrEmpty(note.Tags), note.Favorite))
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("id", created.ID))
	return created, nil
}

// FindByID находит заметку по ID без учета владельца.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindByID"))

	note, err := scanNote(r.pool.QueryRow(ctx, queryFindNoteByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("id", id))
			return nil, entities.ErrNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// List возвращает заметки владельца по запросу.
func (r *NoteRepository) List(ctx context.Context, query entities.ItemQuery) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "List"))

	sql, args := buildItemQuery(noteKind, query)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	log.Debug(ctx, "notes listed", zap.Int("count", len(notes)))
	return notes, nil
}

// Update сохраняет изменяемые поля заметки и обновляет updated_at.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))

	updated, err := scanNote(r.pool.QueryRow(ctx, queryUpdateNote,
		note.Title, note.Content, tagsOrEmpty(note.Tags), note.Favorite, note.ID, note.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user", zap.String("id", note.ID))
			return nil, entities.ErrNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

// Delete удаляет заметку владельца.
func (r *NoteRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))

	tag, err := r.pool.Exec(ctx, queryDeleteNote, id, ownerID)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return false, fmt.Errorf("failed to delete note: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	if err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.Tags,
		&note.Favorite,
		&note.CreatedAt,
		&note.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	return &note, nil
}
