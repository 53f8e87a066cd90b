package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notemark/internal/items/domain/entities"
	"notemark/internal/items/ports/api"
	"notemark/internal/items/ports/repositories"
	"notemark/pkg/logger"
)

const (
	msgNoteCreated     = "note created"
	msgNoteUpdated     = "note updated"
	msgNoteDeleted     = "note deleted"
	msgNoteNotDeleted  = "delete acknowledged, nothing removed"
	msgFavoriteToggled = "favorite toggled"

	errCtxCreatingNote = "creating note"
	errCtxListingNotes = "listing notes"
	errCtxLoadingNote  = "loading note"
	errCtxUpdatingNote = "updating note"
	errCtxDeletingNote = "deleting note"
)

// NoteUseCaseImpl реализует api.NoteUseCase.
type NoteUseCaseImpl struct {
	repo repositories.NoteRepository
}

// NewNoteUseCase создает сценарии заметок.
func NewNoteUseCase(repo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{repo: repo}
}

// Create проверяет ввод и сохраняет заметку вызывающего.
func (u *NoteUseCaseImpl) Create(ctx context.Context, ownerID string, in entities.NoteInput) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Create"), zap.String("userID", ownerID))

	note, err := entities.NewNote(ownerID, in)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", created.ID))
	return created, nil
}

// List возвращает заметки вызывающего, отфильтрованные по q и tags.
func (u *NoteUseCaseImpl) List(ctx context.Context, ownerID, q, tags string) ([]*entities.Note, error) {
	notes, err := u.repo.List(ctx, entities.NewItemQuery(ownerID, q, tags))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}
	return notes, nil
}

// Get возвращает заметку вызывающего.
func (u *NoteUseCaseImpl) Get(ctx context.Context, ownerID, id string) (*entities.Note, error) {
	return u.load(ctx, ownerID, id)
}

// Update применяет patch к заметке вызывающего.
func (u *NoteUseCaseImpl) Update(ctx context.Context, ownerID, id string, patch entities.NotePatch) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Update"), zap.String("userID", ownerID))

	note, err := u.load(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := note.Apply(patch); err != nil {
		return nil, err
	}

	updated, err := u.repo.Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Debug(ctx, msgNoteUpdated, zap.String("noteID", updated.ID))
	return updated, nil
}

// Delete удаляет заметку вызывающего; отсутствие заметки не ошибка.
func (u *NoteUseCaseImpl) Delete(ctx context.Context, ownerID, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.Delete"), zap.String("userID", ownerID))

	noteID, err := parseItemID(id)
	if err != nil {
		log.Debug(ctx, msgNoteNotDeleted, zap.String("noteID", id))
		return nil
	}

	deleted, err := u.repo.Delete(ctx, noteID, ownerID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	if deleted {
		log.Info(ctx, msgNoteDeleted, zap.String("noteID", noteID))
	} else {
		log.Debug(ctx, msgNoteNotDeleted, zap.String("noteID", noteID))
	}
	return nil
}

// ToggleFavorite инвертирует флаг избранного и сохраняет заметку.
func (u *NoteUseCaseImpl) ToggleFavorite(ctx context.Context, ownerID, id string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.ToggleFavorite"), zap.String("userID", ownerID))

	note, err := u.load(ctx, ownerID, id)
	if err != nil {
		return false, err
	}
	note.Favorite = !note.Favorite

	updated, err := u.repo.Update(ctx, note)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Debug(ctx, msgFavoriteToggled, zap.String("noteID", updated.ID), zap.Bool("favorite", updated.Favorite))
	return updated.Favorite, nil
}

func (u *NoteUseCaseImpl) load(ctx context.Context, ownerID, id string) (*entities.Note, error) {
	noteID, err := parseItemID(id)
	if err != nil {
		return nil, err
	}

	note, err := u.repo.FindByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingNote, err)
	}
	if err := assertOwner(note, ownerID); err != nil {
		return nil, err
	}
	return note, nil
}
