package app_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notemark/internal/items/app"
	"notemark/internal/items/domain/entities"
)

const (
	alice = "a11ce000-0000-4000-8000-000000000001"
	bob   = "b0b00000-0000-4000-8000-000000000002"
)

func ptr[T any](v T) *T { return &v }

func TestNoteUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("owner comes from the caller and tags are normalized", func(t *testing.T) {
		repo := newMemNotes()
		uc := app.NewNoteUseCase(repo)

		note, err := uc.Create(ctx, alice, entities.NoteInput{Title: "Plan", Tags: []string{"Work, HOME,work"}})

		require.NoError(t, err)
		assert.Equal(t, alice, note.UserID)
		assert.Equal(t, []string{"work", "home"}, note.Tags)
		assert.False(t, note.Favorite)
		assert.NotEmpty(t, note.ID)
	})

	t.Run("empty title is rejected without writing", func(t *testing.T) {
		repo := newMemNotes()
		uc := app.NewNoteUseCase(repo)

		_, err := uc.Create(ctx, alice, entities.NoteInput{Title: "  ", Content: "body"})

		require.ErrorIs(t, err, entities.ErrValidation)
		assert.EqualError(t, err, "Title is required")
		assert.Zero(t, repo.count())
	})

	t.Run("store failure", func(t *testing.T) {
		repo := newMemNotes()
		repo.fail = errStore

		_, err := app.NewNoteUseCase(repo).Create(ctx, alice, entities.NoteInput{Title: "x"})

		require.ErrorIs(t, err, errStore)
		assert.NotErrorIs(t, err, entities.ErrValidation)
	})
}

func TestNoteUseCase_List(t *testing.T) {
	ctx := context.Background()
	repo := newMemNotes()
	uc := app.NewNoteUseCase(repo)

	first, err := uc.Create(ctx, alice, entities.NoteInput{Title: "Groceries", Content: "milk", Tags: []string{"home"}})
	require.NoError(t, err)
	second, err := uc.Create(ctx, alice, entities.NoteInput{Title: "Standup", Content: "demo the MILK app", Tags: []string{"work"}})
	require.NoError(t, err)
	_, err = uc.Create(ctx, bob, entities.NoteInput{Title: "Bob milk", Tags: []string{"home"}})
	require.NoError(t, err)

	t.Run("only the caller's notes, newest first", func(t *testing.T) {
		notes, err := uc.List(ctx, alice, "", "")
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, second.ID, notes[0].ID)
		assert.Equal(t, first.ID, notes[1].ID)
	})

	t.Run("q matches case-insensitively", func(t *testing.T) {
		notes, err := uc.List(ctx, alice, "Milk", "")
		require.NoError(t, err)
		assert.Len(t, notes, 2)
	})

	t.Run("q and tags compose with AND", func(t *testing.T) {
		notes, err := uc.List(ctx, alice, "milk", " HOME ")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, first.ID, notes[0].ID)
	})

	t.Run("no match is an empty list", func(t *testing.T) {
		notes, err := uc.List(ctx, alice, "", "travel")
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("another user never sees alice's notes", func(t *testing.T) {
		notes, err := uc.List(ctx, bob, "", "")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, bob, notes[0].UserID)
	})
}

func TestNoteUseCase_ListTagsIntersectCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	uc := app.NewNoteUseCase(newMemNotes())

	work, err := uc.Create(ctx, alice, entities.NoteInput{Title: "Report", Tags: []string{"Work"}})
	require.NoError(t, err)
	urgent, err := uc.Create(ctx, alice, entities.NoteInput{Title: "Call", Tags: []string{"urgent", "x"}})
	require.NoError(t, err)
	_, err = uc.Create(ctx, alice, entities.NoteInput{Title: "Trip", Tags: []string{"travel"}})
	require.NoError(t, err)

	notes, err := uc.List(ctx, alice, "", "work,URGENT")
	require.NoError(t, err)

	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	assert.ElementsMatch(t, []string{work.ID, urgent.ID}, ids)
}

func TestNoteUseCase_Ownership(t *testing.T) {
	ctx := context.Background()
	repo := newMemNotes()
	uc := app.NewNoteUseCase(repo)

	note, err := uc.Create(ctx, alice, entities.NoteInput{Title: "secret"})
	require.NoError(t, err)

	_, err = uc.Get(ctx, bob, note.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	_, err = uc.Update(ctx, bob, note.ID, entities.NotePatch{Title: ptr("hijacked")})
	assert.ErrorIs(t, err, entities.ErrNotFound)

	_, err = uc.ToggleFavorite(ctx, bob, note.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, bob, note.ID))

	got, err := uc.Get(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Title)
	assert.False(t, got.Favorite)
}

func TestNoteUseCase_Get(t *testing.T) {
	ctx := context.Background()
	uc := app.NewNoteUseCase(newMemNotes())

	_, err := uc.Get(ctx, alice, uuid.NewString())
	assert.ErrorIs(t, err, entities.ErrNotFound)

	_, err = uc.Get(ctx, alice, "not-a-uuid")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestNoteUseCase_Update(t *testing.T) {
	ctx := context.Background()
	uc := app.NewNoteUseCase(newMemNotes())

	note, err := uc.Create(ctx, alice, entities.NoteInput{Title: "t", Content: "c", Tags: []string{"a"}})
	require.NoError(t, err)

	t.Run("merges provided fields", func(t *testing.T) {
		updated, err := uc.Update(ctx, alice, note.ID, entities.NotePatch{
			Content: ptr("new content"),
			Tags:    []string{"B", "b", " c "},
			SetTags: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "t", updated.Title)
		assert.Equal(t, "new content", updated.Content)
		assert.Equal(t, []string{"b", "c"}, updated.Tags)
		assert.Equal(t, alice, updated.UserID)
		assert.Equal(t, note.ID, updated.ID)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		_, err := uc.Update(ctx, alice, note.ID, entities.NotePatch{Title: ptr("")})
		require.ErrorIs(t, err, entities.ErrValidation)

		got, err := uc.Get(ctx, alice, note.ID)
		require.NoError(t, err)
		assert.Equal(t, "t", got.Title)
	})
}

func TestNoteUseCase_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	uc := app.NewNoteUseCase(newMemNotes())

	note, err := uc.Create(ctx, alice, entities.NoteInput{Title: "t"})
	require.NoError(t, err)

	fav, err := uc.ToggleFavorite(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = uc.ToggleFavorite(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.False(t, fav)

	got, err := uc.Get(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.False(t, got.Favorite)

	_, err = uc.ToggleFavorite(ctx, alice, uuid.NewString())
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestNoteUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the note and acknowledges repeats", func(t *testing.T) {
		repo := newMemNotes()
		uc := app.NewNoteUseCase(repo)
		note, err := uc.Create(ctx, alice, entities.NoteInput{Title: "t"})
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, alice, note.ID))
		require.NoError(t, uc.Delete(ctx, alice, note.ID))
		assert.Zero(t, repo.count())

		_, err = uc.Get(ctx, alice, note.ID)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})

	t.Run("malformed id is acknowledged", func(t *testing.T) {
		assert.NoError(t, app.NewNoteUseCase(newMemNotes()).Delete(ctx, alice, "garbage"))
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := newMemNotes()
		repo.fail = errStore
		err := app.NewNoteUseCase(repo).Delete(ctx, alice, uuid.NewString())
		assert.ErrorIs(t, err, errStore)
	})
}
