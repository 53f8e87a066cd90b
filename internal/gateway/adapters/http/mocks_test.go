package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	authentities "notemark/internal/auth/domain/entities"
	"notemark/internal/auth/domain/services"
	"notemark/internal/items/domain/entities"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Register(ctx context.Context, name, email, password string) (*services.Session, error) {
	args := m.Called(ctx, name, email, password)
	s, _ := args.Get(0).(*services.Session)
	return s, args.Error(1)
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (*services.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*services.Session)
	return s, args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Authenticate(ctx context.Context, token string) (*authentities.Principal, error) {
	args := m.Called(ctx, token)
	p, _ := args.Get(0).(*authentities.Principal)
	return p, args.Error(1)
}

func (m *mockUsers) GetPrincipal(ctx context.Context, userID string) (*authentities.Principal, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*authentities.Principal)
	return p, args.Error(1)
}

type mockNotes struct{ mock.Mock }

func (m *mockNotes) Create(ctx context.Context, ownerID string, in entities.NoteInput) (*entities.Note, error) {
	args := m.Called(ctx, ownerID, in)
	n, _ := args.Get(0).(*entities.Note)
	return n, args.Error(1)
}

func (m *mockNotes) List(ctx context.Context, ownerID, q, tags string) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID, q, tags)
	n, _ := args.Get(0).([]*entities.Note)
	return n, args.Error(1)
}

func (m *mockNotes) Get(ctx context.Context, ownerID, id string) (*entities.Note, error) {
	args := m.Called(ctx, ownerID, id)
	n, _ := args.Get(0).(*entities.Note)
	return n, args.Error(1)
}

func (m *mockNotes) Update(ctx context.Context, ownerID, id string, patch entities.NotePatch) (*entities.Note, error) {
	args := m.Called(ctx, ownerID, id, patch)
	n, _ := args.Get(0).(*entities.Note)
	return n, args.Error(1)
}

func (m *mockNotes) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *mockNotes) ToggleFavorite(ctx context.Context, ownerID, id string) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

type mockBookmarks struct{ mock.Mock }

func (m *mockBookmarks) Create(ctx context.Context, ownerID string, in entities.BookmarkInput) (*entities.Bookmark, error) {
	args := m.Called(ctx, ownerID, in)
	b, _ := args.Get(0).(*entities.Bookmark)
	return b, args.Error(1)
}

func (m *mockBookmarks) List(ctx context.Context, ownerID, q, tags string) ([]*entities.Bookmark, error) {
	args := m.Called(ctx, ownerID, q, tags)
	b, _ := args.Get(0).([]*entities.Bookmark)
	return b, args.Error(1)
}

func (m *mockBookmarks) Get(ctx context.Context, ownerID, id string) (*entities.Bookmark, error) {
	args := m.Called(ctx, ownerID, id)
	b, _ := args.Get(0).(*entities.Bookmark)
	return b, args.Error(1)
}

func (m *mockBookmarks) Update(ctx context.Context, ownerID, id string, patch entities.BookmarkPatch) (*entities.Bookmark, error) {
	args := m.Called(ctx, ownerID, id, patch)
	b, _ := args.Get(0).(*entities.Bookmark)
	return b, args.Error(1)
}

func (m *mockBookmarks) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *mockBookmarks) ToggleFavorite(ctx context.Context, ownerID, id string) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}
