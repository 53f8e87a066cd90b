package app_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"notemark/internal/items/domain/entities"
)

var errStore = errors.New("store unavailable")

// memNotes - хранилище заметок в памяти с семантикой Postgres-репозитория.
type memNotes struct {
	mu    sync.Mutex
	items map[string]entities.Note
	clock time.Time
	fail  error
}

func newMemNotes() *memNotes {
	return &memNotes{items: map[string]entities.Note{}, clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memNotes) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memNotes) Create(_ context.Context, n *entities.Note) (*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	c := *n
	c.ID = uuid.NewString()
	c.CreatedAt = m.tick()
	c.UpdatedAt = c.CreatedAt
	m.items[c.ID] = c
	return &c, nil
}

func (m *memNotes) FindByID(_ context.Context, id string) (*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	n, ok := m.items[id]
	if !ok {
		return nil, entities.ErrNotFound
	}
	return &n, nil
}

func (m *memNotes) List(_ context.Context, q entities.ItemQuery) ([]*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]*entities.Note, 0)
	for _, n := range m.items {
		if q.MatchesNote(&n) {
			c := n
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memNotes) Update(_ context.Context, n *entities.Note) (*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	stored, ok := m.items[n.ID]
	if !ok || stored.UserID != n.UserID {
		return nil, entities.ErrNotFound
	}
	c := *n
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = m.tick()
	m.items[c.ID] = c
	return &c, nil
}

func (m *memNotes) Delete(_ context.Context, id, ownerID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return false, m.fail
	}
	n, ok := m.items[id]
	if !ok || n.UserID != ownerID {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *memNotes) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// memBookmarks - хранилище закладок в памяти.
type memBookmarks struct {
	mu    sync.Mutex
	items map[string]entities.Bookmark
	clock time.Time
}

func newMemBookmarks() *memBookmarks {
	return &memBookmarks{items: map[string]entities.Bookmark{}, clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memBookmarks) Create(_ context.Context, b *entities.Bookmark) (*entities.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *b
	c.ID = uuid.NewString()
	m.clock = m.clock.Add(time.Second)
	c.CreatedAt, c.UpdatedAt = m.clock, m.clock
	m.items[c.ID] = c
	return &c, nil
}

func (m *memBookmarks) FindByID(_ context.Context, id string) (*entities.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[id]
	if !ok {
		return nil, entities.ErrNotFound
	}
	return &b, nil
}

func (m *memBookmarks) List(_ context.Context, q entities.ItemQuery) ([]*entities.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entities.Bookmark, 0)
	for _, b := range m.items {
		if q.MatchesBookmark(&b) {
			c := b
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memBookmarks) Update(_ context.Context, b *entities.Bookmark) (*entities.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.items[b.ID]
	if !ok || stored.UserID != b.UserID {
		return nil, entities.ErrNotFound
	}
	c := *b
	m.items[c.ID] = c
	return &c, nil
}

func (m *memBookmarks) Delete(_ context.Context, id, ownerID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[id]
	if !ok || b.UserID != ownerID {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type fetcherFunc func(ctx context.Context, url string) (string, error)

func (f fetcherFunc) FetchTitle(ctx context.Context, url string) (string, error) { return f(ctx, url) }

type summarizerFunc func(ctx context.Context, url, title string) (string, error)

func (f summarizerFunc) Summarize(ctx context.Context, url, title string) (string, error) {
	return f(ctx, url, title)
}
