package entities

import (
	"strings"
	"time"
)

// Note - короткая текстовая заметка пользователя.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Tags      []string
	Favorite  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteInput - данные для создания заметки.
type NoteInput struct {
	Title    string
	Content  string
	Tags     []string
	Favorite bool
}

// NotePatch - частичное обновление; nil означает "не менять".
type NotePatch struct {
	Title    *string
	Content  *string
	Tags     []string
	SetTags  bool
	Favorite *bool
}

// NewNote проверяет ввод и создает заметку владельца ownerID.
func NewNote(ownerID string, in NoteInput) (*Note, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, NewValidationError("title", "Title is required")
	}
	return &Note{
		UserID:   ownerID,
		Title:    title,
		Content:  in.Content,
		Tags:     NormalizeTags(in.Tags...),
		Favorite: in.Favorite,
	}, nil
}

// Apply применяет patch. Владелец и идентификатор не меняются.
func (n *Note) Apply(p NotePatch) error {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return NewValidationError("title", "Title is required")
		}
		n.Title = title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.SetTags {
		n.Tags = NormalizeTags(p.Tags...)
	}
	if p.Favorite != nil {
		n.Favorite = *p.Favorite
	}
	return nil
}

// Owner возвращает идентификатор владельца; для nil пустую строку.
func (n *Note) Owner() string {
	if n == nil {
		return ""
	}
	return n.UserID
}
