package entities

import (
	"strings"
	"time"
)

// UntitledBookmark - заголовок, если страницу не удалось прочитать.
const UntitledBookmark = "Untitled Bookmark"

// Bookmark - сохраненная ссылка пользователя.
type Bookmark struct {
	ID          string
	UserID      string
	URL         string
	Title       string
	Description string
	Tags        []string
	Favorite    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookmarkInput - данные для создания закладки.
type BookmarkInput struct {
	URL         string
	Title       string
	Description string
	Tags        []string
	Favorite    bool
}

// BookmarkPatch - частичное обновление; nil означает "не менять".
type BookmarkPatch struct {
	URL         *string
	Title       *string
	Description *string
	Tags        []string
	SetTags     bool
	Favorite    *bool
}

// NormalizeURL обрезает пробелы; пустой URL недопустим. Формат не проверяется:
// схему и доступность проверяет получатель заголовков.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", NewValidationError("url", "Valid URL is required")
	}
	return s, nil
}

// NewBookmark проверяет ввод и создает закладку владельца ownerID.
// Пустой заголовок допустим: его заполняет сервис.
func NewBookmark(ownerID string, in BookmarkInput) (*Bookmark, error) {
	u, err := NormalizeURL(in.URL)
	if err != nil {
		return nil, err
	}
	return &Bookmark{
		UserID:      ownerID,
		URL:         u,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Tags:        NormalizeTags(in.Tags...),
		Favorite:    in.Favorite,
	}, nil
}

// Apply применяет patch. Пустой заголовок заменяется UntitledBookmark.
func (b *Bookmark) Apply(p BookmarkPatch) error {
	if p.URL != nil {
		u, err := NormalizeURL(*p.URL)
		if err != nil {
			return err
		}
		b.URL = u
	}
	if p.Title != nil {
		b.Title = strings.TrimSpace(*p.Title)
		if b.Title == "" {
			b.Title = UntitledBookmark
		}
	}
	if p.Description != nil {
		b.Description = strings.TrimSpace(*p.Description)
	}
	if p.SetTags {
		b.Tags = NormalizeTags(p.Tags...)
	}
	if p.Favorite != nil {
		b.Favorite = *p.Favorite
	}
	return nil
}

// Owner возвращает идентификатор владельца; для nil пустую строку.
func (b *Bookmark) Owner() string {
	if b == nil {
		return ""
	}
	return b.UserID
}
