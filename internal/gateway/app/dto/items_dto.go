package dto

import (
	"encoding/json"
	"errors"
	"time"

	"notemark/internal/items/domain/entities"
)

// ErrInvalidTags - поле tags не строка и не массив строк.
var ErrInvalidTags = errors.New("tags must be a string or an array of strings")

// TagList принимает теги строкой через запятую или массивом строк.
// Нормализация выполняется доменом.
type TagList []string

// UnmarshalJSON реализует json.Unmarshaler.
func (t *TagList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TagList{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return ErrInvalidTags
	}
	*t = list
	return nil
}

// NoteRequest - тело создания и обновления заметки. Отсутствующее поле не меняется.
type NoteRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Tags     *TagList `json:"tags"`
	Favorite *bool    `json:"favorite"`
}

// ToInput возвращает данные для создания.
func (r *NoteRequest) ToInput() entities.NoteInput {
	in := entities.NoteInput{
		Title:   deref(r.Title),
		Content: deref(r.Content),
	}
	if r.Tags != nil {
		in.Tags = *r.Tags
	}
	if r.Favorite != nil {
		in.Favorite = *r.Favorite
	}
	return in
}

// ToPatch возвращает частичное обновление.
func (r *NoteRequest) ToPatch() entities.NotePatch {
	p := entities.NotePatch{
		Title:    r.Title,
		Content:  r.Content,
		Favorite: r.Favorite,
	}
	if r.Tags != nil {
		p.Tags = *r.Tags
		p.SetTags = true
	}
	return p
}

// BookmarkRequest - тело создания и обновления закладки.
type BookmarkRequest struct {
	URL         *string  `json:"url"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        *TagList `json:"tags"`
	Favorite    *bool    `json:"favorite"`
}

// ToInput возвращает данные для создания.
func (r *BookmarkRequest) ToInput() entities.BookmarkInput {
	in := entities.BookmarkInput{
		URL:         deref(r.URL),
		Title:       deref(r.Title),
		Description: deref(r.Description),
	}
	if r.Tags != nil {
		in.Tags = *r.Tags
	}
	if r.Favorite != nil {
		in.Favorite = *r.Favorite
	}
	return in
}

// ToPatch возвращает частичное обновление.
func (r *BookmarkRequest) ToPatch() entities.BookmarkPatch {
	p := entities.BookmarkPatch{
		URL:         r.URL,
		Title:       r.Title,
		Description: r.Description,
		Favorite:    r.Favorite,
	}
	if r.Tags != nil {
		p.Tags = *r.Tags
		p.SetTags = true
	}
	return p
}

// NoteResponse - заметка в ответе. Имена полей совместимы с веб-клиентом.
type NoteResponse struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookmarkResponse - закладка в ответе.
type BookmarkResponse struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Favorite    bool      `json:"favorite"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MessageResponse - подтверждение без данных.
type MessageResponse struct {
	Message string `json:"message"`
}

// FavoriteResponse - результат переключения избранного.
type FavoriteResponse struct {
	Message  string `json:"message"`
	Favorite bool   `json:"favorite"`
}

// ErrorResponse - тело любой ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewNoteResponse переносит заметку в ответ.
func NewNoteResponse(n *entities.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      nonNil(n.Tags),
		Favorite:  n.Favorite,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// NewNoteListResponse переносит список; пустой список сериализуется как [].
func NewNoteListResponse(notes []*entities.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NewNoteResponse(n))
	}
	return out
}

// NewBookmarkResponse переносит закладку в ответ.
func NewBookmarkResponse(b *entities.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		URL:         b.URL,
		Title:       b.Title,
		Description: b.Description,
		Tags:        nonNil(b.Tags),
		Favorite:    b.Favorite,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// NewBookmarkListResponse переносит список закладок.
func NewBookmarkListResponse(bookmarks []*entities.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, NewBookmarkResponse(b))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
