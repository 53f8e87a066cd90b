package entities

import "strings"

// ItemQuery - фильтр списка элементов одного владельца.
//
// Элемент подходит, если принадлежит владельцу, и, когда задан Text, Text
// входит без учета регистра в заголовок, текст (описание), URL или любой тег,
// и, когда заданы Tags, хотя бы один тег элемента входит в Tags.
// Условия объединяются через AND, сортировка - от новых к старым.
type ItemQuery struct {
	OwnerID string
	// Text - подстрока поиска; пустая строка означает отсутствие условия.
	Text string
	// Tags - нормализованное множество тегов; пустое означает отсутствие условия.
	Tags []string
}

// NewItemQuery строит запрос из параметров q и tags (теги через запятую).
func NewItemQuery(ownerID, q, tagsCSV string) ItemQuery {
	return ItemQuery{
		OwnerID: ownerID,
		Text:    strings.TrimSpace(q),
		Tags:    NormalizeTags(tagsCSV),
	}
}

// HasText сообщает, задан ли текстовый поиск.
func (q ItemQuery) HasText() bool {
	return q.Text != ""
}

// HasTags сообщает, задан ли фильтр по тегам.
func (q ItemQuery) HasTags() bool {
	return len(q.Tags) > 0
}

// MatchesNote проверяет заметку тем же предикатом, что и SQL-запрос.
func (q ItemQuery) MatchesNote(n *Note) bool {
	if n == nil || n.UserID != q.OwnerID {
		return false
	}
	return q.matchesText(n.Tags, n.Title, n.Content) && q.matchesTags(n.Tags)
}

// MatchesBookmark проверяет закладку тем же предикатом, что и SQL-запрос.
func (q ItemQuery) MatchesBookmark(b *Bookmark) bool {
	if b == nil || b.UserID != q.OwnerID {
		return false
	}
	return q.matchesText(b.Tags, b.Title, b.Description, b.URL) && q.matchesTags(b.Tags)
}

func (q ItemQuery) matchesText(tags []string, fields ...string) bool {
	if !q.HasText() {
		return true
	}
	needle := strings.ToLower(q.Text)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

func (q ItemQuery) matchesTags(tags []string) bool {
	if !q.HasTags() {
		return true
	}
	for _, t := range tags {
		lt := strings.ToLower(t)
		for _, want := range q.Tags {
			if lt == want {
				return true
			}
		}
	}
	return false
}
