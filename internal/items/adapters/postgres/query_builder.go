package postgres

import (
	"strconv"
	"strings"

	"notemark/internal/items/domain/entities"
)

// itemKind описывает таблицу элементов и поля текстового поиска.
type itemKind struct {
	table      string
	columns    string
	textFields []string
}

const (
	noteColumns     = "id, user_id, title, content, tags, favorite, created_at, updated_at"
	bookmarkColumns = "id, user_id, url, title, description, tags, favorite, created_at, updated_at"
)

var (
	noteKind = itemKind{
		table:      "notes",
		columns:    noteColumns,
		textFields: []string{"title", "content"},
	}
	bookmarkKind = itemKind{
		table:      "bookmarks",
		columns:    bookmarkColumns,
		textFields: []string{"title", "description", "url"},
	}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern превращает подстроку в шаблон ILIKE, экранируя метасимволы.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildItemQuery рендерит ItemQuery в SELECT. Условие по владельцу есть всегда.
// Теги в таблице хранятся нормализованными, поэтому пересечение проверяется оператором &&.
func buildItemQuery(kind itemKind, q entities.ItemQuery) (string, []any) {
	var sb strings.Builder
	args := []any{q.OwnerID}

	sb.WriteString("SELECT ")
	sb.WriteString(kind.columns)
	sb.WriteString(" FROM ")
	sb.WriteString(kind.table)
	sb.WriteString(" WHERE user_id = $1")

	if q.HasText() {
		args = append(args, likePattern(q.Text))
		p := "$" + strconv.Itoa(len(args))

		conds := make([]string, 0, len(kind.textFields)+1)
		for _, field := range kind.textFields {
			conds = append(conds, field+" ILIKE "+p+` ESCAPE '\'`)
		}
		conds = append(conds, "EXISTS (SELECT 1 FROM unnest(tags) AS t(tag) WHERE t.tag ILIKE "+p+` ESCAPE '\')`)

		sb.WriteString(" AND (")
		sb.WriteString(strings.Join(conds, " OR "))
		sb.WriteString(")")
	}

	if q.HasTags() {
		args = append(args, q.Tags)
		sb.WriteString(" AND tags && $" + strconv.Itoa(len(args)) + "::text[]")
	}

	sb.WriteString(" ORDER BY created_at DESC")
	return sb.String(), args
}

// tagsOrEmpty подменяет nil пустым срезом: колонка tags NOT NULL.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
