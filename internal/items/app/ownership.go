// Package app реализует сценарии работы с заметками и закладками.
package app

import (
	"github.com/google/uuid"

	"notemark/internal/items/domain/entities"
)

// owned - элемент с владельцем.
type owned interface {
	Owner() string
}

// assertOwner проверяет, что элемент принадлежит вызывающему. Чужой элемент
// неотличим от отсутствующего.
func assertOwner(item owned, callerID string) error {
	if item == nil || callerID == "" || item.Owner() != callerID {
		return entities.ErrNotFound
	}
	return nil
}

// parseItemID приводит идентификатор к каноническому виду UUID. Некорректный
// идентификатор не может указывать на существующий элемент.
func parseItemID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", entities.ErrNotFound
	}
	return parsed.String(), nil
}
