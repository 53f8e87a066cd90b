package entities

import "strings"

// NormalizeTags приводит теги к каноническому виду: каждый элемент дробится по
// запятой, части обрезаются, пустые отбрасываются, регистр понижается, дубликаты
// удаляются с сохранением порядка первого вхождения. Результат никогда не nil.
func NormalizeTags(raw ...string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			tag := strings.ToLower(strings.TrimSpace(part))
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags
}
