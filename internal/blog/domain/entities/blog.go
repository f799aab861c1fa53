// Package entities содержит сущности предметной области блога.
package entities

import (
	"strings"
	"time"
)

// Blog - запись в блоге. Неизменяема после создания.
type Blog struct {
	ID          int64
	Username    string
	Subject     string
	Description string
	PostDate    time.Time
	Tags        []string
}

// TagList возвращает теги через запятую.
func (b *Blog) TagList() string {
	return strings.Join(b.Tags, ", ")
}

// BlogSummary - краткое описание записи для аналитических отчетов.
type BlogSummary struct {
	ID      int64  `json:"id"`
	Subject string `json:"subject"`
}

// NormalizeTags разбирает строку тегов: делит по запятой, обрезает пробелы,
// приводит к нижнему регистру, отбрасывает пустые и повторы. Порядок первого появления сохраняется.
func NormalizeTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	tags := make([]string, 0, len(parts))

	for _, part := range parts {
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

	return tags
}
