package content

import (
	"strings"
	"unicode/utf8"

	"github.com/blog-publisher-api/internal/models"
)

const defaultReadingLevel = "intermediate"

// Analyze derives the content statistics stored alongside an article body
func Analyze(body string) models.ContentStats {
	return models.ContentStats{
		WordCount:      WordCount(body),
		CharacterCount: utf8.RuneCountInString(body),
		HasImages:      strings.Contains(body, "<img"),
		HasCode:        strings.Contains(body, "<code") || strings.Contains(body, "<pre"),
		ReadingLevel:   defaultReadingLevel,
	}
}

// ParseTags splits a comma separated tag list, trimming entries and dropping empties.
// Order is preserved and duplicates are kept.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseFlag interprets a checkbox-style form value, falling back to def when empty
func ParseFlag(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return def
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}
