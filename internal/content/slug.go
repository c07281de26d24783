// Package content holds the pure text transformations of the publishing
// pipeline: slug generation, reading time, body statistics and format
// conversion.
package content

import (
	"regexp"
	"strings"
)

// whitespaceClass lists the runes that separate slug words: ASCII whitespace
// with \v, the information separators U+001C..U+001F, NEL and Unicode category Z
const whitespaceClass = `\s\v\x1c-\x1f\x85\p{Z}`

var (
	// slugStripRegex matches everything except lowercase letters, digits, whitespace and hyphens
	slugStripRegex = regexp.MustCompile(`[^a-z0-9` + whitespaceClass + `-]`)
	whitespaceRun  = regexp.MustCompile(`[` + whitespaceClass + `]+`)
	hyphenRun      = regexp.MustCompile(`-+`)
	validSlugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Slugify derives the URL-safe article identity from a title.
// It never fails; inputs with no letters or digits yield "".
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRegex.ReplaceAllString(slug, "")
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsValidSlug reports whether s is a non-empty kebab-case slug as produced by Slugify
func IsValidSlug(s string) bool {
	return validSlugRegex.MatchString(s)
}
