package content

import (
	"regexp"
	"strings"
)

// WordsPerMinute is the reading speed used for read time estimates
const WordsPerMinute = 200

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// StripTags removes anything that looks like a markup tag
func StripTags(s string) string {
	return tagRegex.ReplaceAllString(s, "")
}

// WordCount counts whitespace separated words in s after stripping tags
func WordCount(s string) int {
	return len(strings.Fields(StripTags(s)))
}

// ReadingTime estimates whole minutes of reading, floored, never below 1
func ReadingTime(rendered string) int {
	minutes := WordCount(rendered) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
