package content

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "400 words", content: words(400), want: 2},
		{name: "150 words floors then clamps", content: words(150), want: 1},
		{name: "399 words floors", content: words(399), want: 1},
		{name: "empty", content: "", want: 1},
		{name: "markup is not counted", content: "<p>" + strings.Repeat("<b>word</b> ", 400) + "</p>", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingTime(tt.content); got != tt.want {
				t.Errorf("ReadingTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("<p>hello <em>big</em>\nworld</p>"); got != 3 {
		t.Errorf("WordCount = %d, want 3", got)
	}
}
