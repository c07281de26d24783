package content

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple title", input: "Hello World", expected: "hello-world"},
		{name: "trailing punctuation", input: "Data Architecture 101!", expected: "data-architecture-101"},
		{name: "multiple spaces", input: "Hello   World", expected: "hello-world"},
		{name: "spaced hyphen", input: "Hello - World", expected: "hello-world"},
		{name: "leading and trailing spaces", input: "  Hello World  ", expected: "hello-world"},
		{name: "tabs and newlines", input: "Hello\t\nWorld", expected: "hello-world"},
		{name: "non-breaking space", input: "Hello\u00a0World", expected: "hello-world"},
		{name: "line separator", input: "a\u2028b", expected: "a-b"},
		{name: "paragraph separator", input: "a\u2029b", expected: "a-b"},
		{name: "next line", input: "a\u0085b", expected: "a-b"},
		{name: "vertical tab", input: "a\vb", expected: "a-b"},
		{name: "information separators", input: "a\x1c\x1d\x1e\x1fb", expected: "a-b"},
		{name: "ideographic space", input: "a\u3000b", expected: "a-b"},
		{name: "leading hyphens", input: "--Hello--", expected: "hello"},
		{name: "accents are stripped not folded", input: "Café Society", expected: "caf-society"},
		{name: "all punctuation", input: "!@#$%^&*()", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "non latin", input: "日本語タイトル", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"Data Architecture 101!",
		"  --Mixed   CASE -- input__with_underscores  ",
		"a - - b",
		"Ünïcödé and ASCII",
		"",
	}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"hello-world", true},
		{"data-architecture-101", true},
		{"", false},
		{"-hello", false},
		{"hello--world", false},
		{"../etc", false},
		{"Hello", false},
	}
	for _, tt := range tests {
		if got := IsValidSlug(tt.input); got != tt.want {
			t.Errorf("IsValidSlug(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
