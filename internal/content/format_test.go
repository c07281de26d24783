package content

import (
	"strings"
	"testing"

	"github.com/blog-publisher-api/internal/models"
)

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", models.FormatHTML, false},
		{"HTML", models.FormatHTML, false},
		{"markdown", models.FormatMarkdown, false},
		{"md", models.FormatMarkdown, false},
		{"rst", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("NormalizeFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestFormatterTrustedPassthrough(t *testing.T) {
	f := NewFormatter(false)
	body := `<p onclick="x()">hi</p><script>alert(1)</script>`

	got, err := f.ToHTML(body, models.FormatHTML)
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	if got != body {
		t.Errorf("Trusted HTML should pass through unchanged, got %q", got)
	}
}

func TestFormatterMarkdown(t *testing.T) {
	f := NewFormatter(false)

	got, err := f.ToHTML("# Title\n\nSome *emphasis*.", models.FormatMarkdown)
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	if !strings.Contains(got, "<h1>Title</h1>") || !strings.Contains(got, "<em>emphasis</em>") {
		t.Errorf("Unexpected markdown output %q", got)
	}
}

func TestFormatterSanitize(t *testing.T) {
	f := NewFormatter(true)
	if !f.Sanitizing() {
		t.Fatal("Expected sanitizing formatter")
	}

	got, err := f.ToHTML(`<p>hi</p><script>alert(1)</script>`, models.FormatHTML)
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("Script should be removed, got %q", got)
	}
	if !strings.Contains(got, "<p>hi</p>") {
		t.Errorf("Safe markup should survive, got %q", got)
	}
}
