package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/blog-publisher-api/internal/models"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Formatter turns a submitted body into the HTML that is stored and rendered
type Formatter struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy // nil when content is trusted
}

// NewFormatter creates a Formatter. With sanitize set, every body is passed
// through a user-generated-content policy after conversion.
func NewFormatter(sanitize bool) *Formatter {
	f := &Formatter{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// authors submit raw HTML inside markdown too
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
	if sanitize {
		f.policy = bluemonday.UGCPolicy()
	}
	return f
}

// NormalizeFormat maps an empty or mixed-case format name onto a known one
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", models.FormatHTML:
		return models.FormatHTML, nil
	case models.FormatMarkdown, "md":
		return models.FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported content format %q", format)
	}
}

// ToHTML converts body according to format and applies the sanitizing policy, if any
func (f *Formatter) ToHTML(body, format string) (string, error) {
	out := body
	if format == models.FormatMarkdown {
		var buf bytes.Buffer
		if err := f.markdown.Convert([]byte(body), &buf); err != nil {
			return "", fmt.Errorf("failed to convert markdown: %w", err)
		}
		out = buf.String()
	}
	if f.policy != nil {
		out = f.policy.Sanitize(out)
	}
	return out, nil
}

// Sanitizing reports whether bodies are rewritten by a sanitizing policy
func (f *Formatter) Sanitizing() bool {
	return f.policy != nil
}
