package authors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blog-publisher-api/internal/models"
)

func TestBuiltinLookup(t *testing.T) {
	d := Builtin()

	if got := d.Lookup("web-weaver"); got.Name != "Web Weaver" {
		t.Errorf("Expected Web Weaver, got %q", got.Name)
	}
	if got := d.Lookup("nobody"); got.ID != DefaultAuthorID {
		t.Errorf("Unknown id should resolve to default, got %q", got.ID)
	}
	if got := d.Lookup(""); got.ID != DefaultAuthorID {
		t.Errorf("Empty id should resolve to default, got %q", got.ID)
	}
	if len(d.IDs()) != 3 {
		t.Errorf("Expected 3 authors, got %v", d.IDs())
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	d := Builtin()
	a := d.Lookup("cosmic-analyst")
	a.Name = "Changed"

	if d.Lookup("cosmic-analyst").Name != "Cosmic Analyst" {
		t.Error("Directory must not be mutable through a lookup result")
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name      string
		list      []models.Author
		defaultID string
	}{
		{name: "empty", list: nil, defaultID: "a"},
		{name: "missing id", list: []models.Author{{Name: "X"}}, defaultID: "a"},
		{name: "duplicate", list: []models.Author{{ID: "a"}, {ID: "a"}}, defaultID: "a"},
		{name: "unknown default", list: []models.Author{{ID: "a"}}, defaultID: "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.list, tt.defaultID); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authors.yaml")
	yml := `default: guest
authors:
  - id: guest
    name: Guest Writer
    role: Contributor
    avatar: "✍️"
    bio: Occasional contributor.
    articles: 1
    followers: 2
  - id: editor
    name: The Editor
    role: Editor
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	d, err := LoadFile(path, "")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if d.DefaultID() != "guest" {
		t.Errorf("Expected default guest, got %q", d.DefaultID())
	}
	if got := d.Lookup("missing"); got.Name != "Guest Writer" || got.Followers != 2 {
		t.Errorf("Unexpected fallback %+v", got)
	}

	d, err = LoadFile(path, "editor")
	if err != nil {
		t.Fatalf("LoadFile with override failed: %v", err)
	}
	if got := d.Lookup("missing"); got.ID != "editor" {
		t.Errorf("Override default not applied, got %q", got.ID)
	}
}
