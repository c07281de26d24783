// Package authors provides the author directory used to snapshot author
// profiles into published articles.
package authors

import (
	"fmt"
	"os"
	"sort"

	"github.com/blog-publisher-api/internal/models"
	"gopkg.in/yaml.v3"
)

// Directory is an immutable lookup of author id to profile.
// Unknown ids resolve to the default author.
type Directory struct {
	authors   map[string]models.Author
	defaultID string
}

// fileFormat is the YAML layout accepted by LoadFile
type fileFormat struct {
	Default string          `yaml:"default"`
	Authors []models.Author `yaml:"authors"`
}

// New builds a directory from a list of profiles. defaultID must name one of them.
func New(list []models.Author, defaultID string) (*Directory, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("author directory is empty")
	}
	authors := make(map[string]models.Author, len(list))
	for _, a := range list {
		if a.ID == "" {
			return nil, fmt.Errorf("author %q has no id", a.Name)
		}
		if _, dup := authors[a.ID]; dup {
			return nil, fmt.Errorf("duplicate author id %q", a.ID)
		}
		authors[a.ID] = a
	}
	if _, ok := authors[defaultID]; !ok {
		return nil, fmt.Errorf("default author %q is not in the directory", defaultID)
	}
	return &Directory{authors: authors, defaultID: defaultID}, nil
}

// LoadFile reads a YAML author directory. A non-empty defaultID overrides the file's default.
func LoadFile(path, defaultID string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read author directory: %w", err)
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse author directory: %w", err)
	}
	if defaultID == "" {
		defaultID = f.Default
	}
	return New(f.Authors, defaultID)
}

// Lookup returns the profile for id, or the default author when id is unknown
func (d *Directory) Lookup(id string) models.Author {
	if a, ok := d.authors[id]; ok {
		return a
	}
	return d.authors[d.defaultID]
}

// DefaultID returns the id unknown authors resolve to
func (d *Directory) DefaultID() string {
	return d.defaultID
}

// IDs returns the known author ids in sorted order
func (d *Directory) IDs() []string {
	ids := make([]string, 0, len(d.authors))
	for id := range d.authors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
