package repository

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/blog-publisher-api/internal/apperrors"
)

// imageRepo stores featured images as {slug}{ext} under the images root
type imageRepo struct {
	dir string
}

// NewImageRepo creates a new image repository
func NewImageRepo(dir string) ImageRepository {
	return &imageRepo{dir: dir}
}

// Filename returns the stored name of a featured image
func (r *imageRepo) Filename(slug, ext string) string {
	return slug + strings.ToLower(ext)
}

// Save writes data under filename
func (r *imageRepo) Save(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return apperrors.Persistence("write image", writeFileAtomic(r.Path(filename), data))
}

// Path returns the absolute location of a stored image
func (r *imageRepo) Path(filename string) string {
	return filepath.Join(r.dir, filepath.Base(filename))
}
