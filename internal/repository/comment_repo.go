package repository

import (
	"context"
	"path/filepath"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/models"
)

// commentRepo stores comments.json next to each article's metadata
type commentRepo struct {
	articlesDir string
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(articlesDir string) CommentRepository {
	return &commentRepo{articlesDir: articlesDir}
}

func (r *commentRepo) path(slug string) string {
	return filepath.Join(r.articlesDir, slug, commentsFile)
}

// Init writes the empty comments scaffold, replacing any previous document
func (r *commentRepo) Init(ctx context.Context, slug string) error {
	return apperrors.Persistence("write comments", writeJSON(r.path(slug), models.NewCommentsDocument(slug)))
}

// Get reads the comments document for slug
func (r *commentRepo) Get(ctx context.Context, slug string) (*models.CommentsDocument, error) {
	var doc models.CommentsDocument
	if err := readJSON(r.path(slug), &doc); err != nil {
		if isNotExist(err) {
			return nil, &apperrors.NotFoundError{Slug: slug}
		}
		return nil, apperrors.Persistence("read comments", err)
	}
	if doc.Comments == nil {
		doc.Comments = []models.Comment{}
	}
	return &doc, nil
}
