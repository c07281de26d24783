package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/models"
)

const (
	pageFile     = "index.html"
	metadataFile = "metadata.json"
	commentsFile = "comments.json"
	indexFile    = "articles.json"
)

// articleRepo is the filesystem implementation of ArticleRepository.
// Lock order is always slug, then index.
type articleRepo struct {
	articlesDir      string
	indexPath        string
	comments         CommentRepository
	images           ImageRepository
	rejectDuplicates bool

	slugLocks *keyedMutex
	indexMu   sync.Mutex
	now       func() time.Time
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(storage config.StorageConfig, comments CommentRepository, images ImageRepository, rejectDuplicates bool) ArticleRepository {
	return &articleRepo{
		articlesDir:      storage.ArticlesDir,
		indexPath:        filepath.Join(storage.DataDir, indexFile),
		comments:         comments,
		images:           images,
		rejectDuplicates: rejectDuplicates,
		slugLocks:        newKeyedMutex(),
		now:              time.Now,
	}
}

func (r *articleRepo) dir(slug string) string {
	return filepath.Join(r.articlesDir, slug)
}

func (r *articleRepo) metadataPath(slug string) string {
	return filepath.Join(r.dir(slug), metadataFile)
}

// Create writes the featured image (when image is non-nil), the page, metadata
// and empty comments document, then updates the index. The duplicate check and
// every write happen under the slug lock. The index is only touched once every
// per-article file exists.
func (r *articleRepo) Create(ctx context.Context, article *models.Article, page string, image []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unlock := r.slugLocks.Lock(article.Slug)
	defer unlock()

	if r.rejectDuplicates {
		exists, err := r.exists(article.Slug)
		if err != nil {
			return err
		}
		if exists {
			return &apperrors.DuplicateSlugError{Slug: article.Slug}
		}
	}

	if featured := article.FeaturedImage(); image != nil && featured != "" {
		if err := r.images.Save(ctx, featured, image); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(r.dir(article.Slug), dirPerm); err != nil {
		return apperrors.Persistence("create article directory", err)
	}
	if err := writeFileAtomic(filepath.Join(r.dir(article.Slug), pageFile), []byte(page)); err != nil {
		return apperrors.Persistence("write page", err)
	}
	if err := writeJSON(r.metadataPath(article.Slug), article); err != nil {
		return apperrors.Persistence("write metadata", err)
	}
	if err := r.comments.Init(ctx, article.Slug); err != nil {
		return err
	}

	return r.UpsertIndex(ctx, article)
}

// Get loads the detail record for slug
func (r *articleRepo) Get(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	if err := readJSON(r.metadataPath(slug), &article); err != nil {
		if isNotExist(err) {
			return nil, &apperrors.NotFoundError{Slug: slug}
		}
		return nil, apperrors.Persistence("read metadata", err)
	}
	return &article, nil
}

// Exists checks whether a detail record exists for slug
func (r *articleRepo) Exists(ctx context.Context, slug string) (bool, error) {
	return r.exists(slug)
}

func (r *articleRepo) exists(slug string) (bool, error) {
	_, err := os.Stat(r.metadataPath(slug))
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, apperrors.Persistence("stat metadata", err)
}

// ListIndex returns the index entries in display order
func (r *articleRepo) ListIndex(ctx context.Context) ([]models.IndexEntry, error) {
	r.indexMu.Lock()
	defer r.indexMu.Unlock()

	index, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	return index.Articles, nil
}

// UpsertIndex replaces the entry with the article's id in place, or
// prepends a new one.
func (r *articleRepo) UpsertIndex(ctx context.Context, article *models.Article) error {
	r.indexMu.Lock()
	defer r.indexMu.Unlock()

	index, err := r.readIndex()
	if err != nil {
		return err
	}

	entry := models.NewIndexEntry(article)
	replaced := false
	for i := range index.Articles {
		if index.Articles[i].ID == entry.ID {
			index.Articles[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		index.Articles = append([]models.IndexEntry{entry}, index.Articles...)
	}

	return apperrors.Persistence("write index", writeJSON(r.indexPath, index))
}

func (r *articleRepo) readIndex() (*models.ArticleIndex, error) {
	index := &models.ArticleIndex{Articles: []models.IndexEntry{}}
	if err := readJSON(r.indexPath, index); err != nil {
		if isNotExist(err) {
			return index, nil
		}
		return nil, apperrors.Persistence("read index", err)
	}
	if index.Articles == nil {
		index.Articles = []models.IndexEntry{}
	}
	return index, nil
}

// UpdateStats adds delta to one counter and mirrors the result into the index
func (r *articleRepo) UpdateStats(ctx context.Context, slug, stat string, delta int) (*models.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := r.slugLocks.Lock(slug)
	defer unlock()

	article, err := r.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !article.Stats.Add(stat, delta) {
		return nil, &apperrors.InvalidStatError{Stat: stat}
	}
	article.Updated = r.now().UTC()

	if err := writeJSON(r.metadataPath(slug), article); err != nil {
		return nil, apperrors.Persistence("write metadata", err)
	}
	if err := r.UpsertIndex(ctx, article); err != nil {
		return nil, err
	}

	stats := article.Stats
	return &stats, nil
}
