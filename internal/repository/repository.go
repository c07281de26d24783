package repository

import (
	"context"

	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/models"
)

// ArticleRepository defines the on-disk article store and the global index
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article, page string, image []byte) error
	Get(ctx context.Context, slug string) (*models.Article, error)
	Exists(ctx context.Context, slug string) (bool, error)
	ListIndex(ctx context.Context) ([]models.IndexEntry, error)
	UpsertIndex(ctx context.Context, article *models.Article) error
	UpdateStats(ctx context.Context, slug, stat string, delta int) (*models.Stats, error)
}

// CommentRepository defines the interface for per-article comment documents
type CommentRepository interface {
	Init(ctx context.Context, slug string) error
	Get(ctx context.Context, slug string) (*models.CommentsDocument, error)
}

// ImageRepository stores uploaded featured images
type ImageRepository interface {
	Filename(slug, ext string) string
	Save(ctx context.Context, filename string, data []byte) error
	Path(filename string) string
}

// NewsletterRepository defines the interface for the newsletter document
type NewsletterRepository interface {
	Upsert(ctx context.Context, sub *models.Subscription) (*models.NewsletterDocument, error)
	Get(ctx context.Context) (*models.NewsletterDocument, error)
}

// JobRepository defines the interface for job data operations
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	GetPendingJobs(ctx context.Context) ([]*models.Job, error)
	MarkJobAsProcessing(ctx context.Context, jobID string) (bool, error)
	ResetProcessing(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article    ArticleRepository
	Comment    CommentRepository
	Image      ImageRepository
	Newsletter NewsletterRepository
	Job        JobRepository
}

// New creates all repositories rooted at the configured directories
func New(storage config.StorageConfig, duplicatePolicy string) *Repositories {
	comments := NewCommentRepo(storage.ArticlesDir)
	images := NewImageRepo(storage.ImagesDir)
	return &Repositories{
		Article:    NewArticleRepo(storage, comments, images, duplicatePolicy == config.DuplicateReject),
		Comment:    comments,
		Image:      images,
		Newsletter: NewNewsletterRepo(storage.DataDir),
		Job:        NewJobRepo(storage.DataDir),
	}
}
