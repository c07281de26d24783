package service

import (
	"context"
	"time"

	"github.com/blog-publisher-api/internal/authors"
	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/content"
	"github.com/blog-publisher-api/internal/imaging"
	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/render"
	"github.com/blog-publisher-api/internal/repository"
	"github.com/blog-publisher-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for publishing and reading articles
type ArticleService interface {
	Submit(ctx context.Context, sub *models.Submission) (*models.PublicationResult, error)
	Get(ctx context.Context, slug string) (*models.Article, error)
	List(ctx context.Context) ([]models.IndexEntry, error)
	Comments(ctx context.Context, slug string) (*models.CommentsDocument, error)
}

// StatsService defines the interface for counter updates
type StatsService interface {
	Update(ctx context.Context, slug, stat string, increment *int) (*models.Stats, error)
}

// NewsletterService defines the interface for newsletter subscriptions
type NewsletterService interface {
	Subscribe(ctx context.Context, req *models.SubscriptionRequest) (*models.Subscription, error)
	List(ctx context.Context) (*models.NewsletterDocument, error)
}

// JobService defines the interface for job management
type JobService interface {
	StartProcessor(ctx context.Context)
	StopProcessor()
	EnqueueImageVariants(ctx context.Context, slug, sourcePath string) (*models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
}

// VariantCreator produces resized copies of a stored image
type VariantCreator interface {
	CreateVariants(sourcePath, slug string) ([]imaging.Variant, error)
}

// Services holds all service interfaces
type Services struct {
	Article    ArticleService
	Stats      StatsService
	Newsletter NewsletterService
	Job        JobService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, directory *authors.Directory, cfg *config.Config, log zerolog.Logger) *Services {
	validator := validation.NewValidator(cfg.Publish.MaxImageSize, cfg.Publish.MaxStatIncrement)
	processor := imaging.NewProcessor(cfg.Storage.ImagesDir, cfg.Publish.ImageVariantWidths)

	jobSvc := newJobService(repos.Job, processor, cfg.Jobs, log)
	articleSvc := newArticleService(articleDeps{
		repos:     repos,
		authors:   directory,
		renderer:  render.New(render.DefaultSite(cfg.Publish.SiteName, cfg.Publish.SiteURL)),
		formatter: content.NewFormatter(cfg.Publish.ContentPolicy == config.ContentSanitize),
		validator: validator,
		jobs:      jobSvc,
		publish:   cfg.Publish,
		now:       time.Now,
	}, log)

	return &Services{
		Article:    articleSvc,
		Stats:      newStatsService(repos.Article, validator, log),
		Newsletter: newNewsletterService(repos.Newsletter, log),
		Job:        jobSvc,
	}
}
