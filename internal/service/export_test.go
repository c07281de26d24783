package service

import (
	"context"
	"time"

	"github.com/blog-publisher-api/internal/authors"
	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/content"
	"github.com/blog-publisher-api/internal/imaging"
	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/repository"
	"github.com/blog-publisher-api/internal/validation"
	"github.com/rs/zerolog"
)

// NewJobServiceForTest exposes the job processor with an injected variant creator
func NewJobServiceForTest(jobRepo repository.JobRepository, images VariantCreator, cfg config.JobsConfig) JobService {
	return newJobService(jobRepo, images, cfg, zerolog.Nop())
}

// ProcessJobForTest runs one already claimed job on a service built by NewJobServiceForTest
func ProcessJobForTest(ctx context.Context, svc JobService, job *models.Job) {
	svc.(*jobService).processJob(ctx, job)
}

// RenderFunc adapts a function to the page renderer
type RenderFunc func(a *models.Article) (string, error)

func (f RenderFunc) Render(a *models.Article) (string, error) { return f(a) }

// NewArticleServiceForTest builds the submission pipeline with an injected renderer
func NewArticleServiceForTest(repos *repository.Repositories, cfg *config.Config, renderer RenderFunc) ArticleService {
	processor := imaging.NewProcessor(cfg.Storage.ImagesDir, cfg.Publish.ImageVariantWidths)
	return newArticleService(articleDeps{
		repos:     repos,
		authors:   authors.Builtin(),
		renderer:  renderer,
		formatter: content.NewFormatter(false),
		validator: validation.NewValidator(cfg.Publish.MaxImageSize, cfg.Publish.MaxStatIncrement),
		jobs:      newJobService(repos.Job, processor, cfg.Jobs, zerolog.Nop()),
		publish:   cfg.Publish,
		now:       time.Now,
	}, zerolog.Nop())
}
