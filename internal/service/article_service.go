package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/authors"
	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/content"
	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/repository"
	"github.com/blog-publisher-api/internal/validation"
	"github.com/rs/zerolog"
)

// pageRenderer produces the published HTML page for an article
type pageRenderer interface {
	Render(a *models.Article) (string, error)
}

type articleDeps struct {
	repos     *repository.Repositories
	authors   *authors.Directory
	renderer  pageRenderer
	formatter *content.Formatter
	validator *validation.Validator
	jobs      JobService
	publish   config.PublishConfig
	now       func() time.Time
}

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articleDeps
	log zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(deps articleDeps, log zerolog.Logger) *articleService {
	return &articleService{
		articleDeps: deps,
		log:         log.With().Str("service", "article").Logger(),
	}
}

// Submit validates a submission, derives every article field, writes the
// image, page, metadata and comments documents, and finally the index.
// Nothing is written when validation fails.
func (s *articleService) Submit(ctx context.Context, sub *models.Submission) (*models.PublicationResult, error) {
	if err := validation.ToError(s.validator.ValidateSubmission(sub)); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(sub.Title)
	slug := content.Slugify(title)
	log := s.log.With().Str("slug", slug).Logger()

	if s.publish.DuplicatePolicy == config.DuplicateReject {
		exists, err := s.repos.Article.Exists(ctx, slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, &apperrors.DuplicateSlugError{Slug: slug}
		}
	}

	var imageExt string
	if sub.Image != nil && sub.Image.Filename != "" {
		ext, err := s.validator.ValidateImage(sub.Image)
		if err != nil {
			return nil, err
		}
		imageExt = ext
	}

	format, _ := content.NormalizeFormat(sub.ContentFormat)
	body, err := s.formatter.ToHTML(sub.Content, format)
	if err != nil {
		return nil, apperrors.Persistence("convert content", err)
	}
	// sanitizing can strip a body down to nothing
	if strings.TrimSpace(body) == "" {
		return nil, &apperrors.ValidationError{Fields: []string{"content"}}
	}

	article := s.buildArticle(sub, title, slug, format, body)

	var imageData []byte
	if imageExt != "" {
		filename := s.repos.Image.Filename(slug, imageExt)
		article.Image.Featured = &filename
		imageData = sub.Image.Data
	}

	page, err := s.renderer.Render(article)
	if err != nil {
		return nil, apperrors.Persistence("render article", err)
	}

	// the store rechecks duplicates and writes the image under the slug lock
	if err := s.repos.Article.Create(ctx, article, page, imageData); err != nil {
		return nil, err
	}

	result := &models.PublicationResult{
		ID:    article.ID,
		Slug:  slug,
		Title: title,
		URL:   s.publish.PublicURL(slug),
	}

	if featured := article.FeaturedImage(); featured != "" {
		job, err := s.jobs.EnqueueImageVariants(ctx, slug, s.repos.Image.Path(featured))
		if err != nil {
			// variants are an optimization, the article is already live
			log.Warn().Err(err).Msg("Failed to enqueue image variants")
		} else {
			result.ImageJobID = job.ID
		}
	}

	log.Info().
		Str("author", article.Author.ID).
		Str("category", article.Category).
		Int("read_time", article.ReadTime).
		Int("word_count", article.ContentStats.WordCount).
		Bool("has_image", article.Image.Featured != nil).
		Msg("Article published")

	return result, nil
}

func (s *articleService) buildArticle(sub *models.Submission, title, slug, format, body string) *models.Article {
	now := s.now().UTC()
	excerpt := strings.TrimSpace(sub.Excerpt)
	tags := content.ParseTags(sub.Tags)

	description := excerpt
	if description == "" {
		description = fmt.Sprintf("Professional insights on %s and data architecture.", title)
	}

	return &models.Article{
		ID:        slug,
		Slug:      slug,
		Title:     title,
		Excerpt:   excerpt,
		Author:    s.authors.Lookup(strings.TrimSpace(sub.Author)),
		Published: now,
		Updated:   now,
		Status:    models.StatusPublished,
		ReadTime:  content.ReadingTime(body),
		Category:  strings.TrimSpace(sub.Category),
		Tags:      tags,
		Image: models.Image{
			Alt: title + " featured image",
		},
		SEO: models.SEO{
			MetaTitle:       fmt.Sprintf("%s - %s", title, s.publish.SiteName),
			MetaDescription: description,
			Keywords:        tags,
			Canonical:       s.publish.CanonicalURL(slug),
		},
		Settings: models.Settings{
			Featured:          content.ParseFlag(sub.Featured, false),
			AllowComments:     content.ParseFlag(sub.Comments, true),
			NotifySubscribers: content.ParseFlag(sub.Notification, false),
		},
		Content:       body,
		ContentFormat: format,
		ContentStats:  content.Analyze(body),
	}
}

// Get returns the detail record for slug
func (s *articleService) Get(ctx context.Context, slug string) (*models.Article, error) {
	if err := validation.ValidateSlugParam(slug); err != nil {
		return nil, err
	}
	return s.repos.Article.Get(ctx, slug)
}

// List returns the index in display order
func (s *articleService) List(ctx context.Context) ([]models.IndexEntry, error) {
	return s.repos.Article.ListIndex(ctx)
}

// Comments returns the comments document for slug
func (s *articleService) Comments(ctx context.Context, slug string) (*models.CommentsDocument, error) {
	if err := validation.ValidateSlugParam(slug); err != nil {
		return nil, err
	}
	return s.repos.Comment.Get(ctx, slug)
}
