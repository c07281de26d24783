package mocks

import (
	"context"
	"sync"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/imaging"
	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	SubmitFunc   func(ctx context.Context, sub *models.Submission) (*models.PublicationResult, error)
	GetFunc      func(ctx context.Context, slug string) (*models.Article, error)
	CommentsFunc func(ctx context.Context, slug string) (*models.CommentsDocument, error)
	Articles     map[string]*models.Article
	Index        []models.IndexEntry
	Submissions  []*models.Submission
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{
		Articles:    make(map[string]*models.Article),
		Index:       make([]models.IndexEntry, 0),
		Submissions: make([]*models.Submission, 0),
	}
}

func (m *MockArticleService) Submit(ctx context.Context, sub *models.Submission) (*models.PublicationResult, error) {
	m.Submissions = append(m.Submissions, sub)
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, sub)
	}
	return &models.PublicationResult{
		ID:    "test-article",
		Slug:  "test-article",
		Title: sub.Title,
		URL:   "http://localhost:1977/articles/test-article/",
	}, nil
}

func (m *MockArticleService) Get(ctx context.Context, slug string) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, slug)
	}
	a, ok := m.Articles[slug]
	if !ok {
		return nil, &apperrors.NotFoundError{Slug: slug}
	}
	return a, nil
}

func (m *MockArticleService) List(ctx context.Context) ([]models.IndexEntry, error) {
	return m.Index, nil
}

func (m *MockArticleService) Comments(ctx context.Context, slug string) (*models.CommentsDocument, error) {
	if m.CommentsFunc != nil {
		return m.CommentsFunc(ctx, slug)
	}
	if _, ok := m.Articles[slug]; !ok {
		return nil, &apperrors.NotFoundError{Slug: slug}
	}
	return models.NewCommentsDocument(slug), nil
}

// StatsCall records one call to MockStatsService.Update
type StatsCall struct {
	Slug      string
	Stat      string
	Increment *int
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	UpdateFunc func(ctx context.Context, slug, stat string, increment *int) (*models.Stats, error)
	Calls      []StatsCall
}

// Verify interface compliance
var _ service.StatsService = (*MockStatsService)(nil)

func NewMockStatsService() *MockStatsService {
	return &MockStatsService{}
}

func (m *MockStatsService) Update(ctx context.Context, slug, stat string, increment *int) (*models.Stats, error) {
	m.Calls = append(m.Calls, StatsCall{Slug: slug, Stat: stat, Increment: increment})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, slug, stat, increment)
	}
	return &models.Stats{Views: 1}, nil
}

// MockNewsletterService is a mock implementation of NewsletterService
type MockNewsletterService struct {
	SubscribeFunc func(ctx context.Context, req *models.SubscriptionRequest) (*models.Subscription, error)
	Document      *models.NewsletterDocument
	Requests      []*models.SubscriptionRequest
}

// Verify interface compliance
var _ service.NewsletterService = (*MockNewsletterService)(nil)

func NewMockNewsletterService() *MockNewsletterService {
	return &MockNewsletterService{
		Document: &models.NewsletterDocument{Subscriptions: []models.Subscription{}},
	}
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, req *models.SubscriptionRequest) (*models.Subscription, error) {
	m.Requests = append(m.Requests, req)
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, req)
	}
	return &models.Subscription{ID: "sub_test", Email: req.Email, Status: models.SubscriptionStatusActive}, nil
}

func (m *MockNewsletterService) List(ctx context.Context) (*models.NewsletterDocument, error) {
	return m.Document, nil
}

// MockJobService is a mock implementation of JobService
type MockJobService struct {
	Jobs     map[string]*models.Job
	Enqueued []*models.Job
	Started  bool
	Stopped  bool
}

// Verify interface compliance
var _ service.JobService = (*MockJobService)(nil)

func NewMockJobService() *MockJobService {
	return &MockJobService{Jobs: make(map[string]*models.Job)}
}

func (m *MockJobService) StartProcessor(ctx context.Context) {
	m.Started = true
}

func (m *MockJobService) StopProcessor() {
	m.Stopped = true
}

func (m *MockJobService) EnqueueImageVariants(ctx context.Context, slug, sourcePath string) (*models.Job, error) {
	job := &models.Job{
		ID:         "test-job-id",
		Type:       models.JobTypeImageVariants,
		Slug:       slug,
		Status:     models.JobStatusPending,
		SourcePath: sourcePath,
	}
	m.Enqueued = append(m.Enqueued, job)
	m.Jobs[job.ID] = job
	return job, nil
}

func (m *MockJobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return m.Jobs[id], nil
}

// MockVariantCreator is a mock implementation of VariantCreator
type MockVariantCreator struct {
	CreateFunc func(sourcePath, slug string) ([]imaging.Variant, error)

	mu    sync.Mutex
	calls []string
}

// Verify interface compliance
var _ service.VariantCreator = (*MockVariantCreator)(nil)

func (m *MockVariantCreator) CreateVariants(sourcePath, slug string) ([]imaging.Variant, error) {
	m.mu.Lock()
	m.calls = append(m.calls, slug)
	m.mu.Unlock()

	if m.CreateFunc != nil {
		return m.CreateFunc(sourcePath, slug)
	}
	return []imaging.Variant{{Width: 400, Filename: slug + "-400w.jpg"}}, nil
}

// Calls returns the slugs CreateVariants was called with
func (m *MockVariantCreator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
