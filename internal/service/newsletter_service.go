package service

import (
	"context"
	"strings"
	"time"

	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/repository"
	"github.com/blog-publisher-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultSubscriptionSource = "newsletter_signup"

// newsletterService is the concrete implementation of NewsletterService
type newsletterService struct {
	repo repository.NewsletterRepository
	log  zerolog.Logger
	now  func() time.Time
}

func newNewsletterService(repo repository.NewsletterRepository, log zerolog.Logger) *newsletterService {
	return &newsletterService{
		repo: repo,
		log:  log.With().Str("service", "newsletter").Logger(),
		now:  time.Now,
	}
}

// Subscribe stores a subscription, replacing an earlier one for the same email
func (s *newsletterService) Subscribe(ctx context.Context, req *models.SubscriptionRequest) (*models.Subscription, error) {
	email, err := validation.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = defaultSubscriptionSource
	}

	sub := &models.Subscription{
		ID:               "sub_" + uuid.New().String(),
		Email:            email,
		SessionID:        optional(req.SessionID),
		SubscriptionDate: s.now().UTC(),
		Source:           source,
		PageURL:          optional(req.PageURL),
		Referrer:         optional(req.Referrer),
		Status:           models.SubscriptionStatusActive,
		Preferences: models.SubscriptionPreferences{
			Frequency:  "weekly",
			Categories: []string{"all"},
		},
	}

	doc, err := s.repo.Upsert(ctx, sub)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("subscription_id", sub.ID).
		Str("source", source).
		Int("total_subscribers", doc.Stats.TotalSubscribers).
		Msg("Newsletter subscription stored")

	return sub, nil
}

// List returns every stored subscription with aggregate stats
func (s *newsletterService) List(ctx context.Context) (*models.NewsletterDocument, error) {
	return s.repo.Get(ctx)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
