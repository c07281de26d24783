package repository

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/models"
)

const newsletterFile = "newsletter.json"

// newsletterRepo keeps every subscription in a single document
type newsletterRepo struct {
	path string
	mu   sync.Mutex
}

// NewNewsletterRepo creates a new newsletter repository
func NewNewsletterRepo(dataDir string) NewsletterRepository {
	return &newsletterRepo{path: filepath.Join(dataDir, newsletterFile)}
}

// Upsert replaces the subscription with the same email in place, keeping its
// id, or appends a new one. Stats are recomputed on every write.
func (r *newsletterRepo) Upsert(ctx context.Context, sub *models.Subscription) (*models.NewsletterDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range doc.Subscriptions {
		if doc.Subscriptions[i].Email == sub.Email {
			sub.ID = doc.Subscriptions[i].ID
			doc.Subscriptions[i] = *sub
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Subscriptions = append(doc.Subscriptions, *sub)
	}
	doc.Stats = computeNewsletterStats(doc.Subscriptions)

	if err := writeJSON(r.path, doc); err != nil {
		return nil, apperrors.Persistence("write newsletter", err)
	}
	return doc, nil
}

// Get returns the newsletter document, empty when it was never written
func (r *newsletterRepo) Get(ctx context.Context) (*models.NewsletterDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *newsletterRepo) read() (*models.NewsletterDocument, error) {
	doc := &models.NewsletterDocument{Subscriptions: []models.Subscription{}}
	if err := readJSON(r.path, doc); err != nil {
		if isNotExist(err) {
			return doc, nil
		}
		return nil, apperrors.Persistence("read newsletter", err)
	}
	if doc.Subscriptions == nil {
		doc.Subscriptions = []models.Subscription{}
	}
	return doc, nil
}

func computeNewsletterStats(subs []models.Subscription) models.NewsletterStats {
	stats := models.NewsletterStats{TotalSubscribers: len(subs)}
	for i := range subs {
		if subs[i].Status == models.SubscriptionStatusActive {
			stats.ActiveSubscribers++
		}
		if stats.LastSubscription == nil || subs[i].SubscriptionDate.After(*stats.LastSubscription) {
			t := subs[i].SubscriptionDate
			stats.LastSubscription = &t
		}
	}
	return stats
}
