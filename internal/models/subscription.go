package models

import (
	"time"
)

// SubscriptionStatusActive marks a live newsletter subscription
const SubscriptionStatusActive = "active"

// SubscriptionRequest is the JSON body of a newsletter signup
type SubscriptionRequest struct {
	Email     string `json:"email"`
	SessionID string `json:"sessionId"`
	Source    string `json:"source"`
	PageURL   string `json:"pageUrl"`
	Referrer  string `json:"referrer"`
}

// SubscriptionPreferences holds delivery preferences
type SubscriptionPreferences struct {
	Frequency  string   `json:"frequency"`
	Categories []string `json:"categories"`
}

// Subscription is a stored newsletter subscription
type Subscription struct {
	ID               string                  `json:"id"`
	Email            string                  `json:"email"`
	SessionID        *string                 `json:"sessionId"`
	SubscriptionDate time.Time               `json:"subscriptionDate"`
	Source           string                  `json:"source"`
	PageURL          *string                 `json:"pageUrl"`
	Referrer         *string                 `json:"referrer"`
	Status           string                  `json:"status"`
	Preferences      SubscriptionPreferences `json:"preferences"`
}

// NewsletterStats aggregates the newsletter document
type NewsletterStats struct {
	TotalSubscribers  int        `json:"totalSubscribers"`
	ActiveSubscribers int        `json:"activeSubscribers"`
	LastSubscription  *time.Time `json:"lastSubscription"`
}

// NewsletterDocument is persisted as data/newsletter.json
type NewsletterDocument struct {
	Subscriptions []Subscription  `json:"subscriptions"`
	Stats         NewsletterStats `json:"stats"`
}
