package models

import (
	"time"
)

// StatusPublished is the only status the pipeline currently assigns
const StatusPublished = "published"

// Counter names accepted by the stats endpoint
const (
	StatViews    = "views"
	StatLikes    = "likes"
	StatComments = "comments"
	StatShares   = "shares"
)

// Content formats accepted on submission
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Article is the full per-article detail record, persisted as metadata.json
type Article struct {
	ID            string       `json:"id"`
	Slug          string       `json:"slug"`
	Title         string       `json:"title"`
	Excerpt       string       `json:"excerpt"`
	Author        Author       `json:"author"`
	Published     time.Time    `json:"published"`
	Updated       time.Time    `json:"updated"`
	Status        string       `json:"status"`
	ReadTime      int          `json:"readTime"`
	Category      string       `json:"category"`
	Tags          []string     `json:"tags"`
	Image         Image        `json:"image"`
	Stats         Stats        `json:"stats"`
	SEO           SEO          `json:"seo"`
	Settings      Settings     `json:"settings"`
	Content       string       `json:"content"`
	ContentFormat string       `json:"contentFormat"`
	ContentStats  ContentStats `json:"contentStats"`
}

// Author is a profile snapshot taken from the author directory at creation time
type Author struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Role      string `json:"role" yaml:"role"`
	Avatar    string `json:"avatar" yaml:"avatar"`
	Bio       string `json:"bio" yaml:"bio"`
	Articles  int    `json:"articles" yaml:"articles"`
	Followers int    `json:"followers" yaml:"followers"`
}

// Image describes the optional featured image. Featured is nil when no image was uploaded.
type Image struct {
	Featured *string `json:"featured"`
	Alt      string  `json:"alt"`
}

// Stats holds the four independent article counters
type Stats struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// SEO is derived once at creation
type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	Canonical       string   `json:"canonical"`
}

// Settings are captured from the submission and not editable afterwards
type Settings struct {
	Featured          bool `json:"featured"`
	AllowComments     bool `json:"allowComments"`
	NotifySubscribers bool `json:"notifySubscribers"`
	Archived          bool `json:"archived"`
}

// ContentStats are derived from the stored body
type ContentStats struct {
	WordCount      int    `json:"wordCount"`
	CharacterCount int    `json:"characterCount"`
	HasImages      bool   `json:"hasImages"`
	HasCode        bool   `json:"hasCode"`
	ReadingLevel   string `json:"readingLevel"`
}

// counter returns a pointer to the named counter, or nil for an unknown name
func (s *Stats) counter(key string) *int {
	switch key {
	case StatViews:
		return &s.Views
	case StatLikes:
		return &s.Likes
	case StatComments:
		return &s.Comments
	case StatShares:
		return &s.Shares
	default:
		return nil
	}
}

// IsValidStat reports whether key names one of the four counters
func IsValidStat(key string) bool {
	var s Stats
	return s.counter(key) != nil
}

// Add applies delta to the named counter, clamping at zero.
// It returns false if key is not a recognized counter.
func (s *Stats) Add(key string, delta int) bool {
	c := s.counter(key)
	if c == nil {
		return false
	}
	*c += delta
	if *c < 0 {
		*c = 0
	}
	return true
}

// FeaturedImage returns the featured filename or "" when absent
func (a *Article) FeaturedImage() string {
	if a.Image.Featured == nil {
		return ""
	}
	return *a.Image.Featured
}
