package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Duplicate slug policies
const (
	DuplicateOverwrite = "overwrite"
	DuplicateReject    = "reject"
)

// Content trust policies
const (
	ContentTrusted  = "trusted"
	ContentSanitize = "sanitize"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// On-disk layout
	Storage StorageConfig

	// Publishing pipeline configuration
	Publish PublishConfig

	// Author directory configuration
	Authors AuthorsConfig

	// Rate limiting for write endpoints
	RateLimit RateLimitConfig

	// Background job configuration
	Jobs JobsConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	ServeStatic     bool
}

// StorageConfig holds the directories every document is written under
type StorageConfig struct {
	SiteRoot    string
	ArticlesDir string
	DataDir     string
	ImagesDir   string
}

// PublishConfig holds settings for the submission pipeline
type PublishConfig struct {
	SiteName           string
	SiteURL            string // canonical base, used in SEO and rendered pages
	PublicBaseURL      string // base of the URL returned to the submitter
	DuplicatePolicy    string
	ContentPolicy      string
	MaxImageSize       int64 // in bytes
	ImageVariantWidths []int
	MaxStatIncrement   int
}

// AuthorsConfig holds author directory settings
type AuthorsConfig struct {
	File      string
	DefaultID string
}

// RateLimitConfig holds per-client limits for write endpoints
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// JobsConfig holds background processor settings
type JobsConfig struct {
	PollInterval time.Duration
	Workers      int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables, seeded from an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	root := getEnv("SITE_ROOT", ".")
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "1977"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			ServeStatic:     getBoolEnv("SERVE_STATIC", true),
		},
		Storage: StorageConfig{
			SiteRoot:    root,
			ArticlesDir: getEnv("ARTICLES_DIR", filepath.Join(root, "articles")),
			DataDir:     getEnv("DATA_DIR", filepath.Join(root, "data")),
			ImagesDir:   getEnv("IMAGES_DIR", filepath.Join(root, "assets", "images", "articles")),
		},
		Publish: PublishConfig{
			SiteName:           getEnv("SITE_NAME", "Kerv Talks-Data Blog"),
			SiteURL:            strings.TrimRight(getEnv("SITE_URL", "https://kervtalksdata.com"), "/"),
			PublicBaseURL:      strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:1977"), "/"),
			DuplicatePolicy:    strings.ToLower(getEnv("DUPLICATE_POLICY", DuplicateOverwrite)),
			ContentPolicy:      strings.ToLower(getEnv("CONTENT_POLICY", ContentTrusted)),
			MaxImageSize:       getInt64Env("MAX_IMAGE_SIZE", 5*1024*1024), // 5MB
			ImageVariantWidths: getIntListEnv("IMAGE_VARIANT_WIDTHS", []int{400, 600, 900, 1200}),
			MaxStatIncrement:   getIntEnv("MAX_STAT_INCREMENT", 100),
		},
		Authors: AuthorsConfig{
			File:      getEnv("AUTHORS_FILE", ""),
			DefaultID: getEnv("DEFAULT_AUTHOR", "data-crusader"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getFloatEnv("RATE_LIMIT_RPS", 2),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Jobs: JobsConfig{
			PollInterval: getDurationEnv("JOB_POLL_INTERVAL", 2*time.Second),
			Workers:      getIntEnv("JOB_WORKERS", 2),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Storage.ArticlesDir == "" || c.Storage.DataDir == "" || c.Storage.ImagesDir == "" {
		return fmt.Errorf("ARTICLES_DIR, DATA_DIR and IMAGES_DIR must not be empty")
	}
	switch c.Publish.DuplicatePolicy {
	case DuplicateOverwrite, DuplicateReject:
	default:
		return fmt.Errorf("DUPLICATE_POLICY must be %q or %q, got %q", DuplicateOverwrite, DuplicateReject, c.Publish.DuplicatePolicy)
	}
	switch c.Publish.ContentPolicy {
	case ContentTrusted, ContentSanitize:
	default:
		return fmt.Errorf("CONTENT_POLICY must be %q or %q, got %q", ContentTrusted, ContentSanitize, c.Publish.ContentPolicy)
	}
	if c.Publish.MaxImageSize <= 0 {
		return fmt.Errorf("MAX_IMAGE_SIZE must be positive")
	}
	if c.Publish.MaxStatIncrement < 1 {
		return fmt.Errorf("MAX_STAT_INCREMENT must be at least 1")
	}
	for _, w := range c.Publish.ImageVariantWidths {
		if w <= 0 {
			return fmt.Errorf("IMAGE_VARIANT_WIDTHS entries must be positive, got %d", w)
		}
	}
	if c.Jobs.Workers < 1 {
		return fmt.Errorf("JOB_WORKERS must be at least 1")
	}
	return nil
}

// CanonicalURL returns the canonical public URL of an article page
func (c *PublishConfig) CanonicalURL(slug string) string {
	return fmt.Sprintf("%s/articles/%s/", c.SiteURL, slug)
}

// PublicURL returns the URL handed back to the submitter
func (c *PublishConfig) PublicURL(slug string) string {
	return fmt.Sprintf("%s/articles/%s/", c.PublicBaseURL, slug)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getIntListEnv parses a comma separated list, falling back on any malformed entry
func getIntListEnv(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return defaultValue
		}
		out = append(out, n)
	}
	return out
}
