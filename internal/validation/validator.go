package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/content"
	"github.com/blog-publisher-api/internal/models"
	"github.com/gabriel-vasile/mimetype"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	allowedExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	allowedMIMETypes  = map[string]bool{"image/jpeg": true, "image/png": true, "image/gif": true, "image/webp": true}
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Validator provides validation methods
type Validator struct {
	maxImageSize     int64
	maxStatIncrement int
}

// NewValidator creates a new validator instance
func NewValidator(maxImageSize int64, maxStatIncrement int) *Validator {
	return &Validator{
		maxImageSize:     maxImageSize,
		maxStatIncrement: maxStatIncrement,
	}
}

// ValidateSubmission checks the form fields of a create-article request.
// Required fields are checked after trimming whitespace.
func (v *Validator) ValidateSubmission(sub *models.Submission) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(sub.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	} else if content.Slugify(sub.Title) == "" {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: "title must contain at least one letter or digit",
			Value:   sub.Title,
		})
	}

	if strings.TrimSpace(sub.Category) == "" {
		errors = append(errors, ValidationError{Field: "category", Message: "category is required"})
	}

	if strings.TrimSpace(sub.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	if _, err := content.NormalizeFormat(sub.ContentFormat); err != nil {
		errors = append(errors, ValidationError{Field: "contentFormat", Message: err.Error(), Value: sub.ContentFormat})
	}

	return errors
}

// ValidateImage checks size, extension and sniffed content type of an upload,
// returning the normalized extension to store it under.
func (v *Validator) ValidateImage(upload *models.ImageUpload) (string, error) {
	size := int64(len(upload.Data))
	if size > v.maxImageSize {
		return "", &apperrors.ImageTooLargeError{Size: size, Limit: v.maxImageSize}
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !allowedExtensions[ext] {
		return "", &apperrors.UnsupportedImageError{Filename: upload.Filename}
	}

	// the extension is only a claim, the bytes must be an image too
	detected := mimetype.Detect(upload.Data).String()
	if !allowedMIMETypes[detected] {
		return "", &apperrors.UnsupportedImageError{Filename: upload.Filename, MimeType: detected}
	}

	return ext, nil
}

// NormalizeEmail trims and lower-cases an address and checks its format
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", &apperrors.ValidationError{Fields: []string{"email"}, Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return "", &apperrors.ValidationError{Fields: []string{"email"}, Message: "invalid email address"}
	}
	return email, nil
}

// ValidateSlugParam rejects path parameters that cannot name an article.
// They are reported as not found so the filesystem is never consulted.
func ValidateSlugParam(slug string) error {
	if !content.IsValidSlug(slug) {
		return &apperrors.NotFoundError{Slug: slug}
	}
	return nil
}

// ValidateStatUpdate checks that a counter was named and that the increment
// is in range, defaulting a missing increment to 1. Unknown counter names are
// rejected by the store once the article has been found.
func (v *Validator) ValidateStatUpdate(stat string, increment *int) (int, error) {
	if strings.TrimSpace(stat) == "" {
		return 0, &apperrors.InvalidStatError{}
	}
	if increment == nil {
		return 1, nil
	}
	if *increment < 1 || *increment > v.maxStatIncrement {
		return 0, &apperrors.ValidationError{
			Fields:  []string{"increment"},
			Message: fmt.Sprintf("increment must be between 1 and %d", v.maxStatIncrement),
		}
	}
	return *increment, nil
}

// ToError folds field errors into a single apperrors.ValidationError, or nil
func ToError(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(errs))
	var messages []string
	onlyMissing := true
	for _, e := range errs {
		fields = append(fields, e.Field)
		messages = append(messages, e.Message)
		if e.Message != e.Field+" is required" {
			onlyMissing = false
		}
	}

	err := &apperrors.ValidationError{Fields: fields}
	if !onlyMissing {
		err.Message = strings.Join(messages, "; ")
	}
	return err
}
