// Package apperrors defines the error kinds surfaced by the publishing
// pipeline and the HTTP status each one maps to.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError reports required submission fields that were missing or empty
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// NotFoundError reports an unknown article slug
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("article %q not found", e.Slug)
}

// InvalidStatError reports an unrecognized counter name
type InvalidStatError struct {
	Stat string
}

func (e *InvalidStatError) Error() string {
	if e.Stat == "" {
		return "missing stat type"
	}
	return fmt.Sprintf("invalid stat type %q", e.Stat)
}

// DuplicateSlugError is returned by create when the reject policy is active
type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("article %q already exists", e.Slug)
}

// MalformedRequestError reports a request the server could not decode
type MalformedRequestError struct {
	Reason string
}

func (e *MalformedRequestError) Error() string {
	return e.Reason
}

// ImageTooLargeError reports an upload above the configured cap
type ImageTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *ImageTooLargeError) Error() string {
	return "image too large, max size is " + formatSize(e.Limit)
}

// formatSize renders a byte count in the largest unit that keeps it readable
func formatSize(n int64) string {
	const mb = 1024 * 1024
	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%d MB", n/mb)
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	case n >= 1024 && n%1024 == 0:
		return fmt.Sprintf("%d KB", n/1024)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

// UnsupportedImageError reports an upload that is not an accepted image type
type UnsupportedImageError struct {
	Filename string
	MimeType string
}

func (e *UnsupportedImageError) Error() string {
	return fmt.Sprintf("only image files are allowed (jpeg, jpg, png, gif, webp), got %q", e.Filename)
}

// PersistenceError wraps a filesystem failure
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence wraps err as a PersistenceError, returning nil for a nil err
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// HTTPStatus maps an error onto the status code returned to clients
func HTTPStatus(err error) int {
	var (
		validation  *ValidationError
		notFound    *NotFoundError
		invalidStat *InvalidStatError
		duplicate   *DuplicateSlugError
		malformed   *MalformedRequestError
		tooLarge    *ImageTooLargeError
		unsupported *UnsupportedImageError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &invalidStat),
		errors.As(err, &malformed), errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
