package validation

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/models"
)

var (
	pngMagic  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegMagic = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	gifMagic  = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")
)

func TestValidateSubmission(t *testing.T) {
	validator := NewValidator(5*1024*1024, 100)

	tests := []struct {
		name       string
		sub        *models.Submission
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid submission",
			sub:        &models.Submission{Title: "Hello World", Category: "Tech", Content: "<p>hi</p>"},
			wantErrors: 0,
		},
		{
			name:       "empty content",
			sub:        &models.Submission{Title: "Hello World", Category: "Tech", Content: ""},
			wantErrors: 1,
			wantFields: []string{"content"},
		},
		{
			name:       "whitespace only fields",
			sub:        &models.Submission{Title: "   ", Category: "\t", Content: "\n"},
			wantErrors: 3,
			wantFields: []string{"title", "category", "content"},
		},
		{
			name:       "title without slug characters",
			sub:        &models.Submission{Title: "!!!", Category: "Tech", Content: "x"},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name:       "markdown format accepted",
			sub:        &models.Submission{Title: "Hi", Category: "Tech", Content: "# hi", ContentFormat: "Markdown"},
			wantErrors: 0,
		},
		{
			name:       "unknown content format",
			sub:        &models.Submission{Title: "Hi", Category: "Tech", Content: "x", ContentFormat: "rst"},
			wantErrors: 1,
			wantFields: []string{"contentFormat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidateSubmission(tt.sub)
			if len(errs) != tt.wantErrors {
				t.Errorf("ValidateSubmission() got %d errors, want %d: %+v", len(errs), tt.wantErrors, errs)
			}
			for i, field := range tt.wantFields {
				if i < len(errs) && errs[i].Field != field {
					t.Errorf("Error %d field = %s, want %s", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestToError(t *testing.T) {
	if ToError(nil) != nil {
		t.Error("ToError(nil) should be nil")
	}

	err := ToError([]ValidationError{
		{Field: "title", Message: "title is required"},
		{Field: "content", Message: "content is required"},
	})
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected *apperrors.ValidationError, got %T", err)
	}
	if ve.Error() != "missing required fields: title, content" {
		t.Errorf("Unexpected message %q", ve.Error())
	}

	err = ToError([]ValidationError{{Field: "title", Message: "title must contain at least one letter or digit"}})
	if !strings.Contains(err.Error(), "letter or digit") {
		t.Errorf("Expected detailed message, got %q", err.Error())
	}
}

func TestValidateImage(t *testing.T) {
	validator := NewValidator(1024, 100)

	tests := []struct {
		name    string
		upload  *models.ImageUpload
		wantExt string
		wantErr interface{}
	}{
		{name: "png", upload: &models.ImageUpload{Filename: "cover.png", Data: pngMagic}, wantExt: ".png"},
		{name: "upper case jpeg", upload: &models.ImageUpload{Filename: "COVER.JPEG", Data: jpegMagic}, wantExt: ".jpeg"},
		{name: "gif", upload: &models.ImageUpload{Filename: "anim.gif", Data: gifMagic}, wantExt: ".gif"},
		{
			name:    "executable extension",
			upload:  &models.ImageUpload{Filename: "evil.exe", Data: pngMagic},
			wantErr: &apperrors.UnsupportedImageError{},
		},
		{
			name:    "text disguised as png",
			upload:  &models.ImageUpload{Filename: "notes.png", Data: []byte("just some text")},
			wantErr: &apperrors.UnsupportedImageError{},
		},
		{
			name:    "too large",
			upload:  &models.ImageUpload{Filename: "big.png", Data: append(append([]byte{}, pngMagic...), bytes.Repeat([]byte{0}, 2048)...)},
			wantErr: &apperrors.ImageTooLargeError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := validator.ValidateImage(tt.upload)
			switch want := tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("ValidateImage() unexpected error: %v", err)
				}
				if ext != tt.wantExt {
					t.Errorf("ValidateImage() ext = %s, want %s", ext, tt.wantExt)
				}
			case *apperrors.UnsupportedImageError:
				if !errors.As(err, &want) {
					t.Errorf("Expected UnsupportedImageError, got %v", err)
				}
			case *apperrors.ImageTooLargeError:
				if !errors.As(err, &want) {
					t.Errorf("Expected ImageTooLargeError, got %v", err)
				}
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "  Reader@Example.COM ", want: "reader@example.com"},
		{in: "a.b+tag@sub.example.io", want: "a.b+tag@sub.example.io"},
		{in: "", wantErr: true},
		{in: "not-an-email", wantErr: true},
		{in: "missing@tld", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeEmail(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeEmail(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateSlugParam(t *testing.T) {
	for _, slug := range []string{"hello-world", "a1", "data-architecture-101"} {
		if err := ValidateSlugParam(slug); err != nil {
			t.Errorf("ValidateSlugParam(%q) unexpected error: %v", slug, err)
		}
	}

	for _, slug := range []string{"", "..", "../etc", "Hello", "a--b", "-a", "a/b"} {
		var nf *apperrors.NotFoundError
		if err := ValidateSlugParam(slug); !errors.As(err, &nf) {
			t.Errorf("ValidateSlugParam(%q) = %v, want NotFoundError", slug, err)
		}
	}
}

func TestValidateStatUpdate(t *testing.T) {
	validator := NewValidator(1024, 100)
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name      string
		stat      string
		increment *int
		want      int
		wantStat  bool // expect InvalidStatError
		wantErr   bool
	}{
		{name: "default increment", stat: "views", want: 1},
		{name: "explicit increment", stat: "likes", increment: intPtr(5), want: 5},
		{name: "maximum increment", stat: "shares", increment: intPtr(100), want: 100},
		{name: "missing stat", stat: "", wantStat: true, wantErr: true},
		{name: "blank stat", stat: "  ", wantStat: true, wantErr: true},
		{name: "unknown stat left to the store", stat: "bogus", want: 1},
		{name: "zero increment", stat: "views", increment: intPtr(0), wantErr: true},
		{name: "negative increment", stat: "views", increment: intPtr(-3), wantErr: true},
		{name: "increment above cap", stat: "comments", increment: intPtr(101), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.ValidateStatUpdate(tt.stat, tt.increment)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStatUpdate() error = %v, wantErr %v", err, tt.wantErr)
			}
			var invalid *apperrors.InvalidStatError
			if errors.As(err, &invalid) != tt.wantStat {
				t.Errorf("InvalidStatError = %v, want %v (err %v)", !tt.wantStat, tt.wantStat, err)
			}
			if err == nil && got != tt.want {
				t.Errorf("ValidateStatUpdate() = %d, want %d", got, tt.want)
			}
		})
	}
}
