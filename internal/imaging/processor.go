// Package imaging generates the responsive width variants of featured images.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder
)

// JPEGQuality is used for every lossy variant
const JPEGQuality = 85

// Variant describes one generated file
type Variant struct {
	Width    int
	Height   int
	Filename string
	Path     string
}

// Processor writes variants next to their source in a single directory
type Processor struct {
	dir    string
	widths []int
}

// NewProcessor creates a processor producing one variant per width
func NewProcessor(dir string, widths []int) *Processor {
	ws := append([]int(nil), widths...)
	sort.Ints(ws)
	return &Processor{dir: dir, widths: ws}
}

// VariantName returns the filename of the width variant of a source image.
// Formats without a pure Go encoder are written as JPEG.
func VariantName(slug, sourceExt string, width int) string {
	ext := strings.ToLower(sourceExt)
	if ext == ".webp" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s-%dw%s", slug, width, ext)
}

// CreateVariants resizes the image at sourcePath to every configured width
// narrower than the source. Widths at or above the source width are skipped
// so images are never enlarged. Individual failures do not stop the others;
// an error is returned only when nothing could be written.
func (p *Processor) CreateVariants(sourcePath, slug string) ([]Variant, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source image: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	img = applyOrientation(img, readExifOrientation(bytes.NewReader(data)))

	srcWidth := img.Bounds().Dx()
	ext := filepath.Ext(sourcePath)

	var (
		variants []Variant
		errs     []error
	)
	for _, width := range p.widths {
		if width >= srcWidth {
			continue
		}
		v, err := p.createVariant(img, slug, ext, width)
		if err != nil {
			errs = append(errs, fmt.Errorf("%dw: %w", width, err))
			continue
		}
		variants = append(variants, *v)
	}

	if len(errs) > 0 && len(variants) == 0 {
		return nil, fmt.Errorf("all variants failed: %w", errors.Join(errs...))
	}
	return variants, nil
}

func (p *Processor) createVariant(img image.Image, slug, ext string, width int) (*Variant, error) {
	resized := imaging.Resize(img, width, 0, imaging.Lanczos)

	name := VariantName(slug, ext, width)
	encoded, err := encodeImage(resized, formatFromExt(filepath.Ext(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to encode variant: %w", err)
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return nil, fmt.Errorf("failed to save variant: %w", err)
	}

	b := resized.Bounds()
	return &Variant{Width: b.Dx(), Height: b.Dy(), Filename: name, Path: path}, nil
}

// readExifOrientation returns the EXIF orientation tag, or 1 when absent
func readExifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}

func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func formatFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "png"
	case ".gif":
		return "gif"
	default:
		return "jpeg"
	}
}

func encodeImage(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
