package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	switch filepath.Ext(path) {
	case ".png":
		require.NoError(t, png.Encode(f, img))
	default:
		require.NoError(t, jpeg.Encode(f, img, nil))
	}
}

func TestVariantName(t *testing.T) {
	assert.Equal(t, "hello-world-400w.png", VariantName("hello-world", ".PNG", 400))
	assert.Equal(t, "hello-world-600w.jpg", VariantName("hello-world", ".jpg", 600))
	assert.Equal(t, "hello-world-900w.jpg", VariantName("hello-world", ".webp", 900))
}

func TestCreateVariants(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello-world.png")
	writeTestImage(t, src, 800, 400)

	p := NewProcessor(dir, []int{1200, 200, 400, 800})
	variants, err := p.CreateVariants(src, "hello-world")
	require.NoError(t, err)

	// 800 and 1200 would enlarge or copy the source
	require.Len(t, variants, 2)
	assert.Equal(t, "hello-world-200w.png", variants[0].Filename)
	assert.Equal(t, 200, variants[0].Width)
	assert.Equal(t, 100, variants[0].Height)
	assert.Equal(t, 400, variants[1].Width)

	for _, v := range variants {
		f, err := os.Open(v.Path)
		require.NoError(t, err)
		cfg, format, err := image.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, v.Width, cfg.Width)
	}
}

func TestCreateVariantsJPEG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "photo.jpg")
	writeTestImage(t, src, 500, 500)

	variants, err := NewProcessor(dir, []int{250}).CreateVariants(src, "photo")
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.FileExists(t, filepath.Join(dir, "photo-250w.jpg"))
}

func TestCreateVariantsErrors(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir, []int{100})

	_, err := p.CreateVariants(filepath.Join(dir, "missing.png"), "missing")
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = p.CreateVariants(garbage, "garbage")
	assert.Error(t, err)
}
