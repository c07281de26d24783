package benchmark

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/content"
	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/render"
	"github.com/blog-publisher-api/internal/repository"
	"github.com/blog-publisher-api/internal/validation"
)

func sampleArticle(slug string) *models.Article {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return &models.Article{
		ID:        slug,
		Slug:      slug,
		Title:     "Benchmarking " + slug,
		Excerpt:   "A short excerpt",
		Category:  "Tech",
		Tags:      []string{"go", "benchmarks"},
		Content:   strings.Repeat("<p>Lorem ipsum dolor sit amet.</p>\n", 200),
		Published: now,
		Updated:   now,
		ReadTime:  3,
		Settings:  models.Settings{AllowComments: true},
	}
}

func storage(b *testing.B) config.StorageConfig {
	root := b.TempDir()
	return config.StorageConfig{
		SiteRoot:    root,
		ArticlesDir: filepath.Join(root, "articles"),
		DataDir:     filepath.Join(root, "data"),
		ImagesDir:   filepath.Join(root, "assets", "images", "articles"),
	}
}

// BenchmarkSlugify benchmarks slug derivation from a mixed-script title
func BenchmarkSlugify(b *testing.B) {
	title := "  Café Society: Data Architecture & Enterprise Strategy, Part 12!  "

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		content.Slugify(title)
	}
}

// BenchmarkMarkdownToHTML benchmarks markdown conversion with sanitizing enabled
func BenchmarkMarkdownToHTML(b *testing.B) {
	f := content.NewFormatter(true)
	body := strings.Repeat("## Heading\n\nSome *emphasis* and a [link](https://example.com).\n\n", 100)

	b.ReportAllocs()
	b.SetBytes(int64(len(body)))
	for i := 0; i < b.N; i++ {
		if _, err := f.ToHTML(body, "markdown"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRender benchmarks full page rendering
func BenchmarkRender(b *testing.B) {
	r := render.New(render.DefaultSite("Kerv Talks-Data Blog", "https://kervtalksdata.com"))
	a := sampleArticle("render-bench")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(a); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkValidateSubmission benchmarks the submission validation pass
func BenchmarkValidateSubmission(b *testing.B) {
	v := validation.NewValidator(5*1024*1024, 100)
	sub := &models.Submission{Title: "Hello World", Category: "Tech", Content: "<p>hi</p>", ContentFormat: "html"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.ValidateSubmission(sub)
	}
}

// BenchmarkUpsertIndex benchmarks index upserts against a 500 entry index
func BenchmarkUpsertIndex(b *testing.B) {
	repos := repository.New(storage(b), config.DuplicateOverwrite)
	ctx := context.Background()
	for i := 0; i < 500; i++ {
		if err := repos.Article.UpsertIndex(ctx, sampleArticle(fmt.Sprintf("article-%d", i))); err != nil {
			b.Fatal(err)
		}
	}
	a := sampleArticle("article-250")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := repos.Article.UpsertIndex(ctx, a); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUpdateStatsParallel benchmarks contended counter increments on one article
func BenchmarkUpdateStatsParallel(b *testing.B) {
	repos := repository.New(storage(b), config.DuplicateOverwrite)
	ctx := context.Background()
	a := sampleArticle("hot-article")
	if err := repos.Article.Create(ctx, a, "<html></html>", nil); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := repos.Article.UpdateStats(ctx, a.Slug, "views", 1); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
