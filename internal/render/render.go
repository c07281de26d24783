// Package render produces the publishable HTML page for an article.
//
// Rendering is a pure projection of the article record: the same record
// always yields byte-identical output. Plain-text fields are HTML-escaped,
// while the article body is trusted markup and is embedded verbatim.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/blog-publisher-api/internal/models"
)

//go:embed templates/article.html
var articleTemplate string

const displayDateLayout = "January 02, 2006"

// SiteConfig holds the site-wide values embedded in every page
type SiteConfig struct {
	Name               string   // e.g. "Kerv Talks-Data Blog"
	Brand              string   // header brand text
	LogoText           string   // short logo glyph text
	URL                string   // canonical site base without trailing slash
	LogoURL            string   // absolute logo URL for structured data
	DefaultDescription string   // used when an article has no excerpt
	Keywords           []string // appended to every article's tag keywords
}

// DefaultSite returns the site configuration of the blog
func DefaultSite(name, url string) SiteConfig {
	return SiteConfig{
		Name:               name,
		Brand:              strings.TrimSuffix(name, " Blog"),
		LogoText:           "KT",
		URL:                url,
		LogoURL:            url + "/assets/images/logo.png",
		DefaultDescription: "Professional insights on data architecture and enterprise strategies.",
		Keywords:           []string{"data architecture", "information asymmetry"},
	}
}

// Renderer renders article pages from a parsed template
type Renderer struct {
	site SiteConfig
	tmpl *template.Template
}

// New parses the article template for site
func New(site SiteConfig) *Renderer {
	return &Renderer{
		site: site,
		tmpl: template.Must(template.New("article").Parse(articleTemplate)),
	}
}

type ldPerson struct {
	Type     string `json:"@type"`
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
}

type ldImage struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

type ldOrganization struct {
	Type string  `json:"@type"`
	Name string  `json:"name"`
	Logo ldImage `json:"logo"`
}

// structuredData is the schema.org Article block
type structuredData struct {
	Context       string         `json:"@context"`
	Type          string         `json:"@type"`
	Headline      string         `json:"headline"`
	Author        ldPerson       `json:"author"`
	Publisher     ldOrganization `json:"publisher"`
	DatePublished string         `json:"datePublished"`
	DateModified  string         `json:"dateModified"`
	Description   string         `json:"description"`
	Keywords      []string       `json:"keywords"`
	Image         string         `json:"image,omitempty"`
	URL           string         `json:"url"`
}

type pageData struct {
	Article          *models.Article
	Site             SiteConfig
	Description      string
	Keywords         string
	Canonical        string
	PublishedDisplay string
	Featured         string
	Content          template.HTML
	StructuredData   structuredData
	CommentMaxLength int
	Year             int
}

// Render produces the complete HTML document for a
func (r *Renderer) Render(a *models.Article) (string, error) {
	data := r.pageData(a)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render article %q: %w", a.Slug, err)
	}
	return buf.String(), nil
}

func (r *Renderer) pageData(a *models.Article) pageData {
	description := a.Excerpt
	if description == "" {
		description = r.site.DefaultDescription
	}

	keywords := make([]string, 0, len(a.Tags)+len(r.site.Keywords))
	keywords = append(keywords, a.Tags...)
	keywords = append(keywords, r.site.Keywords...)

	canonical := a.SEO.Canonical
	if canonical == "" {
		canonical = fmt.Sprintf("%s/articles/%s/", r.site.URL, a.Slug)
	}

	ld := structuredData{
		Context:  "https://schema.org",
		Type:     "Article",
		Headline: a.Title,
		Author: ldPerson{
			Type:     "Person",
			Name:     a.Author.Name,
			JobTitle: a.Author.Role,
		},
		Publisher: ldOrganization{
			Type: "Organization",
			Name: r.site.Brand,
			Logo: ldImage{Type: "ImageObject", URL: r.site.LogoURL},
		},
		DatePublished: a.Published.Format(time.RFC3339),
		DateModified:  a.Updated.Format(time.RFC3339),
		Description:   description,
		Keywords:      keywords,
		URL:           canonical,
	}
	if img := a.FeaturedImage(); img != "" {
		ld.Image = fmt.Sprintf("%s/assets/images/articles/%s", r.site.URL, img)
	}

	return pageData{
		Article:          a,
		Site:             r.site,
		Description:      description,
		Keywords:         strings.Join(keywords, ", "),
		Canonical:        canonical,
		PublishedDisplay: a.Published.Format(displayDateLayout),
		Featured:         a.FeaturedImage(),
		Content:          template.HTML(a.Content),
		StructuredData:   ld,
		CommentMaxLength: models.MaxCommentLength,
		Year:             a.Published.Year(),
	}
}
