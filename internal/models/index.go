package models

// IndexAuthor is the author summary carried by index entries
type IndexAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

// IndexEntry is the denormalized projection of an Article kept in data/articles.json.
// Shares are intentionally not projected.
type IndexEntry struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Excerpt   string      `json:"excerpt"`
	Author    IndexAuthor `json:"author"`
	Published string      `json:"published"` // date only, YYYY-MM-DD
	ReadTime  int         `json:"readTime"`
	Category  string      `json:"category"`
	Tags      []string    `json:"tags"`
	Image     string      `json:"image"`
	Content   string      `json:"content"`
	Likes     int         `json:"likes"`
	Comments  int         `json:"comments"`
	Views     int         `json:"views"`
}

// ArticleIndex is the global index document
type ArticleIndex struct {
	Articles []IndexEntry `json:"articles"`
}

// NewIndexEntry projects an article into its index entry
func NewIndexEntry(a *Article) IndexEntry {
	image := a.FeaturedImage()
	if image == "" {
		image = a.Slug + ".jpg"
	}
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return IndexEntry{
		ID:      a.ID,
		Title:   a.Title,
		Excerpt: a.Excerpt,
		Author: IndexAuthor{
			Name:   a.Author.Name,
			Avatar: a.Author.Avatar,
			Role:   a.Author.Role,
		},
		Published: a.Published.Format("2006-01-02"),
		ReadTime:  a.ReadTime,
		Category:  a.Category,
		Tags:      tags,
		Image:     image,
		Content:   a.Slug + "-content.html",
		Likes:     a.Stats.Likes,
		Comments:  a.Stats.Comments,
		Views:     a.Stats.Views,
	}
}
