package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// formOverhead is the allowance for text fields on top of the image cap
const formOverhead = 2 << 20

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// CreateArticle handles POST /api/create-article
// Accepts a multipart form with an optional featuredImage file
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		respondError(c, h.log, &apperrors.MalformedRequestError{Reason: "Content-Type must be multipart/form-data"})
		return
	}

	limit := h.cfg.Publish.MaxImageSize
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+formOverhead)

	var sub models.Submission
	if err := c.ShouldBind(&sub); err != nil {
		respondError(c, h.log, formError(err, limit))
		return
	}

	image, err := readImage(c, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	sub.Image = image

	ctx, cancel := contextWithTimeout(c, h.cfg.Server.WriteTimeout)
	defer cancel()

	result, err := h.services.Article.Submit(ctx, &sub)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Article created successfully!",
		"article": result,
	})
}

// readImage returns the uploaded featuredImage, or nil when none was sent
func readImage(c *gin.Context, limit int64) (*models.ImageUpload, error) {
	header, err := c.FormFile("featuredImage")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, formError(err, limit)
	}
	if header.Filename == "" {
		return nil, nil
	}
	if header.Size > limit {
		return nil, &apperrors.ImageTooLargeError{Size: header.Size, Limit: limit}
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.Persistence("open upload", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, apperrors.Persistence("read upload", err)
	}

	return &models.ImageUpload{Filename: header.Filename, Data: data}, nil
}

// formError classifies a multipart parsing failure
func formError(err error, limit int64) error {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return &apperrors.ImageTooLargeError{Size: tooBig.Limit, Limit: limit}
	}
	return &apperrors.MalformedRequestError{Reason: "invalid multipart form: " + err.Error()}
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	entries, err := h.services.Article.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": entries})
}

// GetArticle handles GET /api/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// GetComments handles GET /api/articles/:slug/comments
func (h *ArticleHandler) GetComments(c *gin.Context) {
	doc, err := h.services.Article.Comments(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
