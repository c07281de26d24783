package api

import (
	"net/http"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewsletterHandler handles newsletter endpoints
type NewsletterHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(services *service.Services, log zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		services: services,
		log:      log.With().Str("handler", "newsletter").Logger(),
	}
}

// Subscribe handles POST /api/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, &apperrors.MalformedRequestError{Reason: "invalid JSON body: " + err.Error()})
		return
	}

	sub, err := h.services.Newsletter.Subscribe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully subscribed to newsletter.",
		"subscription": gin.H{
			"id":     sub.ID,
			"email":  sub.Email,
			"status": sub.Status,
		},
	})
}

// ListSubscribers handles GET /api/newsletter/subscribers
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	doc, err := h.services.Newsletter.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
