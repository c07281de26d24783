package api

import (
	"net/http"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StatsHandler handles counter updates
type StatsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(services *service.Services, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		services: services,
		log:      log.With().Str("handler", "stats").Logger(),
	}
}

type statsRequest struct {
	Type      string `json:"type"`
	Increment *int   `json:"increment"`
}

// UpdateStats handles POST /api/articles/:slug/stats
func (h *StatsHandler) UpdateStats(c *gin.Context) {
	var req statsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, &apperrors.MalformedRequestError{Reason: "invalid JSON body: " + err.Error()})
		return
	}

	stats, err := h.services.Stats.Update(c.Request.Context(), c.Param("slug"), req.Type, req.Increment)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
