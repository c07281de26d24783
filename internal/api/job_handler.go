package api

import (
	"net/http"

	"github.com/blog-publisher-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// JobHandler exposes background job status
type JobHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(services *service.Services, log zerolog.Logger) *JobHandler {
	return &JobHandler{
		services: services,
		log:      log.With().Str("handler", "job").Logger(),
	}
}

// GetJob handles GET /api/jobs/:job_id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.services.Job.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}
