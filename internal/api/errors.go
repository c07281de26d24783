package api

import (
	"errors"
	"net/http"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError writes the JSON error body for err with its mapped status
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	body := gin.H{"success": false, "error": err.Error()}

	var ve *apperrors.ValidationError
	if errors.As(err, &ve) && len(ve.Fields) > 0 {
		body["fields"] = ve.Fields
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}

	c.JSON(status, body)
}
