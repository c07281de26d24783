package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	limit := newRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst).middleware()

	// Handlers
	articleHandler := NewArticleHandler(services, cfg, log)
	statsHandler := NewStatsHandler(services, log)
	newsletterHandler := NewNewsletterHandler(services, log)
	jobHandler := NewJobHandler(services, log)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", healthCheck)

		apiGroup.POST("/create-article", limit, articleHandler.CreateArticle)

		articles := apiGroup.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:slug", articleHandler.GetArticle)
			articles.GET("/:slug/comments", articleHandler.GetComments)
			articles.POST("/:slug/stats", limit, statsHandler.UpdateStats)
		}

		newsletter := apiGroup.Group("/newsletter")
		{
			newsletter.POST("/subscribe", limit, newsletterHandler.Subscribe)
			newsletter.GET("/subscribers", newsletterHandler.ListSubscribers)
		}

		apiGroup.GET("/jobs/:job_id", jobHandler.GetJob)
	}

	router.NoRoute(noRouteHandler(cfg))

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Blog publisher API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// noRouteHandler serves the site root for non-API paths when static serving is enabled
func noRouteHandler(cfg *config.Config) gin.HandlerFunc {
	var files http.Handler
	if cfg.Server.ServeStatic {
		files = http.FileServer(http.Dir(cfg.Storage.SiteRoot))
	}

	return func(c *gin.Context) {
		if files == nil || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("path", c.Request.URL.Path).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware allows every origin and answers preflight requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// contextWithTimeout creates a context with timeout for handlers
func contextWithTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
