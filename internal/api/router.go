package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

const serviceName = "news-api"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, log zerolog.Logger) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	normalizer := apperrors.NewNormalizer(log)

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(errorMiddleware(normalizer))

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	catalogHandler := NewCatalogHandler(services)

	router.GET("/health", healthCheck(services.Health))

	api := router.Group("/api")
	{
		api.GET("", catalogHandler.GetEndpoints)
		api.GET("/users", catalogHandler.GetUsers)
		api.GET("/topics", catalogHandler.GetTopics)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.PatchArticleVotes)
			articles.GET("/:article_id/comments", commentHandler.GetComments)
			articles.POST("/:article_id/comments", commentHandler.PostComment)
		}

		api.DELETE("/comments/:comment_id", commentHandler.DeleteComment)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": apperrors.MsgPathNotFound})
	})

	return router
}

// healthCheck reports the service status and whether the database answers a ping
func healthCheck(health service.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}
