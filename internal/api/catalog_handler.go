package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/service"
)

// CatalogHandler serves the endpoint documentation, topics and users
type CatalogHandler struct {
	services *service.Services
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(services *service.Services) *CatalogHandler {
	return &CatalogHandler{services: services}
}

// GetEndpoints handles GET /api
func (h *CatalogHandler) GetEndpoints(c *gin.Context) {
	docs, err := h.services.Docs.Endpoints(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"docs": docs})
}

// GetTopics handles GET /api/topics
func (h *CatalogHandler) GetTopics(c *gin.Context) {
	topics, err := h.services.Catalog.ListTopics(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// GetUsers handles GET /api/users
func (h *CatalogHandler) GetUsers(c *gin.Context) {
	users, err := h.services.Catalog.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
