package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// GetArticles handles GET /api/articles
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.MsgBadRequest))
		return
	}

	articles, err := h.services.Article.ListArticles(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.services.Article.GetArticle(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// PatchArticleVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchArticleVotes(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var patch models.VotePatch
	if err := bindBody(c, &patch); err != nil {
		_ = c.Error(err)
		return
	}

	article, err := h.services.Article.UpdateArticleVotes(c.Request.Context(), id, &patch)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}
