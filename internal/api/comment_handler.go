package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// GetComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) GetComments(c *gin.Context) {
	articleID, err := pathID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.services.Comment.ListComments(c.Request.Context(), articleID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) PostComment(c *gin.Context) {
	articleID, err := pathID(c, "article_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var body models.NewComment
	if err := bindBody(c, &body); err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.services.Comment.AddComment(c.Request.Context(), articleID, &body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.Comment.DeleteComment(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	h.log.Debug().Int("comment_id", id).Msg("Comment deleted")
	c.Status(http.StatusNoContent)
}
