package service

import (
	"context"
	"encoding/json"

	"github.com/news-api/internal/config"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	ListArticles(ctx context.Context, params models.ArticleListParams) ([]models.ArticleWithCount, error)
	GetArticle(ctx context.Context, id int) (*models.ArticleWithCount, error)
	UpdateArticleVotes(ctx context.Context, id int, patch *models.VotePatch) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListComments(ctx context.Context, articleID int) ([]models.Comment, error)
	AddComment(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int) error
}

// CatalogService defines the interface for topic and user listings
type CatalogService interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DocsService defines the interface for the endpoint documentation
type DocsService interface {
	Endpoints(ctx context.Context) (json.RawMessage, error)
}

// HealthChecker reports whether the store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Comment CommentService
	Catalog CatalogService
	Docs    DocsService
	Health  HealthChecker
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, health HealthChecker, cfg *config.Config, log zerolog.Logger) *Services {
	v := validation.NewValidator()

	return &Services{
		Article: newArticleService(repos.Article, repos.Checker, v, log),
		Comment: newCommentService(repos.Comment, repos.Checker, v, log),
		Catalog: newCatalogService(repos.Topic, repos.User),
		Docs:    newDocsService(cfg.Paths.Docs, log),
		Health:  health,
	}
}
