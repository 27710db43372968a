package mocks

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc   func(ctx context.Context, params models.ArticleListParams) ([]models.ArticleWithCount, error)
	GetFunc    func(ctx context.Context, id int) (*models.ArticleWithCount, error)
	UpdateFunc func(ctx context.Context, id int, patch *models.VotePatch) (*models.Article, error)
	LastParams models.ArticleListParams
	Calls      int
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{}
}

func (m *MockArticleService) ListArticles(ctx context.Context, params models.ArticleListParams) ([]models.ArticleWithCount, error) {
	m.Calls++
	m.LastParams = params
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return []models.ArticleWithCount{}, nil
}

func (m *MockArticleService) GetArticle(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	m.Calls++
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, apperrors.NotFound("not found")
}

func (m *MockArticleService) UpdateArticleVotes(ctx context.Context, id int, patch *models.VotePatch) (*models.Article, error) {
	m.Calls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, apperrors.NotFound("not found")
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListFunc   func(ctx context.Context, articleID int) ([]models.Comment, error)
	AddFunc    func(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	DeleteFunc func(ctx context.Context, id int) error
	Calls      int
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{}
}

func (m *MockCommentService) ListComments(ctx context.Context, articleID int) ([]models.Comment, error) {
	m.Calls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, articleID)
	}
	return []models.Comment{}, nil
}

func (m *MockCommentService) AddComment(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	m.Calls++
	if m.AddFunc != nil {
		return m.AddFunc(ctx, articleID, comment)
	}
	return &models.Comment{CommentID: 1, ArticleID: articleID, Author: comment.Username, Body: comment.Body}, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, id int) error {
	m.Calls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	Topics []models.Topic
	Users  []models.User
	Err    error
}

// Verify interface compliance
var _ service.CatalogService = (*MockCatalogService)(nil)

func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{
		Topics: []models.Topic{},
		Users:  []models.User{},
	}
}

func (m *MockCatalogService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return m.Topics, m.Err
}

func (m *MockCatalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.Users, m.Err
}

// MockDocsService is a mock implementation of DocsService
type MockDocsService struct {
	Docs json.RawMessage
	Err  error
}

// Verify interface compliance
var _ service.DocsService = (*MockDocsService)(nil)

func NewMockDocsService() *MockDocsService {
	return &MockDocsService{Docs: json.RawMessage(`{}`)}
}

func (m *MockDocsService) Endpoints(ctx context.Context) (json.RawMessage, error) {
	return m.Docs, m.Err
}

// MockHealthChecker is a mock implementation of HealthChecker
type MockHealthChecker struct {
	Healthy bool
}

// Verify interface compliance
var _ service.HealthChecker = (*MockHealthChecker)(nil)

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	if !m.Healthy {
		return errors.New("database unreachable")
	}
	return nil
}
