package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

type catalogService struct {
	topics repository.TopicRepository
	users  repository.UserRepository
}

func newCatalogService(topics repository.TopicRepository, users repository.UserRepository) *catalogService {
	return &catalogService{topics: topics, users: users}
}

func (s *catalogService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}

func (s *catalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
