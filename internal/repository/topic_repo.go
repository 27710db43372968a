package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// List returns every topic
func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	query, args, err := psql.Select("slug", "description").From("topics").ToSql()
	if err != nil {
		return nil, err
	}

	topics := []models.Topic{}
	if err := r.db.SelectContext(ctx, &topics, query, args...); err != nil {
		return nil, err
	}
	return topics, nil
}
