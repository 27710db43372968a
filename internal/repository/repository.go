package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// psql builds statements with PostgreSQL $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, q *ArticleListQuery) ([]models.ArticleWithCount, error)
	GetByID(ctx context.Context, id int) (*models.ArticleWithCount, error)
	UpdateVotes(ctx context.Context, id int, delta int) (*models.Article, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// ExistenceChecker guards operations that need a row to exist first
type ExistenceChecker interface {
	Exists(ctx context.Context, table, column string, value interface{}) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
	Checker ExistenceChecker
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Checker: NewExistenceChecker(db),
	}
}
