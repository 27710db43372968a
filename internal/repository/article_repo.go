package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List returns the articles selected by q. An empty result is not an error.
func (r *articleRepo) List(ctx context.Context, q *ArticleListQuery) ([]models.ArticleWithCount, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	articles := []models.ArticleWithCount{}
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetByID retrieves an article with its comment count
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	query, args, err := articleWithCountSelect().
		Where(squirrel.Eq{"articles.article_id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var article models.ArticleWithCount
	err = r.db.GetContext(ctx, &article, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, articleNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// UpdateVotes adds delta to the article's votes in a single statement and
// returns the updated row.
func (r *articleRepo) UpdateVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	query, args, err := psql.Update("articles").
		Set("votes", squirrel.Expr("votes + ?", delta)).
		Where(squirrel.Eq{"article_id": id}).
		Suffix("RETURNING " + articleColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	var article models.Article
	err = r.db.GetContext(ctx, &article, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, articleNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

func articleNotFound(id int) error {
	return apperrors.NotFound(fmt.Sprintf("No article with ID: %d", id))
}
