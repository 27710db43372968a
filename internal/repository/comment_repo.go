package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// commentColumns are the columns of the comments table, in scan order
const commentColumns = "comment_id, article_id, author, body, votes, created_at"

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle returns the comments on an article, newest first. It does
// not check that the article exists.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	query, args, err := psql.Select(commentColumns).
		From("comments").
		Where(squirrel.Eq{"article_id": articleID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a comment. Unknown authors or articles are reported by the
// store as foreign key violations.
func (r *commentRepo) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	query, args, err := psql.Insert("comments").
		Columns("article_id", "author", "body").
		Values(articleID, comment.Username, comment.Body).
		Suffix("RETURNING " + commentColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	var created models.Comment
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a comment. Zero affected rows means it did not exist.
func (r *commentRepo) Delete(ctx context.Context, id int) error {
	query, args, err := psql.Delete("comments").
		Where(squirrel.Eq{"comment_id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound(fmt.Sprintf("No comment with ID: %d", id))
	}
	return nil
}
