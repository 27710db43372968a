package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments  repository.CommentRepository
	checker   repository.ExistenceChecker
	validator *validation.Validator
	log       zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(comments repository.CommentRepository, checker repository.ExistenceChecker, v *validation.Validator, log zerolog.Logger) *commentService {
	return &commentService{
		comments:  comments,
		checker:   checker,
		validator: v,
		log:       log.With().Str("service", "comment").Logger(),
	}
}

// ListComments returns an article's comments. An existing article with no
// comments yields an empty list; an unknown article is a 404.
func (s *commentService) ListComments(ctx context.Context, articleID int) ([]models.Comment, error) {
	var comments []models.Comment
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByArticle(gctx, articleID)
		return err
	})
	g.Go(func() error {
		return s.checker.Exists(gctx, "articles", "article_id", articleID)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment validates the body before touching the store, checks the
// article exists and inserts the comment. An unknown username is rejected
// by the store's foreign key.
func (s *commentService) AddComment(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	if err := s.validator.ValidateNewComment(comment); err != nil {
		return nil, err
	}

	if err := s.checker.Exists(ctx, "articles", "article_id", articleID); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, articleID, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("comment_id", created.CommentID).
		Int("article_id", articleID).
		Str("author", created.Author).
		Msg("Comment created")

	return created, nil
}

// DeleteComment removes a comment; an unknown id is a 404
func (s *commentService) DeleteComment(ctx context.Context, id int) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int("comment_id", id).Msg("Comment deleted")
	return nil
}
