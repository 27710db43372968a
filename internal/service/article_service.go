package service

import (
	"context"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles  repository.ArticleRepository
	checker   repository.ExistenceChecker
	validator *validation.Validator
	log       zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(articles repository.ArticleRepository, checker repository.ExistenceChecker, v *validation.Validator, log zerolog.Logger) *articleService {
	return &articleService{
		articles:  articles,
		checker:   checker,
		validator: v,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// ListArticles validates the listing parameters, then fetches the articles.
// When a topic filter is given the topic's existence is checked alongside
// the listing, so an unknown topic is a 404 rather than an empty list.
func (s *articleService) ListArticles(ctx context.Context, params models.ArticleListParams) ([]models.ArticleWithCount, error) {
	q, err := repository.NewArticleListQuery(params)
	if err != nil {
		return nil, err
	}

	var articles []models.ArticleWithCount
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		articles, err = s.articles.List(gctx, q)
		return err
	})
	if q.Topic() != "" {
		g.Go(func() error {
			return s.checker.Exists(gctx, "topics", "slug", q.Topic())
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("sort_by", q.SortBy()).
		Str("order", q.Order()).
		Str("topic", q.Topic()).
		Int("count", len(articles)).
		Msg("Listed articles")

	return articles, nil
}

// GetArticle fetches one article with its comment count
func (s *articleService) GetArticle(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	return s.articles.GetByID(ctx, id)
}

// UpdateArticleVotes applies patch.IncVotes to the article's votes
func (s *articleService) UpdateArticleVotes(ctx context.Context, id int, patch *models.VotePatch) (*models.Article, error) {
	if err := s.validator.ValidateVotePatch(patch); err != nil {
		return nil, err
	}

	article, err := s.articles.UpdateVotes(ctx, id, *patch.IncVotes)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("article_id", id).
		Int("inc_votes", *patch.IncVotes).
		Int("votes", article.Votes).
		Msg("Article votes updated")

	return article, nil
}
