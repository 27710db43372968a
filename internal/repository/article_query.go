package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/models"
)

// articleColumns are the columns of the articles table, in scan order
const articleColumns = "article_id, title, topic, author, body, created_at, votes"

// ArticleListQuery is a validated article listing request
type ArticleListQuery struct {
	sortBy string
	order  string
	topic  string
}

// NewArticleListQuery applies defaults to p and checks it against the
// greenlists. It never touches the store.
func NewArticleListQuery(p models.ArticleListParams) (*ArticleListQuery, error) {
	q := &ArticleListQuery{
		sortBy: p.SortBy,
		order:  p.Order,
		topic:  p.Topic,
	}
	if q.sortBy == "" {
		q.sortBy = DefaultSortBy
	}
	if q.order == "" {
		q.order = DefaultOrder
	}

	if err := q.validate(); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *ArticleListQuery) validate() error {
	if !IsSortColumn(q.sortBy) || !IsSortOrder(q.order) {
		return apperrors.BadRequest(apperrors.MsgBadRequest)
	}
	return nil
}

// SortBy returns the column results are ordered by
func (q *ArticleListQuery) SortBy() string { return q.sortBy }

// Order returns the sort direction
func (q *ArticleListQuery) Order() string { return q.order }

// Topic returns the topic filter, empty when unfiltered
func (q *ArticleListQuery) Topic() string { return q.topic }

// ToSql renders the listing statement. The topic is always a bound argument.
func (q *ArticleListQuery) ToSql() (string, []interface{}, error) {
	if err := q.validate(); err != nil {
		return "", nil, err
	}

	builder := articleWithCountSelect()
	if q.topic != "" {
		builder = builder.Where(squirrel.Eq{"articles.topic": q.topic})
	}

	return builder.OrderBy(articleSortColumns[q.sortBy] + " " + q.order).ToSql()
}

// articleWithCountSelect selects every article column plus the number of
// comments on the article. The left join keeps articles without comments.
func articleWithCountSelect() squirrel.SelectBuilder {
	return psql.Select(
		"articles.article_id",
		"articles.title",
		"articles.topic",
		"articles.author",
		"articles.body",
		"articles.created_at",
		"articles.votes",
		"COUNT(comments.comment_id)::INT AS comment_count",
	).
		From("articles").
		LeftJoin("comments ON comments.article_id = articles.article_id").
		GroupBy("articles.article_id")
}
