package models

import (
	"time"
)

// Article represents an article in the system
type Article struct {
	ArticleID int       `json:"article_id" db:"article_id"`
	Title     string    `json:"title" db:"title"`
	Topic     string    `json:"topic" db:"topic"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Votes     int       `json:"votes" db:"votes"`
}

// ArticleWithCount is an article joined with the number of comments on it.
// CommentCount is encoded as a JSON string.
type ArticleWithCount struct {
	Article
	CommentCount int `json:"comment_count,string" db:"comment_count"`
}

// ArticleListParams are the optional listing parameters taken from the query string
type ArticleListParams struct {
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
	Topic  string `form:"topic"`
}

// VotePatch is the body of PATCH /api/articles/:article_id.
// IncVotes is bounded to the range of the votes column.
type VotePatch struct {
	IncVotes *int `json:"inc_votes" validate:"required,min=-2147483648,max=2147483647"`
}

// ArticleSeed is an article record as it appears in seed fixtures
type ArticleSeed struct {
	Title     string    `yaml:"title"`
	Topic     string    `yaml:"topic"`
	Author    string    `yaml:"author"`
	Body      string    `yaml:"body"`
	CreatedAt time.Time `yaml:"created_at"`
	Votes     int       `yaml:"votes"`
}
