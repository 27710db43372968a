package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewComment is the body of POST /api/articles/:article_id/comments
type NewComment struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required,maxwords"`
}

// CommentSeed is a comment record as it appears in seed fixtures.
// ArticleID is the 1-based position of the article in the fixture file.
type CommentSeed struct {
	ArticleID int       `yaml:"article_id"`
	Author    string    `yaml:"author"`
	Body      string    `yaml:"body"`
	Votes     int       `yaml:"votes"`
	CreatedAt time.Time `yaml:"created_at"`
}

// MaxCommentWords is the maximum allowed words in a comment body
const MaxCommentWords = 500
