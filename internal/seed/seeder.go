package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/news-api/internal/database"
	"github.com/rs/zerolog"
)

const truncateQuery = `TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`

// Result counts the rows loaded per table
type Result struct {
	Topics   int
	Users    int
	Articles int
	Comments int
	Duration time.Duration
}

// Seeder replaces the contents of the store with a set of fixtures
type Seeder struct {
	db  *database.DB
	log zerolog.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(db *database.DB, log zerolog.Logger) *Seeder {
	return &Seeder{
		db:  db,
		log: log.With().Str("component", "seed").Logger(),
	}
}

// Run truncates every table and bulk loads the fixtures in one transaction.
// Identities restart at 1, so articles receive ids in file order.
func (s *Seeder) Run(ctx context.Context, fx *Fixtures) (*Result, error) {
	start := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, truncateQuery); err != nil {
		return nil, fmt.Errorf("failed to truncate tables: %w", err)
	}

	result := &Result{}

	topics := make([][]interface{}, 0, len(fx.Topics))
	for _, t := range fx.Topics {
		topics = append(topics, []interface{}{t.Slug, t.Description})
	}
	if result.Topics, err = copyRows(ctx, tx, "topics", []string{"slug", "description"}, topics); err != nil {
		return nil, err
	}

	users := make([][]interface{}, 0, len(fx.Users))
	for _, u := range fx.Users {
		users = append(users, []interface{}{u.Username, u.Name, u.AvatarURL})
	}
	if result.Users, err = copyRows(ctx, tx, "users", []string{"username", "name", "avatar_url"}, users); err != nil {
		return nil, err
	}

	articles := make([][]interface{}, 0, len(fx.Articles))
	for _, a := range fx.Articles {
		articles = append(articles, []interface{}{a.Title, a.Topic, a.Author, a.Body, createdAt(a.CreatedAt, start), a.Votes})
	}
	if result.Articles, err = copyRows(ctx, tx, "articles",
		[]string{"title", "topic", "author", "body", "created_at", "votes"}, articles); err != nil {
		return nil, err
	}

	comments := make([][]interface{}, 0, len(fx.Comments))
	for _, c := range fx.Comments {
		comments = append(comments, []interface{}{c.ArticleID, c.Author, c.Body, c.Votes, createdAt(c.CreatedAt, start)})
	}
	if result.Comments, err = copyRows(ctx, tx, "comments",
		[]string{"article_id", "author", "body", "votes", "created_at"}, comments); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed: %w", err)
	}

	result.Duration = time.Since(start)
	s.log.Info().
		Int("topics", result.Topics).
		Int("users", result.Users).
		Int("articles", result.Articles).
		Int("comments", result.Comments).
		Dur("duration", result.Duration).
		Msg("Database seeded")

	return result, nil
}

// copyRows streams rows into table using PostgreSQL COPY
func copyRows(ctx context.Context, tx *sqlx.Tx, table string, columns []string, rows [][]interface{}) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare copy into %s: %w", table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return 0, fmt.Errorf("failed to copy %s row %d: %w", table, i+1, err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, fmt.Errorf("failed to flush copy into %s: %w", table, err)
	}

	return len(rows), nil
}

func createdAt(t, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t
}
