package seed

import (
	"fmt"
	"io"
	"os"

	"github.com/news-api/internal/models"
	"gopkg.in/yaml.v3"
)

// Fixtures is the contents of a seed file
type Fixtures struct {
	Topics   []models.Topic       `yaml:"topics"`
	Users    []models.UserSeed    `yaml:"users"`
	Articles []models.ArticleSeed `yaml:"articles"`
	Comments []models.CommentSeed `yaml:"comments"`
}

// LoadFile reads and validates fixtures from a YAML file
func LoadFile(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates fixtures. Unknown keys are rejected.
func Parse(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixtures
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

// Validate checks that every reference in the fixtures resolves within the file
func (fx *Fixtures) Validate() error {
	topics := make(map[string]bool, len(fx.Topics))
	for _, t := range fx.Topics {
		if t.Slug == "" {
			return fmt.Errorf("topic with empty slug")
		}
		if topics[t.Slug] {
			return fmt.Errorf("duplicate topic %q", t.Slug)
		}
		topics[t.Slug] = true
	}

	users := make(map[string]bool, len(fx.Users))
	for _, u := range fx.Users {
		if u.Username == "" {
			return fmt.Errorf("user with empty username")
		}
		if users[u.Username] {
			return fmt.Errorf("duplicate user %q", u.Username)
		}
		users[u.Username] = true
	}

	for i, a := range fx.Articles {
		if !topics[a.Topic] {
			return fmt.Errorf("article %d: unknown topic %q", i+1, a.Topic)
		}
		if !users[a.Author] {
			return fmt.Errorf("article %d: unknown author %q", i+1, a.Author)
		}
	}

	for i, c := range fx.Comments {
		if c.ArticleID < 1 || c.ArticleID > len(fx.Articles) {
			return fmt.Errorf("comment %d: article_id %d out of range", i+1, c.ArticleID)
		}
		if !users[c.Author] {
			return fmt.Errorf("comment %d: unknown author %q", i+1, c.Author)
		}
	}

	return nil
}
