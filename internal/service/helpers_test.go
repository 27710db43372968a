package service_test

import (
	"time"

	"github.com/news-api/internal/config"
	"github.com/news-api/internal/mocks"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
)

type fixture struct {
	services *service.Services
	articles *mocks.MockArticleRepository
	comments *mocks.MockCommentRepository
	topics   *mocks.MockTopicRepository
	users    *mocks.MockUserRepository
	checker  *mocks.MockExistenceChecker
}

var baseTime = time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)

func newFixture(docsPath string) *fixture {
	f := &fixture{
		articles: mocks.NewMockArticleRepository(),
		comments: mocks.NewMockCommentRepository(),
		topics:   mocks.NewMockTopicRepository(),
		users:    mocks.NewMockUserRepository(),
		checker:  mocks.NewMockExistenceChecker(),
	}

	repos := &repository.Repositories{
		Topic:   f.topics,
		User:    f.users,
		Article: f.articles,
		Comment: f.comments,
		Checker: f.checker,
	}
	cfg := &config.Config{Paths: config.PathsConfig{Docs: docsPath}}
	f.services = service.NewServices(repos, &mocks.MockHealthChecker{Healthy: true}, cfg, zerolog.Nop())

	f.seed()
	return f
}

// seed loads a small dataset: two topics with articles, one topic without
func (f *fixture) seed() {
	for _, slug := range []string{"mitch", "cats", "paper"} {
		f.checker.Set("topics", "slug", slug)
		f.topics.Topics = append(f.topics.Topics, models.Topic{Slug: slug, Description: slug + " description"})
	}
	for _, username := range []string{"butter_bridge", "icellusedkars", "rogersop", "lurker"} {
		f.checker.Set("users", "username", username)
		f.users.Users = append(f.users.Users, models.User{Username: username})
	}

	f.addArticle(1, "Living in the shadow of a great man", "mitch", "butter_bridge", 100, baseTime)
	f.addArticle(2, "Sony Vaio; or, The Laptop", "mitch", "icellusedkars", 0, baseTime.Add(-24*time.Hour))
	f.addArticle(5, "UNCOVERED: catspiracy to bring down democracy", "cats", "rogersop", 0, baseTime.Add(24*time.Hour))

	f.comments.Add(models.Comment{CommentID: 1, ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", CreatedAt: baseTime.Add(time.Hour)})
	f.comments.Add(models.Comment{CommentID: 2, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", CreatedAt: baseTime.Add(2 * time.Hour)})
	f.comments.Add(models.Comment{CommentID: 3, ArticleID: 5, Author: "lurker", Body: "What do you see? I have no idea where this will lead us.", CreatedAt: baseTime.Add(25 * time.Hour)})
}

func (f *fixture) addArticle(id int, title, topic, author string, votes int, created time.Time) {
	f.articles.Add(models.ArticleWithCount{
		Article: models.Article{
			ArticleID: id,
			Title:     title,
			Topic:     topic,
			Author:    author,
			Body:      "body of " + title,
			CreatedAt: created,
			Votes:     votes,
		},
	})
	f.checker.Set("articles", "article_id", id)
}

func intPtr(i int) *int { return &i }
