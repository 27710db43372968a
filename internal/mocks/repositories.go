package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// Verify interface compliance
var (
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
	_ repository.TopicRepository   = (*MockTopicRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.ExistenceChecker  = (*MockExistenceChecker)(nil)
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mu          sync.Mutex
	Articles    map[int]*models.ArticleWithCount
	Err         error
	ListCalls   int
	UpdateCalls int
	LastQuery   *repository.ArticleListQuery
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int]*models.ArticleWithCount),
	}
}

// Add stores an article and returns it for chaining in tests
func (m *MockArticleRepository) Add(article models.ArticleWithCount) *models.ArticleWithCount {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Articles[article.ArticleID] = &article
	return &article
}

func (m *MockArticleRepository) List(ctx context.Context, q *repository.ArticleListQuery) ([]models.ArticleWithCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	m.LastQuery = q
	if m.Err != nil {
		return nil, m.Err
	}

	articles := []models.ArticleWithCount{}
	for _, a := range m.Articles {
		if q.Topic() != "" && a.Topic != q.Topic() {
			continue
		}
		articles = append(articles, *a)
	}
	less := articleLess(q.SortBy())
	sort.SliceStable(articles, func(i, j int) bool {
		if q.Order() == "ASC" {
			return less(articles[i], articles[j])
		}
		return less(articles[j], articles[i])
	})
	return articles, nil
}

// articleLess orders articles by one of the greenlisted sort keys, with
// article_id breaking ties.
func articleLess(sortBy string) func(a, b models.ArticleWithCount) bool {
	return func(a, b models.ArticleWithCount) bool {
		var cmp int
		switch sortBy {
		case "article_id":
		case "title":
			cmp = strings.Compare(a.Title, b.Title)
		case "topic":
			cmp = strings.Compare(a.Topic, b.Topic)
		case "author":
			cmp = strings.Compare(a.Author, b.Author)
		case "body":
			cmp = strings.Compare(a.Body, b.Body)
		case "votes":
			cmp = a.Votes - b.Votes
		case "comment_count":
			cmp = a.CommentCount - b.CommentCount
		default:
			cmp = a.CreatedAt.Compare(b.CreatedAt)
		}
		if cmp != 0 {
			return cmp < 0
		}
		return a.ArticleID < b.ArticleID
	}
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, apperrors.NotFound(fmt.Sprintf("No article with ID: %d", id))
	}
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) UpdateVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, apperrors.NotFound(fmt.Sprintf("No article with ID: %d", id))
	}
	article.Votes += delta
	updated := article.Article
	return &updated, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mu          sync.Mutex
	Comments    map[int]*models.Comment
	NextID      int
	CreateError error
	Err         error
	CreateCalls int
	DeleteCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int]*models.Comment),
		NextID:   1,
	}
}

// Add stores a comment and advances NextID past it
func (m *MockCommentRepository) Add(comment models.Comment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Comments[comment.CommentID] = &comment
	if comment.CommentID >= m.NextID {
		m.NextID = comment.CommentID + 1
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	comments := []models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateError != nil {
		return nil, m.CreateError
	}

	created := &models.Comment{
		CommentID: m.NextID,
		ArticleID: articleID,
		Author:    comment.Username,
		Body:      comment.Body,
		CreatedAt: time.Now(),
	}
	m.Comments[created.CommentID] = created
	m.NextID++

	out := *created
	return &out, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Comments[id]; !ok {
		return apperrors.NotFound(fmt.Sprintf("No comment with ID: %d", id))
	}
	delete(m.Comments, id)
	return nil
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics []models.Topic
	Err    error
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: []models.Topic{}}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Topics, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users []models.User
	Err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: []models.User{}}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users, nil
}

// MockExistenceChecker is a mock implementation of ExistenceChecker.
// It enforces the same greenlist as the real checker.
type MockExistenceChecker struct {
	mu       sync.Mutex
	Existing map[string]bool
	Err      error
	Calls    int
}

func NewMockExistenceChecker() *MockExistenceChecker {
	return &MockExistenceChecker{Existing: make(map[string]bool)}
}

// Set marks value as present in table.column
func (m *MockExistenceChecker) Set(table, column string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Existing[existenceKey(table, column, value)] = true
}

func (m *MockExistenceChecker) Exists(ctx context.Context, table, column string, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !repository.IsCheckable(table, column) {
		return apperrors.BadRequest(apperrors.MsgBadRequest)
	}
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	if !m.Existing[existenceKey(table, column, value)] {
		return apperrors.NotFoundIn(table, column, value)
	}
	return nil
}

func existenceKey(table, column string, value interface{}) string {
	return fmt.Sprintf("%s.%s=%v", table, column, value)
}
