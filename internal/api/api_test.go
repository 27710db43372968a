package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/news-api/internal/api"
	"github.com/news-api/internal/apperrors"
	"github.com/news-api/internal/mocks"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	article *mocks.MockArticleService
	comment *mocks.MockCommentService
	catalog *mocks.MockCatalogService
	docs    *mocks.MockDocsService
	health  *mocks.MockHealthChecker
}

func setupTestRouter() (*gin.Engine, *testServices) {
	gin.SetMode(gin.TestMode)

	ts := &testServices{
		article: mocks.NewMockArticleService(),
		comment: mocks.NewMockCommentService(),
		catalog: mocks.NewMockCatalogService(),
		docs:    mocks.NewMockDocsService(),
		health:  &mocks.MockHealthChecker{Healthy: true},
	}

	services := &service.Services{
		Article: ts.article,
		Comment: ts.comment,
		Catalog: ts.catalog,
		Docs:    ts.docs,
		Health:  ts.health,
	}

	return api.NewRouter(services, zerolog.Nop()), ts
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func sampleArticle() models.ArticleWithCount {
	return models.ArticleWithCount{
		Article: models.Article{
			ArticleID: 1,
			Title:     "Living in the shadow of a great man",
			Topic:     "mitch",
			Author:    "butter_bridge",
			Body:      "I find this existence challenging",
			CreatedAt: time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC),
			Votes:     100,
		},
		CommentCount: 11,
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, ts := setupTestRouter()

	w := do(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "news-api", resp["service"])

	ts.health.Healthy = false
	w = do(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unhealthy", decode(t, w)["status"])
}

func TestRequestID(t *testing.T) {
	router, _ := setupTestRouter()

	w := do(router, http.MethodGet, "/api/topics", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	router, _ := setupTestRouter()

	w := do(router, http.MethodOptions, "/api/articles/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestPathNotFound(t *testing.T) {
	router, _ := setupTestRouter()

	for _, path := range []string{"/api/not-a-route", "/not-an-api", "/api/articles/1/likes"} {
		w := do(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"msg":"Path not found"}`, w.Body.String())
	}
}

func TestGetEndpoints(t *testing.T) {
	router, ts := setupTestRouter()
	ts.docs.Docs = json.RawMessage(`{"GET /api":{"description":"serves up a json representation of all the available endpoints of the api"}}`)

	w := do(router, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, w.Code)
	docs := decode(t, w)["docs"].(map[string]interface{})
	assert.Contains(t, docs, "GET /api")

	ts.docs.Err = errors.New("open endpoints.json: no such file or directory")
	w = do(router, http.MethodGet, "/api", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Server Error"}`, w.Body.String())
}

func TestGetTopicsAndUsers(t *testing.T) {
	router, ts := setupTestRouter()
	ts.catalog.Topics = []models.Topic{{Slug: "mitch", Description: "The man, the Mitch, the legend"}}
	ts.catalog.Users = []models.User{{Username: "butter_bridge"}, {Username: "lurker"}}

	w := do(router, http.MethodGet, "/api/topics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"topics":[{"slug":"mitch","description":"The man, the Mitch, the legend"}]}`, w.Body.String())

	w = do(router, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":[{"username":"butter_bridge"},{"username":"lurker"}]}`, w.Body.String())
}

func TestGetArticles(t *testing.T) {
	router, ts := setupTestRouter()
	ts.article.ListFunc = func(ctx context.Context, params models.ArticleListParams) ([]models.ArticleWithCount, error) {
		return []models.ArticleWithCount{sampleArticle()}, nil
	}

	w := do(router, http.MethodGet, "/api/articles?sort_by=votes&order=ASC&topic=mitch", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ArticleListParams{SortBy: "votes", Order: "ASC", Topic: "mitch"}, ts.article.LastParams)

	articles := decode(t, w)["articles"].([]interface{})
	require.Len(t, articles, 1)
	first := articles[0].(map[string]interface{})
	assert.Equal(t, "11", first["comment_count"])
	assert.Equal(t, float64(100), first["votes"])
	assert.Equal(t, "2020-07-09T20:11:00Z", first["created_at"])
}

func TestGetArticles_EmptyList(t *testing.T) {
	router, _ := setupTestRouter()

	w := do(router, http.MethodGet, "/api/articles?topic=paper", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"articles":[]}`, w.Body.String())
}

func TestGetArticles_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid sort", apperrors.BadRequest(apperrors.MsgBadRequest), http.StatusBadRequest, "Bad Request"},
		{"unknown topic", apperrors.NotFoundIn("topics", "slug", "dogs"), http.StatusNotFound, "No topics with slug: dogs"},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError, "Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ts := setupTestRouter()
			ts.article.ListFunc = func(ctx context.Context, params models.ArticleListParams) ([]models.ArticleWithCount, error) {
				return nil, tt.err
			}

			w := do(router, http.MethodGet, "/api/articles", "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decode(t, w)["msg"])
		})
	}
}

func TestGetArticle(t *testing.T) {
	router, ts := setupTestRouter()
	ts.article.GetFunc = func(ctx context.Context, id int) (*models.ArticleWithCount, error) {
		if id != 1 {
			return nil, apperrors.NotFound("No article with ID: 80")
		}
		a := sampleArticle()
		return &a, nil
	}

	w := do(router, http.MethodGet, "/api/articles/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	article := decode(t, w)["article"].(map[string]interface{})
	assert.Equal(t, float64(1), article["article_id"])
	assert.Equal(t, "11", article["comment_count"])

	w = do(router, http.MethodGet, "/api/articles/80", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"No article with ID: 80"}`, w.Body.String())
}

func TestInvalidPathIDs(t *testing.T) {
	router, ts := setupTestRouter()

	requests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/articles/banana", ""},
		{http.MethodGet, "/api/articles/99999999999", ""},
		{http.MethodPatch, "/api/articles/1.5", `{"inc_votes":1}`},
		{http.MethodGet, "/api/articles/abc/comments", ""},
		{http.MethodPost, "/api/articles/abc/comments", `{"username":"lurker","body":"hi"}`},
		{http.MethodDelete, "/api/comments/not-an-id", ""},
	}

	for _, r := range requests {
		w := do(router, r.method, r.path, r.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", r.method, r.path)
		assert.JSONEq(t, `{"msg":"Bad Request"}`, w.Body.String())
	}

	assert.Equal(t, 0, ts.article.Calls)
	assert.Equal(t, 0, ts.comment.Calls)
}

func TestPatchArticleVotes(t *testing.T) {
	router, ts := setupTestRouter()
	var gotDelta *int
	ts.article.UpdateFunc = func(ctx context.Context, id int, patch *models.VotePatch) (*models.Article, error) {
		gotDelta = patch.IncVotes
		a := sampleArticle().Article
		a.Votes += *patch.IncVotes
		return &a, nil
	}

	w := do(router, http.MethodPatch, "/api/articles/1", `{"inc_votes":-50}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotDelta)
	assert.Equal(t, -50, *gotDelta)

	article := decode(t, w)["article"].(map[string]interface{})
	assert.Equal(t, float64(50), article["votes"])
	assert.NotContains(t, article, "comment_count")
}

func TestPatchArticleVotes_BadBodies(t *testing.T) {
	router, ts := setupTestRouter()
	ts.article.UpdateFunc = func(ctx context.Context, id int, patch *models.VotePatch) (*models.Article, error) {
		if patch.IncVotes == nil {
			return nil, apperrors.MissingField("inc_votes")
		}
		return &models.Article{ArticleID: id}, nil
	}

	w := do(router, http.MethodPatch, "/api/articles/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Bad Request, body does not contain 'inc_votes' property"}`, w.Body.String())

	w = do(router, http.MethodPatch, "/api/articles/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Bad Request, body does not contain 'inc_votes' property"}`, w.Body.String())

	w = do(router, http.MethodPatch, "/api/articles/1", `{"inc_votes":"cat"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Bad Request"}`, w.Body.String())
}

func TestGetComments(t *testing.T) {
	router, ts := setupTestRouter()
	ts.comment.ListFunc = func(ctx context.Context, articleID int) ([]models.Comment, error) {
		switch articleID {
		case 1:
			return []models.Comment{{CommentID: 5, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", Votes: 0}}, nil
		case 2:
			return []models.Comment{}, nil
		default:
			return nil, apperrors.NotFoundIn("articles", "article_id", articleID)
		}
	}

	w := do(router, http.MethodGet, "/api/articles/1/comments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["comments"], 1)

	w = do(router, http.MethodGet, "/api/articles/2/comments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"comments":[]}`, w.Body.String())

	w = do(router, http.MethodGet, "/api/articles/99/comments", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"No articles with article_id: 99"}`, w.Body.String())
}

func TestPostComment(t *testing.T) {
	router, ts := setupTestRouter()

	w := do(router, http.MethodPost, "/api/articles/2/comments", `{"username":"lurker","body":"Great read","ignored":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	comment := decode(t, w)["comment"].(map[string]interface{})
	assert.Equal(t, float64(2), comment["article_id"])
	assert.Equal(t, "lurker", comment["author"])
	assert.Equal(t, "Great read", comment["body"])
	assert.Equal(t, 1, ts.comment.Calls)
}

func TestPostComment_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing body", apperrors.MissingField("body"), http.StatusBadRequest, "Bad Request, body does not contain 'body' property"},
		{"unknown article", apperrors.NotFoundIn("articles", "article_id", 99), http.StatusNotFound, "No articles with article_id: 99"},
		{"unknown user", &pq.Error{Code: "23503"}, http.StatusBadRequest, "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ts := setupTestRouter()
			ts.comment.AddFunc = func(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
				return nil, tt.err
			}

			w := do(router, http.MethodPost, "/api/articles/99/comments", `{"username":"ghost","body":"boo"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decode(t, w)["msg"])
		})
	}
}

func TestDeleteComment(t *testing.T) {
	router, ts := setupTestRouter()
	deleted := map[int]bool{}
	ts.comment.DeleteFunc = func(ctx context.Context, id int) error {
		if deleted[id] {
			return apperrors.NotFound("No comment with ID: 1")
		}
		deleted[id] = true
		return nil
	}

	w := do(router, http.MethodDelete, "/api/comments/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(router, http.MethodDelete, "/api/comments/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"No comment with ID: 1"}`, w.Body.String())
}
