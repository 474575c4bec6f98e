package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func samplePost(id string, published bool) *entity.Post {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return &entity.Post{
		ID:          id,
		Title:       "Deep Learning Notes",
		Content:     "content",
		Excerpt:     "excerpt",
		Author:      "Benjamin Kyamoneka Mpey",
		CreatedAt:   now,
		UpdatedAt:   now,
		Published:   published,
		Tags:        []string{"ml"},
		Category:    "research",
		ReadingTime: 1,
	}
}

func newBlogRouter(uc *MockBlogUseCase) *gin.Engine {
	handler := NewBlogHandler(uc, testLogger())
	router := setupTestRouter()
	router.GET("/blog", handler.ListPosts)
	router.GET("/blog/featured", handler.FeaturedPosts)
	router.GET("/blog/categories", handler.Categories)
	router.GET("/blog/tags", handler.Tags)
	router.GET("/blog/:id", handler.GetPost)
	router.GET("/admin/blog", handler.ListAllPosts)
	router.GET("/admin/blog/:id", handler.GetAnyPost)
	router.POST("/admin/blog", handler.CreatePost)
	router.PUT("/admin/blog/:id", handler.UpdatePost)
	router.DELETE("/admin/blog/:id", handler.DeletePost)
	return router
}

func serve(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestBlogHandler_ListPosts(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("List", mock.Anything, entity.PostFilter{Category: "research", Tag: "ml", Search: "deep", Limit: 5, Skip: 10}).
		Return([]*entity.Post{samplePost("p1", true)}, nil)

	w := serve(newBlogRouter(uc), "GET", "/blog?category=research&tag=ml&search=deep&limit=5&skip=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var posts []entity.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "p1", posts[0].ID)
	uc.AssertExpectations(t)
}

func TestBlogHandler_ListPosts_InvalidPaging(t *testing.T) {
	uc := new(MockBlogUseCase)
	router := newBlogRouter(uc)

	assert.Equal(t, http.StatusBadRequest, serve(router, "GET", "/blog?limit=abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, "GET", "/blog?skip=-1", nil).Code)
	uc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestBlogHandler_ListPosts_EmptyIsArray(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("List", mock.Anything, entity.PostFilter{}).Return([]*entity.Post{}, nil)

	w := serve(newBlogRouter(uc), "GET", "/blog", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBlogHandler_ListAllPosts(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("ListAdmin", mock.Anything, entity.PostFilter{Limit: 20}).
		Return([]*entity.Post{samplePost("p1", true), samplePost("p2", false)}, nil)

	w := serve(newBlogRouter(uc), "GET", "/admin/blog?limit=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var posts []entity.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)
	uc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestBlogHandler_FeaturedPosts(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("Featured", mock.Anything, 0).Return([]*entity.Post{samplePost("p1", true)}, nil)
	uc.On("Featured", mock.Anything, 2).Return([]*entity.Post{}, nil)
	router := newBlogRouter(uc)

	assert.Equal(t, http.StatusOK, serve(router, "GET", "/blog/featured", nil).Code)
	assert.Equal(t, http.StatusOK, serve(router, "GET", "/blog/featured?limit=2", nil).Code)
	uc.AssertExpectations(t)
}

func TestBlogHandler_GetPost(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("GetPublished", mock.Anything, "p1").Return(samplePost("p1", true), nil)

	w := serve(newBlogRouter(uc), "GET", "/blog/p1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var post entity.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "Deep Learning Notes", post.Title)
	assert.Equal(t, []string{"ml"}, post.Tags)
}

func TestBlogHandler_GetPost_NotFound(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("GetPublished", mock.Anything, "draft").Return(nil, fmt.Errorf("post draft: %w", entity.ErrNotFound))

	w := serve(newBlogRouter(uc), "GET", "/blog/draft", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestBlogHandler_GetAnyPost_ReturnsDraft(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("Get", mock.Anything, "draft").Return(samplePost("draft", false), nil)

	w := serve(newBlogRouter(uc), "GET", "/admin/blog/draft", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"published":false`)
}

func TestBlogHandler_CategoriesAndTags(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("Categories", mock.Anything).Return([]string{"general", "research"}, nil)
	uc.On("Tags", mock.Anything).Return([]string{"ai", "ml"}, nil)
	router := newBlogRouter(uc)

	w := serve(router, "GET", "/blog/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["general","research"]`, w.Body.String())

	w = serve(router, "GET", "/blog/tags", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["ai","ml"]`, w.Body.String())
}

func TestBlogHandler_CreatePost(t *testing.T) {
	uc := new(MockBlogUseCase)
	content := strings.TrimSpace(strings.Repeat("word ", 400))
	created := samplePost("new", true)
	created.Content = content
	created.ReadingTime = 2

	uc.On("Create", mock.Anything, mock.MatchedBy(func(in entity.PostInput) bool {
		return in.Title == "T" && in.Content == content && in.Excerpt == "E" && len(in.Tags) == 2
	})).Return(created, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"title":        "T",
		"content":      content,
		"excerpt":      "E",
		"tags":         []string{"a", "b"},
		"reading_time": 99,
	})
	w := serve(newBlogRouter(uc), "POST", "/admin/blog", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	var post entity.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, 2, post.ReadingTime)
	uc.AssertExpectations(t)
}

func TestBlogHandler_CreatePost_MissingFields(t *testing.T) {
	uc := new(MockBlogUseCase)

	body, _ := json.Marshal(map[string]interface{}{"title": "Only a title"})
	w := serve(newBlogRouter(uc), "POST", "/admin/blog", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "content is required")
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBlogHandler_CreatePost_MalformedJSON(t *testing.T) {
	uc := new(MockBlogUseCase)

	w := serve(newBlogRouter(uc), "POST", "/admin/blog", []byte(`{"title":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogHandler_UpdatePost_PassesPresence(t *testing.T) {
	uc := new(MockBlogUseCase)
	updated := samplePost("p1", true)
	updated.Title = "New title"

	uc.On("Update", mock.Anything, "p1", mock.MatchedBy(func(p entity.PostPatch) bool {
		return p.Title.HasValue() && p.Title.Value == "New title" &&
			!p.Content.Set &&
			p.FeaturedImage.Set && p.FeaturedImage.Null
	})).Return(updated, nil)

	w := serve(newBlogRouter(uc), "PUT", "/admin/blog/p1", []byte(`{"title":"New title","featured_image":null}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"New title"`)
	uc.AssertExpectations(t)
}

func TestBlogHandler_UpdatePost_Errors(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, entity.ErrNotFound)
	uc.On("Update", mock.Anything, "p1", mock.Anything).
		Return(nil, fmt.Errorf("%w: title cannot be empty", entity.ErrInvalidInput))
	router := newBlogRouter(uc)

	assert.Equal(t, http.StatusNotFound, serve(router, "PUT", "/admin/blog/missing", []byte(`{"title":"x"}`)).Code)

	w := serve(router, "PUT", "/admin/blog/p1", []byte(`{"title":null}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title cannot be empty")
}

func TestBlogHandler_DeletePost(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("Delete", mock.Anything, "p1").Return(nil)
	uc.On("Delete", mock.Anything, "gone").Return(entity.ErrNotFound)
	router := newBlogRouter(uc)

	w := serve(router, "DELETE", "/admin/blog/p1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["message"])

	assert.Equal(t, http.StatusNotFound, serve(router, "DELETE", "/admin/blog/gone", nil).Code)
}

func TestBlogHandler_InternalErrorIsHidden(t *testing.T) {
	uc := new(MockBlogUseCase)
	uc.On("Categories", mock.Anything).Return(nil, errors.New("failed to list categories: connection refused"))

	w := serve(newBlogRouter(uc), "GET", "/blog/categories", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
