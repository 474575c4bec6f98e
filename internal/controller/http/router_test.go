package http

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/usecase"
	"portfolio-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	router *gin.Engine
	blog   *MockBlogUseCase
	auth   *MockAuthUseCase
	media  *MockMediaUseCase
}

func newRouterFixture(opts RouterOptions) *routerFixture {
	f := &routerFixture{
		blog:  new(MockBlogUseCase),
		auth:  new(MockAuthUseCase),
		media: new(MockMediaUseCase),
	}
	log := testLogger()
	h := Handlers{
		Blog:       NewBlogHandler(f.blog, log),
		Auth:       NewAuthHandler(f.auth, log),
		Media:      NewMediaHandler(f.media, 1<<20, log),
		Contact:    NewContactHandler(new(MockContactUseCase), log),
		Newsletter: NewNewsletterHandler(new(MockNewsletterUseCase), log),
		Portfolio:  NewPortfolioHandler(usecase.NewPortfolioUseCase(), log),
	}
	f.router = setupTestRouter()
	RegisterRoutes(f.router, h, middleware.AuthMiddleware(f.auth), opts)
	return f
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	f := newRouterFixture(RouterOptions{})

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/admin/verify"},
		{"GET", "/api/admin/blog"},
		{"POST", "/api/admin/blog"},
		{"PUT", "/api/admin/blog/p1"},
		{"DELETE", "/api/admin/blog/p1"},
		{"POST", "/api/admin/media/upload"},
		{"GET", "/api/admin/media"},
		{"PUT", "/api/admin/media/m1"},
		{"DELETE", "/api/admin/media/m1"},
		{"GET", "/api/admin/contact"},
		{"GET", "/api/admin/newsletter"},
	} {
		w := serve(f.router, route.method, route.path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
	f.blog.AssertNotCalled(t, "ListAdmin", mock.Anything, mock.Anything)
	f.media.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRouter_ValidTokenReachesHandler(t *testing.T) {
	f := newRouterFixture(RouterOptions{})
	f.auth.On("Verify", "good-token").Return("admin", nil)
	f.auth.On("Verify", "stale-token").Return("", entity.ErrUnauthorized)
	f.blog.On("ListAdmin", mock.Anything, entity.PostFilter{}).Return([]*entity.Post{}, nil)

	w := httptestRequest(f.router, "GET", "/api/admin/verify", "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"admin"}`, w.Body.String())

	w = httptestRequest(f.router, "GET", "/api/admin/blog", "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptestRequest(f.router, "GET", "/api/admin/verify", "Bearer stale-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_LoginIsPublic(t *testing.T) {
	f := newRouterFixture(RouterOptions{})
	f.auth.On("Login", mock.Anything, "admin", "pw").Return(&entity.AdminSession{AccessToken: "t", TokenType: "bearer"}, nil)

	w := serve(f.router, "POST", "/api/admin/login", []byte(`{"username":"admin","password":"pw"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	f.auth.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestRouter_PublicBlogCreateToggle(t *testing.T) {
	body := []byte(`{"title":"T","content":"C","excerpt":"E"}`)

	closed := newRouterFixture(RouterOptions{})
	assert.Equal(t, http.StatusNotFound, serve(closed.router, "POST", "/api/blog", body).Code)

	open := newRouterFixture(RouterOptions{PublicBlogCreate: true})
	open.blog.On("Create", mock.Anything, mock.Anything).Return(samplePost("p1", true), nil)
	assert.Equal(t, http.StatusCreated, serve(open.router, "POST", "/api/blog", body).Code)
}

func TestRouter_StaticRoutesBeforeID(t *testing.T) {
	f := newRouterFixture(RouterOptions{})
	f.blog.On("Categories", mock.Anything).Return([]string{"general"}, nil)
	f.blog.On("GetPublished", mock.Anything, "p1").Return(samplePost("p1", true), nil)

	assert.Equal(t, http.StatusOK, serve(f.router, "GET", "/api/blog/categories", nil).Code)
	assert.Equal(t, http.StatusOK, serve(f.router, "GET", "/api/blog/p1", nil).Code)
	f.blog.AssertNotCalled(t, "GetPublished", mock.Anything, "categories")
}

func TestRouter_ServesUploads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("png-bytes"), 0o644))

	f := newRouterFixture(RouterOptions{UploadDir: dir})

	w := serve(f.router, "GET", "/uploads/a.png", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(f.router, "GET", "/uploads/missing.png", nil).Code)
}

func TestRouter_PortfolioUnderAPI(t *testing.T) {
	f := newRouterFixture(RouterOptions{})

	assert.Equal(t, http.StatusOK, serve(f.router, "GET", "/api/", nil).Code)
	assert.Equal(t, http.StatusOK, serve(f.router, "GET", "/api/languages", nil).Code)
	assert.Equal(t, http.StatusOK, serve(f.router, "GET", "/api/portfolio/projects?lang=es", nil).Code)
}

func TestRouter_ThrottleGuardsPublicWrites(t *testing.T) {
	blocked := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
	}
	f := newRouterFixture(RouterOptions{Throttle: blocked})
	f.blog.On("List", mock.Anything, entity.PostFilter{}).Return([]*entity.Post{}, nil)

	assert.Equal(t, http.StatusTooManyRequests, serve(f.router, "POST", "/api/admin/login", []byte(`{}`)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(f.router, "POST", "/api/contact", []byte(`{}`)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(f.router, "POST", "/api/newsletter/subscribe", []byte(`{}`)).Code)
	assert.Equal(t, http.StatusOK, serve(f.router, "GET", "/api/blog", nil).Code)
	f.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_NotificationsMountedWhenConfigured(t *testing.T) {
	f := newRouterFixture(RouterOptions{})
	f.auth.On("Verify", "good-token").Return("admin", nil)
	assert.Equal(t, http.StatusNotFound, httptestRequest(f.router, "GET", "/api/admin/notifications", "Bearer good-token").Code)

	notifications := new(MockNotificationUseCase)
	notifications.On("List", mock.Anything, 0, 0).Return([]entity.Notification{}, int64(0), nil)

	log := testLogger()
	auth := new(MockAuthUseCase)
	auth.On("Verify", "good-token").Return("admin", nil)
	router := setupTestRouter()
	RegisterRoutes(router, Handlers{
		Blog:          NewBlogHandler(new(MockBlogUseCase), log),
		Auth:          NewAuthHandler(auth, log),
		Media:         NewMediaHandler(new(MockMediaUseCase), 0, log),
		Contact:       NewContactHandler(new(MockContactUseCase), log),
		Newsletter:    NewNewsletterHandler(new(MockNewsletterUseCase), log),
		Portfolio:     NewPortfolioHandler(usecase.NewPortfolioUseCase(), log),
		Notifications: NewNotificationHandler(notifications, log),
	}, middleware.AuthMiddleware(auth), RouterOptions{})

	assert.Equal(t, http.StatusUnauthorized, serve(router, "GET", "/api/admin/notifications", nil).Code)

	w := httptestRequest(router, "GET", "/api/admin/notifications", "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"notifications":[],"total":0}`, w.Body.String())
}
