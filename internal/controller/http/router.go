package http

import (
	"portfolio-api/internal/repo/storage"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Blog       *BlogHandler
	Auth       *AuthHandler
	Media      *MediaHandler
	Contact    *ContactHandler
	Newsletter *NewsletterHandler
	Portfolio  *PortfolioHandler
	// Notifications is optional; the feed route is mounted only when set.
	Notifications *NotificationHandler
}

type RouterOptions struct {
	// PublicBlogCreate also mounts POST /api/blog without authentication.
	PublicBlogCreate bool
	// UploadDir, when set, is served read-only under /uploads.
	UploadDir string
	// Throttle, when set, guards login and the public form posts.
	Throttle gin.HandlerFunc
}

// RegisterRoutes mounts the API under /api. Admin routes except login sit
// behind auth.
func RegisterRoutes(router *gin.Engine, h Handlers, auth gin.HandlerFunc, opts RouterOptions) {
	throttle := opts.Throttle
	if throttle == nil {
		throttle = func(c *gin.Context) { c.Next() }
	}

	if opts.UploadDir != "" {
		router.Static(storage.PublicPrefix, opts.UploadDir)
	}

	api := router.Group("/api")
	{
		api.GET("/", h.Portfolio.Root)
		api.GET("/languages", h.Portfolio.Languages)
		api.GET("/portfolio/:section", h.Portfolio.Section)

		api.GET("/blog", h.Blog.ListPosts)
		api.GET("/blog/categories", h.Blog.Categories)
		api.GET("/blog/tags", h.Blog.Tags)
		api.GET("/blog/featured", h.Blog.FeaturedPosts)
		api.GET("/blog/:id", h.Blog.GetPost)
		if opts.PublicBlogCreate {
			api.POST("/blog", h.Blog.CreatePost)
		}

		api.POST("/contact", throttle, h.Contact.SubmitContact)
		api.POST("/newsletter/subscribe", throttle, h.Newsletter.Subscribe)

		api.POST("/admin/login", throttle, h.Auth.Login)
	}

	admin := api.Group("/admin")
	admin.Use(auth)
	{
		admin.GET("/verify", h.Auth.Verify)

		admin.GET("/blog", h.Blog.ListAllPosts)
		admin.POST("/blog", h.Blog.CreatePost)
		admin.GET("/blog/:id", h.Blog.GetAnyPost)
		admin.PUT("/blog/:id", h.Blog.UpdatePost)
		admin.DELETE("/blog/:id", h.Blog.DeletePost)

		admin.POST("/media/upload", h.Media.UploadMedia)
		admin.GET("/media", h.Media.ListMedia)
		admin.PUT("/media/:id", h.Media.UpdateMedia)
		admin.DELETE("/media/:id", h.Media.DeleteMedia)

		admin.GET("/contact", h.Contact.ListContacts)
		admin.GET("/newsletter", h.Newsletter.ListSubscribers)

		if h.Notifications != nil {
			admin.GET("/notifications", h.Notifications.GetNotifications)
		}
	}
}
