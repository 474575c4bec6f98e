package http

import (
	"net/http"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/usecase"
	"portfolio-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

type ListPostsQuery struct {
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Search   string `form:"search"`
	Limit    int    `form:"limit" binding:"omitempty,min=0"`
	Skip     int    `form:"skip" binding:"omitempty,min=0"`
}

func (q ListPostsQuery) filter() entity.PostFilter {
	return entity.PostFilter{
		Category: q.Category,
		Tag:      q.Tag,
		Search:   q.Search,
		Limit:    q.Limit,
		Skip:     q.Skip,
	}
}

type FeaturedQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

// ListPosts godoc
// @Summary      List published posts
// @Description  Newest first. Search is a case-insensitive substring match on title, content or excerpt.
// @Tags         blog
// @Produce      json
// @Param        category query string false "Category"
// @Param        tag query string false "Tag"
// @Param        search query string false "Search text"
// @Param        limit query int false "Page size (default 10, max 50)"
// @Param        skip query int false "Offset"
// @Success      200  {array}   entity.Post
// @Failure      400  {object}  map[string]string
// @Router       /blog [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	var q ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	posts, err := h.blogUseCase.List(c.Request.Context(), q.filter())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListAllPosts godoc
// @Summary      List all posts
// @Description  Same filters as the public listing, drafts included.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        category query string false "Category"
// @Param        tag query string false "Tag"
// @Param        search query string false "Search text"
// @Param        limit query int false "Page size (default 10, max 50)"
// @Param        skip query int false "Offset"
// @Success      200  {array}   entity.Post
// @Failure      401  {object}  map[string]string
// @Router       /admin/blog [get]
func (h *BlogHandler) ListAllPosts(c *gin.Context) {
	var q ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	posts, err := h.blogUseCase.ListAdmin(c.Request.Context(), q.filter())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// FeaturedPosts godoc
// @Summary      Featured posts
// @Description  The most recent published posts.
// @Tags         blog
// @Produce      json
// @Param        limit query int false "Number of posts (default 3)"
// @Success      200  {array}   entity.Post
// @Router       /blog/featured [get]
func (h *BlogHandler) FeaturedPosts(c *gin.Context) {
	var q FeaturedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	posts, err := h.blogUseCase.Featured(c.Request.Context(), q.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get a published post
// @Tags         blog
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /blog/{id} [get]
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogUseCase.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetAnyPost godoc
// @Summary      Get a post, drafts included
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/blog/{id} [get]
func (h *BlogHandler) GetAnyPost(c *gin.Context) {
	post, err := h.blogUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Categories godoc
// @Summary      Distinct categories of published posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}  string
// @Router       /blog/categories [get]
func (h *BlogHandler) Categories(c *gin.Context) {
	categories, err := h.blogUseCase.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Tags godoc
// @Summary      Distinct tags of published posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}  string
// @Router       /blog/tags [get]
func (h *BlogHandler) Tags(c *gin.Context) {
	tags, err := h.blogUseCase.Tags(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreatePost godoc
// @Summary      Create a post
// @Description  reading_time is derived from content and never accepted from the client.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post body entity.PostInput true "Post"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin/blog [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var input entity.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.blogUseCase.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Partial update: absent fields are left unchanged, null clears optional fields.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        post body object true "Fields to change"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/blog/{id} [put]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var patch entity.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.blogUseCase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/blog/{id} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.blogUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
