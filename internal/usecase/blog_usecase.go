package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/repo/cache"
	"portfolio-api/internal/repo/persistent"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/queue"

	"github.com/google/uuid"
)

type BlogUseCase interface {
	Create(ctx context.Context, input entity.PostInput) (*entity.Post, error)
	// List returns published posts only.
	List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
	// ListAdmin returns drafts too.
	ListAdmin(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
	Featured(ctx context.Context, limit int) ([]*entity.Post, error)
	// GetPublished treats drafts as missing.
	GetPublished(ctx context.Context, id string) (*entity.Post, error)
	Get(ctx context.Context, id string) (*entity.Post, error)
	Update(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

type blogUseCase struct {
	postRepo      persistent.PostRepository
	cache         *cache.PostCache
	publisher     EventPublisher
	defaultAuthor string
	logger        *logger.Logger
	now           func() time.Time
}

func NewBlogUseCase(
	postRepo persistent.PostRepository,
	postCache *cache.PostCache,
	publisher EventPublisher,
	defaultAuthor string,
	logger *logger.Logger,
) BlogUseCase {
	return &blogUseCase{
		postRepo:      postRepo,
		cache:         postCache,
		publisher:     publisher,
		defaultAuthor: defaultAuthor,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (uc *blogUseCase) Create(ctx context.Context, input entity.PostInput) (*entity.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := uc.timestamp()
	post := &entity.Post{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		Excerpt:       strings.TrimSpace(input.Excerpt),
		Author:        uc.authorOrDefault(input.Author),
		CreatedAt:     now,
		UpdatedAt:     now,
		Published:     true,
		Tags:          entity.NormalizeTags(input.Tags),
		Category:      entity.NormalizeCategory(input.Category),
		FeaturedImage: input.FeaturedImage,
		FeaturedVideo: input.FeaturedVideo,
		ReadingTime:   entity.ReadingTime(input.Content),
		PaperType:     input.PaperType,
		AcademicInfo:  input.AcademicInfo,
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if post.Published {
		uc.invalidate(ctx)
		uc.announce(ctx, post)
	}
	uc.logger.Info("Post created: id=%s published=%t reading_time=%d", post.ID, post.Published, post.ReadingTime)
	return post, nil
}

func (uc *blogUseCase) List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	filter.PublishedOnly = true
	return uc.list(ctx, filter, entity.DefaultPostLimit)
}

func (uc *blogUseCase) ListAdmin(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	return uc.list(ctx, filter, entity.DefaultPostLimit)
}

func (uc *blogUseCase) Featured(ctx context.Context, limit int) ([]*entity.Post, error) {
	return uc.list(ctx, entity.PostFilter{PublishedOnly: true, Limit: limit}, entity.DefaultFeaturedLimit)
}

func (uc *blogUseCase) list(ctx context.Context, filter entity.PostFilter, defaultLimit int) ([]*entity.Post, error) {
	filter.Limit = entity.ClampLimit(filter.Limit, defaultLimit)
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Tag = strings.TrimSpace(filter.Tag)

	posts, err := uc.postRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []*entity.Post{}
	}
	return posts, nil
}

func (uc *blogUseCase) GetPublished(ctx context.Context, id string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, fmt.Errorf("post %s: %w", id, entity.ErrNotFound)
	}
	return post, nil
}

func (uc *blogUseCase) Get(ctx context.Context, id string) (*entity.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

func (uc *blogUseCase) Update(ctx context.Context, id string, patch entity.PostPatch) (*entity.Post, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	wasPublished := post.Published
	previousUpdate := post.UpdatedAt

	if patch.Title.HasValue() {
		patch.Title.Value = strings.TrimSpace(patch.Title.Value)
	}
	if patch.Excerpt.HasValue() {
		patch.Excerpt.Value = strings.TrimSpace(patch.Excerpt.Value)
	}
	if patch.Apply(post) {
		post.ReadingTime = entity.ReadingTime(post.Content)
	}
	post.Author = uc.authorOrDefault(post.Author)

	post.UpdatedAt = uc.timestamp()
	if !post.UpdatedAt.After(previousUpdate) {
		post.UpdatedAt = previousUpdate.Add(time.Microsecond)
	}

	if err := uc.postRepo.Update(ctx, post); err != nil {
		uc.logger.Error("Failed to update post %s: %v", id, err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	uc.invalidate(ctx)
	if !wasPublished && post.Published {
		uc.announce(ctx, post)
	}
	return post, nil
}

func (uc *blogUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	uc.logger.Info("Post deleted: id=%s", id)
	return nil
}

func (uc *blogUseCase) Categories(ctx context.Context) ([]string, error) {
	if categories, ok := uc.cache.GetCategories(ctx); ok {
		return categories, nil
	}
	generation := uc.cache.Generation()
	categories, err := uc.postRepo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	uc.cache.SetCategories(ctx, generation, categories)
	return categories, nil
}

func (uc *blogUseCase) Tags(ctx context.Context) ([]string, error) {
	if tags, ok := uc.cache.GetTags(ctx); ok {
		return tags, nil
	}
	generation := uc.cache.Generation()
	tags, err := uc.postRepo.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	uc.cache.SetTags(ctx, generation, tags)
	return tags, nil
}

// invalidate never fails the write; a failed delete leaves the cache bypassed.
func (uc *blogUseCase) invalidate(ctx context.Context) {
	_ = uc.cache.Invalidate(ctx)
}

func (uc *blogUseCase) authorOrDefault(author string) string {
	if a := strings.TrimSpace(author); a != "" {
		return a
	}
	return uc.defaultAuthor
}

// timestamp is truncated to the store's microsecond precision.
func (uc *blogUseCase) timestamp() time.Time {
	return uc.now().Truncate(time.Microsecond)
}

func (uc *blogUseCase) announce(ctx context.Context, post *entity.Post) {
	publishEvent(ctx, uc.publisher, uc.logger, queue.EventPostPublished, map[string]interface{}{
		"id":       post.ID,
		"title":    post.Title,
		"excerpt":  post.Excerpt,
		"category": post.Category,
		"tags":     post.Tags,
	})
}
