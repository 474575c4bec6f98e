package persistent

import (
	"context"
	"strings"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return translate(err, "create post")
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	id, err := parseID(id, "get post")
	if err != nil {
		return nil, err
	}
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, translate(err, "get post")
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	var postModels []model.PostModel
	query := applyPostFilter(r.db.WithContext(ctx).Model(&model.PostModel{}), filter).
		Order("created_at DESC")

	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&postModels).Error; err != nil {
		return nil, translate(err, "list posts")
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Update writes every column of post, including zero values, keeping the
// caller's updated_at.
func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	id, err := parseID(post.ID, "update post")
	if err != nil {
		return err
	}
	postModel := ToPostModel(post)
	result := r.db.WithContext(ctx).Model(&model.PostModel{}).
		Where("id = ?", id).
		Select("*").Omit("id", "created_at").
		UpdateColumns(postModel)
	if result.Error != nil {
		return translate(result.Error, "update post")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "update post")
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	id, err := parseID(id, "delete post")
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return translate(result.Error, "delete post")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete post")
	}
	return nil
}

func (r *postRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.PostModel{}).
		Where("published = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, translate(err, "list categories")
	}
	return categories, nil
}

func (r *postRepository) Tags(ctx context.Context) ([]string, error) {
	var tags []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT tag FROM blog_posts, unnest(tags) AS tag WHERE published = ? ORDER BY tag`, true).
		Scan(&tags).Error
	if err != nil {
		return nil, translate(err, "list tags")
	}
	return tags, nil
}

func applyPostFilter(query *gorm.DB, filter entity.PostFilter) *gorm.DB {
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(search)
		query = query.Where("(title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ?)", pattern, pattern, pattern)
	}
	return query
}
