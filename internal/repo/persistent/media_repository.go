package persistent

import (
	"context"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/model"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(ctx context.Context, rec *entity.MediaRecord) error
	GetByID(ctx context.Context, id string) (*entity.MediaRecord, error)
	List(ctx context.Context, filter entity.MediaFilter) ([]*entity.MediaRecord, error)
	UpdateMetadata(ctx context.Context, rec *entity.MediaRecord) error
	Delete(ctx context.Context, id string) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, rec *entity.MediaRecord) error {
	m := ToMediaModel(rec)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err, "create media")
	}
	*rec = *ToMediaEntity(m)
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*entity.MediaRecord, error) {
	id, err := parseID(id, "get media")
	if err != nil {
		return nil, err
	}
	var m model.MediaModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err, "get media")
	}
	return ToMediaEntity(&m), nil
}

func (r *mediaRepository) List(ctx context.Context, filter entity.MediaFilter) ([]*entity.MediaRecord, error) {
	var models []model.MediaModel
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.FileType != "" {
		query = query.Where("file_type = ?", string(filter.FileType))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, translate(err, "list media")
	}

	out := make([]*entity.MediaRecord, len(models))
	for i := range models {
		out[i] = ToMediaEntity(&models[i])
	}
	return out, nil
}

// UpdateMetadata writes only category and description.
func (r *mediaRepository) UpdateMetadata(ctx context.Context, rec *entity.MediaRecord) error {
	id, err := parseID(rec.ID, "update media")
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&model.MediaModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"category":    rec.Category,
			"description": rec.Description,
		})
	if result.Error != nil {
		return translate(result.Error, "update media")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "update media")
	}
	return nil
}

func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	id, err := parseID(id, "delete media")
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MediaModel{})
	if result.Error != nil {
		return translate(result.Error, "delete media")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete media")
	}
	return nil
}
