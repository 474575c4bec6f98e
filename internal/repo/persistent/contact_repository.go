package persistent

import (
	"context"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	List(ctx context.Context, limit int) ([]*entity.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	m := ToContactModel(msg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err, "create contact message")
	}
	*msg = *ToContactEntity(m)
	return nil
}

func (r *contactRepository) List(ctx context.Context, limit int) ([]*entity.ContactMessage, error) {
	var models []model.ContactMessageModel
	query := r.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, translate(err, "list contact messages")
	}

	out := make([]*entity.ContactMessage, len(models))
	for i := range models {
		out[i] = ToContactEntity(&models[i])
	}
	return out, nil
}
