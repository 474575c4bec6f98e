package persistent

import (
	"context"
	"strings"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	// Create fails with entity.ErrConflict when the email is already stored.
	Create(ctx context.Context, sub *entity.NewsletterSubscription) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, limit int) ([]*entity.NewsletterSubscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *entity.NewsletterSubscription) error {
	m := ToSubscriptionModel(sub)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return translate(gorm.ErrDuplicatedKey, "create subscription")
		}
		return translate(err, "create subscription")
	}
	*sub = *ToSubscriptionEntity(m)
	return nil
}

func (r *subscriptionRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.NewsletterSubscriptionModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "check subscription")
	}
	return count > 0, nil
}

func (r *subscriptionRepository) List(ctx context.Context, limit int) ([]*entity.NewsletterSubscription, error) {
	var models []model.NewsletterSubscriptionModel
	query := r.db.WithContext(ctx).Order("subscribed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, translate(err, "list subscriptions")
	}

	out := make([]*entity.NewsletterSubscription, len(models))
	for i := range models {
		out[i] = ToSubscriptionEntity(&models[i])
	}
	return out, nil
}

// isUniqueViolation catches duplicate-key errors the dialector did not translate.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key value")
}
