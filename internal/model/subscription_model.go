package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterSubscriptionModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"type:varchar(320);uniqueIndex;not null" json:"email"`
	Name         *string   `gorm:"type:varchar(255)" json:"name"`
	SubscribedAt time.Time `gorm:"not null" json:"subscribed_at"`
	Active       bool      `gorm:"not null" json:"active"`
}

func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}

func (m *NewsletterSubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
