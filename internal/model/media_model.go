package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Filename    string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"filename"`
	FilePath    string    `gorm:"type:varchar(1000);not null" json:"file_path"`
	FileType    string    `gorm:"type:varchar(10);not null;index" json:"file_type"`
	ContentType string    `gorm:"type:varchar(100);not null" json:"content_type"`
	Size        int64     `gorm:"not null;default:0" json:"size"`
	Category    string    `gorm:"type:varchar(100);not null;default:'general';index" json:"category"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (MediaModel) TableName() string {
	return "media_files"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
