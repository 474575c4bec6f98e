package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PostModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	Title         string         `gorm:"type:varchar(500);not null" json:"title"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	Excerpt       string         `gorm:"type:text;not null" json:"excerpt"`
	Author        string         `gorm:"type:varchar(255);not null" json:"author"`
	Published     bool           `gorm:"not null;index:idx_posts_published_created,priority:1" json:"published"`
	Tags          pq.StringArray `gorm:"type:text[];not null" json:"tags"`
	Category      string         `gorm:"type:varchar(100);not null;default:'general';index" json:"category"`
	FeaturedImage *string        `gorm:"type:varchar(500)" json:"featured_image"`
	FeaturedVideo *string        `gorm:"type:varchar(500)" json:"featured_video"`
	ReadingTime   int            `gorm:"not null;default:1" json:"reading_time"`
	PaperType     *string        `gorm:"type:varchar(50)" json:"paper_type"`
	AcademicInfo  datatypes.JSON `gorm:"type:jsonb" json:"academic_info"`
	CreatedAt     time.Time      `gorm:"index:idx_posts_published_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "blog_posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
