package persistent

import (
	"encoding/json"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/model"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:            m.ID,
		Title:         m.Title,
		Content:       m.Content,
		Excerpt:       m.Excerpt,
		Author:        m.Author,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Published:     m.Published,
		Tags:          []string(m.Tags),
		Category:      m.Category,
		FeaturedImage: m.FeaturedImage,
		FeaturedVideo: m.FeaturedVideo,
		ReadingTime:   m.ReadingTime,
		PaperType:     m.PaperType,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if len(m.AcademicInfo) > 0 {
		post.AcademicInfo = json.RawMessage(m.AcademicInfo)
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:            e.ID,
		Title:         e.Title,
		Content:       e.Content,
		Excerpt:       e.Excerpt,
		Author:        e.Author,
		Published:     e.Published,
		Tags:          pq.StringArray(e.Tags),
		Category:      e.Category,
		FeaturedImage: e.FeaturedImage,
		FeaturedVideo: e.FeaturedVideo,
		ReadingTime:   e.ReadingTime,
		PaperType:     e.PaperType,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if post.Tags == nil {
		post.Tags = pq.StringArray{}
	}
	if len(e.AcademicInfo) > 0 && string(e.AcademicInfo) != "null" {
		post.AcademicInfo = datatypes.JSON(e.AcademicInfo)
	}

	return post
}

func ToContactEntity(m *model.ContactMessageModel) *entity.ContactMessage {
	if m == nil {
		return nil
	}
	return &entity.ContactMessage{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Subject:     m.Subject,
		Message:     m.Message,
		MessageType: m.MessageType,
		Timestamp:   m.Timestamp,
	}
}

func ToContactModel(e *entity.ContactMessage) *model.ContactMessageModel {
	if e == nil {
		return nil
	}
	return &model.ContactMessageModel{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Subject:     e.Subject,
		Message:     e.Message,
		MessageType: e.MessageType,
		Timestamp:   e.Timestamp,
	}
}

func ToSubscriptionEntity(m *model.NewsletterSubscriptionModel) *entity.NewsletterSubscription {
	if m == nil {
		return nil
	}
	return &entity.NewsletterSubscription{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		SubscribedAt: m.SubscribedAt,
		Active:       m.Active,
	}
}

func ToSubscriptionModel(e *entity.NewsletterSubscription) *model.NewsletterSubscriptionModel {
	if e == nil {
		return nil
	}
	return &model.NewsletterSubscriptionModel{
		ID:           e.ID,
		Email:        e.Email,
		Name:         e.Name,
		SubscribedAt: e.SubscribedAt,
		Active:       e.Active,
	}
}

func ToMediaEntity(m *model.MediaModel) *entity.MediaRecord {
	if m == nil {
		return nil
	}
	return &entity.MediaRecord{
		ID:          m.ID,
		Filename:    m.Filename,
		FilePath:    m.FilePath,
		FileType:    entity.FileType(m.FileType),
		ContentType: m.ContentType,
		Size:        m.Size,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func ToMediaModel(e *entity.MediaRecord) *model.MediaModel {
	if e == nil {
		return nil
	}
	return &model.MediaModel{
		ID:          e.ID,
		Filename:    e.Filename,
		FilePath:    e.FilePath,
		FileType:    string(e.FileType),
		ContentType: e.ContentType,
		Size:        e.Size,
		Category:    e.Category,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func ToAdminEntity(m *model.AdminUserModel) *entity.AdminCredential {
	if m == nil {
		return nil
	}
	return &entity.AdminCredential{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
