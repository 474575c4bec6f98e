package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-api/internal/entity"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/queue"
)

const (
	DefaultNotificationLimit = 20
	MaxNotificationLimit     = 100
)

// ActivityFeed stores admin notifications, newest first.
type ActivityFeed interface {
	Push(ctx context.Context, n *entity.Notification) error
	Recent(ctx context.Context, limit, offset int) ([]entity.Notification, int64, error)
}

type NotificationUseCase interface {
	// Handle turns a domain event into a feed entry. Unknown or malformed
	// events are logged and skipped; only storage failures are returned.
	Handle(ctx context.Context, d queue.Delivery) error
	List(ctx context.Context, limit, offset int) ([]entity.Notification, int64, error)
}

type notificationUseCase struct {
	feed   ActivityFeed
	logger *logger.Logger
	now    func() time.Time
}

func NewNotificationUseCase(feed ActivityFeed, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		feed:   feed,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (uc *notificationUseCase) Handle(ctx context.Context, d queue.Delivery) error {
	var data map[string]interface{}
	if err := json.Unmarshal(d.Payload, &data); err != nil || data == nil {
		uc.logger.Warn("[NOTIFICATION] Skipping %s event with unreadable payload", d.Type)
		return nil
	}

	n := &entity.Notification{
		Type:      d.Type,
		Data:      data,
		CreatedAt: d.OccurredAt,
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = uc.now()
	}

	switch d.Type {
	case queue.EventPostPublished:
		n.Title = "Post published"
		n.Message = fmt.Sprintf("%q is now live", str(data, "title"))
	case queue.EventContactReceived:
		n.Title = "New contact message"
		n.Message = fmt.Sprintf("%s <%s>: %s", str(data, "name"), str(data, "email"), str(data, "subject"))
	case queue.EventSubscriberAdded:
		n.Title = "New newsletter subscriber"
		n.Message = str(data, "email")
	case queue.EventMediaUploaded:
		n.Title = "Media uploaded"
		n.Message = fmt.Sprintf("%s %s", str(data, "file_type"), str(data, "file_path"))
	default:
		uc.logger.Warn("[NOTIFICATION] Unknown event type: %s", d.Type)
		return nil
	}

	if err := uc.feed.Push(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	uc.logger.Info("[NOTIFICATION] %s: %s", n.Title, n.Message)
	return nil
}

func (uc *notificationUseCase) List(ctx context.Context, limit, offset int) ([]entity.Notification, int64, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	if limit > MaxNotificationLimit {
		limit = MaxNotificationLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, total, err := uc.feed.Recent(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	return items, total, nil
}

func str(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
