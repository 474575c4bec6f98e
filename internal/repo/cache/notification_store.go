package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio-api/internal/entity"
	"portfolio-api/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	notificationsKey = "admin:notifications"

	// MaxNotifications bounds the activity feed; older entries are trimmed.
	MaxNotifications = 200
)

// NotificationStore keeps the admin activity feed in a Redis list, newest
// first. With a nil client it stores nothing and lists an empty feed.
type NotificationStore struct {
	client *redis.Client
	logger *logger.Logger
}

func NewNotificationStore(client *redis.Client, log *logger.Logger) *NotificationStore {
	return &NotificationStore{client: client, logger: log}
}

func (s *NotificationStore) Push(ctx context.Context, n *entity.Notification) error {
	if s == nil || s.client == nil {
		return nil
	}
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, notificationsKey, data)
	pipe.LTrim(ctx, notificationsKey, 0, MaxNotifications-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

// Recent returns up to limit entries starting at offset and the feed length.
func (s *NotificationStore) Recent(ctx context.Context, limit, offset int) ([]entity.Notification, int64, error) {
	out := []entity.Notification{}
	if s == nil || s.client == nil || limit <= 0 {
		return out, 0, nil
	}

	raw, err := s.client.LRange(ctx, notificationsKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			s.logger.Warn("Skipping malformed notification: %v", err)
			continue
		}
		out = append(out, n)
	}

	total, err := s.client.LLen(ctx, notificationsKey).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return out, total, nil
}
