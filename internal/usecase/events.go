package usecase

import (
	"context"
	"time"

	"portfolio-api/pkg/logger"
)

const publishTimeout = 2 * time.Second

// EventPublisher delivers domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}

// publishEvent never fails the caller; broker errors are only logged.
func publishEvent(ctx context.Context, pub EventPublisher, log *logger.Logger, event string, payload interface{}) {
	if pub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := pub.Publish(ctx, event, payload); err != nil {
		log.Warn("Failed to publish %s event: %v", event, err)
	}
}
