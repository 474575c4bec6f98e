package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/repo/persistent"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/queue"

	"github.com/google/uuid"
)

const SubscriberListLimit = 500

var ErrAlreadySubscribed = fmt.Errorf("%w: email already subscribed", entity.ErrConflict)

type NewsletterUseCase interface {
	// Subscribe fails with ErrAlreadySubscribed for a known email.
	Subscribe(ctx context.Context, input entity.SubscriptionInput) (*entity.NewsletterSubscription, error)
	List(ctx context.Context) ([]*entity.NewsletterSubscription, error)
}

type newsletterUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	publisher        EventPublisher
	logger           *logger.Logger
	now              func() time.Time
}

func NewNewsletterUseCase(subscriptionRepo persistent.SubscriptionRepository, publisher EventPublisher, logger *logger.Logger) NewsletterUseCase {
	return &newsletterUseCase{
		subscriptionRepo: subscriptionRepo,
		publisher:        publisher,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (uc *newsletterUseCase) Subscribe(ctx context.Context, input entity.SubscriptionInput) (*entity.NewsletterSubscription, error) {
	input.Email = entity.NormalizeEmail(input.Email)
	if err := entity.ValidateStruct(input); err != nil {
		return nil, err
	}

	exists, err := uc.subscriptionRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	sub := &entity.NewsletterSubscription{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Name:         trimmedOrNil(input.Name),
		SubscribedAt: uc.now().Truncate(time.Microsecond),
		Active:       true,
	}

	// The unique index decides races the pre-check missed.
	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, ErrAlreadySubscribed
		}
		uc.logger.Error("Failed to store subscription: %v", err)
		return nil, fmt.Errorf("failed to store subscription: %w", err)
	}

	publishEvent(ctx, uc.publisher, uc.logger, queue.EventSubscriberAdded, map[string]interface{}{
		"id":    sub.ID,
		"email": sub.Email,
	})
	return sub, nil
}

func (uc *newsletterUseCase) List(ctx context.Context) ([]*entity.NewsletterSubscription, error) {
	subs, err := uc.subscriptionRepo.List(ctx, SubscriberListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if subs == nil {
		subs = []*entity.NewsletterSubscription{}
	}
	return subs, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
