package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/repo/persistent"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/queue"

	"github.com/google/uuid"
)

const ContactListLimit = 100

type ContactUseCase interface {
	Submit(ctx context.Context, input entity.ContactInput) (*entity.ContactMessage, error)
	// List returns the newest messages first, capped at ContactListLimit.
	List(ctx context.Context) ([]*entity.ContactMessage, error)
}

type contactUseCase struct {
	contactRepo persistent.ContactRepository
	publisher   EventPublisher
	logger      *logger.Logger
	now         func() time.Time
}

func NewContactUseCase(contactRepo persistent.ContactRepository, publisher EventPublisher, logger *logger.Logger) ContactUseCase {
	return &contactUseCase{
		contactRepo: contactRepo,
		publisher:   publisher,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (uc *contactUseCase) Submit(ctx context.Context, input entity.ContactInput) (*entity.ContactMessage, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)
	if err := entity.ValidateStruct(input); err != nil {
		return nil, err
	}

	msg := &entity.ContactMessage{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Subject:     input.Subject,
		Message:     input.Message,
		MessageType: strings.TrimSpace(input.MessageType),
		Timestamp:   uc.now().Truncate(time.Microsecond),
	}
	if msg.MessageType == "" {
		msg.MessageType = entity.DefaultMessageType
	}

	if err := uc.contactRepo.Create(ctx, msg); err != nil {
		uc.logger.Error("Failed to store contact message: %v", err)
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	publishEvent(ctx, uc.publisher, uc.logger, queue.EventContactReceived, map[string]interface{}{
		"id":           msg.ID,
		"name":         msg.Name,
		"email":        msg.Email,
		"subject":      msg.Subject,
		"message_type": msg.MessageType,
	})
	return msg, nil
}

func (uc *contactUseCase) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	messages, err := uc.contactRepo.List(ctx, ContactListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	if messages == nil {
		messages = []*entity.ContactMessage{}
	}
	return messages, nil
}
