package usecase

import (
	"context"
	"strings"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo}
}

// ListForRecipient returns the recipient's feed in insertion order.
func (uc *NotificationUseCase) ListForRecipient(ctx context.Context, recipientEmail string) ([]*entity.Notification, error) {
	return uc.notificationRepo.ListByRecipient(ctx, recipientEmail)
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, recipientEmail string) (int, error) {
	notifications, err := uc.notificationRepo.ListByRecipient(ctx, recipientEmail)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, recipientEmail, id string) error {
	if err := uc.ownedBy(ctx, recipientEmail, id); err != nil {
		return err
	}
	return uc.notificationRepo.MarkRead(ctx, id)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, recipientEmail string) error {
	return uc.notificationRepo.MarkAllRead(ctx, recipientEmail)
}

func (uc *NotificationUseCase) Delete(ctx context.Context, recipientEmail, id string) error {
	if err := uc.ownedBy(ctx, recipientEmail, id); err != nil {
		return err
	}
	return uc.notificationRepo.Delete(ctx, id)
}

func (uc *NotificationUseCase) ownedBy(ctx context.Context, recipientEmail, id string) error {
	notifications, err := uc.notificationRepo.ListByRecipient(ctx, recipientEmail)
	if err != nil {
		return err
	}
	for _, n := range notifications {
		if n.ID == id && strings.EqualFold(n.RecipientEmail, recipientEmail) {
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}
