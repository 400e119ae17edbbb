package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

type NotificationRepository interface {
	Add(ctx context.Context, notification *entity.Notification) error
	// ListByRecipient returns notifications in insertion order.
	ListByRecipient(ctx context.Context, recipientEmail string) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, recipientEmail string) error
	Delete(ctx context.Context, id string) error
}
