package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/localstore"
	"feriavirtual/pkg/errors"
)

const notificationsKey = "notifications"

type localNotificationRepository struct {
	store *localstore.Store
}

func NewLocalNotificationRepository(store *localstore.Store) repository.NotificationRepository {
	return &localNotificationRepository{store: store}
}

func (r *localNotificationRepository) Add(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	return localstore.Mutate(r.store, notificationsKey, func(notifications []*entity.Notification) ([]*entity.Notification, error) {
		return append(notifications, notification), nil
	})
}

func (r *localNotificationRepository) ListByRecipient(ctx context.Context, recipientEmail string) ([]*entity.Notification, error) {
	notifications, err := localstore.Read[[]*entity.Notification](r.store, notificationsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Notification, 0, len(notifications))
	for _, n := range notifications {
		if strings.EqualFold(n.RecipientEmail, recipientEmail) {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

func (r *localNotificationRepository) MarkRead(ctx context.Context, id string) error {
	return localstore.Mutate(r.store, notificationsKey, func(notifications []*entity.Notification) ([]*entity.Notification, error) {
		for _, n := range notifications {
			if n.ID == id {
				n.Read = true
				return notifications, nil
			}
		}
		return nil, errors.NotFound("Notification", nil)
	})
}

func (r *localNotificationRepository) MarkAllRead(ctx context.Context, recipientEmail string) error {
	return localstore.Mutate(r.store, notificationsKey, func(notifications []*entity.Notification) ([]*entity.Notification, error) {
		for _, n := range notifications {
			if strings.EqualFold(n.RecipientEmail, recipientEmail) {
				n.Read = true
			}
		}
		return notifications, nil
	})
}

func (r *localNotificationRepository) Delete(ctx context.Context, id string) error {
	return localstore.Mutate(r.store, notificationsKey, func(notifications []*entity.Notification) ([]*entity.Notification, error) {
		kept := notifications[:0]
		for _, n := range notifications {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		return kept, nil
	})
}
