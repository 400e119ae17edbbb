package background

import (
	"context"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/logger"
)

// BackgroundTasks owns the recurring pollers. Notification delivery is
// poll-based: new notifications become visible at the next tick, so delivery
// latency is bounded by the poll interval rather than being push-based.
type BackgroundTasks struct {
	NotificationUC *usecase.NotificationUseCase
	AdminUC        *usecase.AdminUseCase
	FairUC         *usecase.FairUseCase
	PollInterval   time.Duration

	lastUnread map[string]int
}

func NewBackgroundTasks(
	notificationUC *usecase.NotificationUseCase,
	adminUC *usecase.AdminUseCase,
	fairUC *usecase.FairUseCase,
	pollInterval time.Duration,
) *BackgroundTasks {
	return &BackgroundTasks{
		NotificationUC: notificationUC,
		AdminUC:        adminUC,
		FairUC:         fairUC,
		PollInterval:   pollInterval,
		lastUnread:     make(map[string]int),
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startNotificationPoll(ctx)
	go bt.startFairStateRefresh(ctx)
}

func (bt *BackgroundTasks) startNotificationPoll(ctx context.Context) {
	ticker := time.NewTicker(bt.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.pollNotifications(ctx)
		}
	}
}

// pollNotifications re-reads every seller's feed and logs arrivals since the
// previous tick.
func (bt *BackgroundTasks) pollNotifications(ctx context.Context) {
	sellers, err := bt.AdminUC.ListAccounts(ctx, entity.RoleSeller)
	if err != nil {
		logger.Warn("Notification poll failed: %v", err)
		return
	}
	for _, seller := range sellers {
		unread, err := bt.NotificationUC.UnreadCount(ctx, seller.Email)
		if err != nil {
			logger.Warn("Notification poll failed for %s: %v", seller.Email, err)
			continue
		}
		if unread > bt.lastUnread[seller.Email] {
			logger.Info("Seller %s has %d unread notifications", seller.Email, unread)
		}
		bt.lastUnread[seller.Email] = unread
	}
}

// startFairStateRefresh reloads fairs periodically so date-driven transitions
// (scheduled to active, active to closed) are persisted without waiting for a
// user request.
func (bt *BackgroundTasks) startFairStateRefresh(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := bt.FairUC.List(ctx); err != nil {
				logger.Warn("Fair state refresh failed: %v", err)
			}
		}
	}
}
