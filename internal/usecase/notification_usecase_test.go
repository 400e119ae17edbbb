package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriavirtual/pkg/errors"
)

func TestMarkReadRequiresOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 5)

	_, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 1)
	require.NoError(t, err)

	feed, err := e.notifications.ListForRecipient(ctx, "seller@x.com")
	require.NoError(t, err)
	require.Len(t, feed, 1)

	err = e.notifications.MarkRead(ctx, "buyer@x.com", feed[0].ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	require.NoError(t, e.notifications.MarkRead(ctx, "seller@x.com", feed[0].ID))
	unread, err := e.notifications.UnreadCount(ctx, "seller@x.com")
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMarkAllRead(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 5)

	for i := 0; i < 3; i++ {
		_, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 1)
		require.NoError(t, err)
	}

	require.NoError(t, e.notifications.MarkAllRead(ctx, "seller@x.com"))
	unread, err := e.notifications.UnreadCount(ctx, "seller@x.com")
	require.NoError(t, err)
	assert.Zero(t, unread)

	// The feed itself is untouched; only the read flags flip.
	feed, err := e.notifications.ListForRecipient(ctx, "seller@x.com")
	require.NoError(t, err)
	assert.Len(t, feed, 3)
}

func TestDeleteNotification(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 5)

	_, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 1)
	require.NoError(t, err)

	feed, err := e.notifications.ListForRecipient(ctx, "seller@x.com")
	require.NoError(t, err)
	require.Len(t, feed, 1)

	require.NoError(t, e.notifications.Delete(ctx, "seller@x.com", feed[0].ID))
	feed, err = e.notifications.ListForRecipient(ctx, "seller@x.com")
	require.NoError(t, err)
	assert.Empty(t, feed)
}
