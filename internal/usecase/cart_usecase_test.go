package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriavirtual/internal/domain/entity"
)

func TestAddToCartNotifiesSellerOnce(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 10)

	items, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	unread, err := e.notifications.UnreadCount(ctx, "seller@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	feed, err := e.notifications.ListForRecipient(ctx, "seller@x.com")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, entity.NotificationCartAdd, feed[0].Kind)
	assert.Equal(t, 1, feed[0].Quantity)
}

func TestRepeatAddMergesQuantityButRepeatsNotification(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 10)

	_, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 1)
	require.NoError(t, err)
	items, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 2)
	require.NoError(t, err)

	// One cart line with the merged quantity.
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	// Two notifications, the second carrying the updated total.
	feed, err := e.notifications.ListForRecipient(ctx, "seller@x.com")
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, 1, feed[0].Quantity)
	assert.Equal(t, 3, feed[1].Quantity)
}

func TestCartItemPriceFrozenAtAddTime(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 10)

	items, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 1)
	require.NoError(t, err)
	priceAtAdd := items[0].PriceAtAdd

	_, err = e.products.UpdateProduct(ctx, product.ID, "seller@x.com", ProductInput{
		Name:     product.Name,
		Price:    product.Price * 2,
		Stock:    product.Stock,
		Category: product.Category,
	})
	require.NoError(t, err)

	items, err = e.cart.GetCart(ctx, "buyer@x.com")
	require.NoError(t, err)
	assert.Equal(t, priceAtAdd, items[0].PriceAtAdd)
}

func TestCheckoutRejectsInsufficientStock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 2)

	_, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 2)
	require.NoError(t, err)
	_, err = e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 1)
	require.NoError(t, err)

	_, err = e.cart.Checkout(ctx, "buyer@x.com", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock")

	// Nothing was written: stock untouched, cart intact.
	got, err := e.productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)
	items, err := e.cart.GetCart(ctx, "buyer@x.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCheckoutDecrementsStockAndClearsCart(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 10)

	_, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 4)
	require.NoError(t, err)

	result, err := e.cart.Checkout(ctx, "buyer@x.com", "")
	require.NoError(t, err)
	assert.Equal(t, 2500.0*4, result.Subtotal)
	assert.Equal(t, result.Subtotal, result.Total)

	got, err := e.productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Stock)

	items, err := e.cart.GetCart(ctx, "buyer@x.com")
	require.NoError(t, err)
	assert.Empty(t, items)

	// One purchase notification on top of the cart-add ping.
	feed, err := e.notifications.ListForRecipient(ctx, "seller@x.com")
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, entity.NotificationPurchase, feed[1].Kind)
	assert.Equal(t, 4, feed[1].Quantity)
}

func TestCheckoutWithCouponAppliesDiscountAndRedeems(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 10)
	coupon := seedCoupon(t, e, 5)
	e.promotions.now = fixedNow(couponStart.AddDate(0, 0, 2))

	_, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 2)
	require.NoError(t, err)

	result, err := e.cart.Checkout(ctx, "buyer@x.com", "save10")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, result.Subtotal)
	assert.Equal(t, 10, result.DiscountPercent)
	assert.Equal(t, 4500.0, result.Total)

	// Redemption happened after the cart clear.
	promotions, err := e.promotions.ListMine(ctx, "seller@x.com")
	require.NoError(t, err)
	require.Len(t, promotions, 1)
	assert.Equal(t, coupon.ID, promotions[0].ID)
	assert.Equal(t, 1, promotions[0].UsageCount)
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	e := newEnv(t)
	e.seedAccount(t, "buyer@x.com", "buyer")

	_, err := e.cart.Checkout(context.Background(), "buyer@x.com", "")
	require.Error(t, err)
}

func TestRemoveFromCart(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 10)

	_, err := e.cart.AddToCart(ctx, "buyer@x.com", product.ID, 1)
	require.NoError(t, err)

	items, err := e.cart.RemoveFromCart(ctx, "buyer@x.com", product.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
