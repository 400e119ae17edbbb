package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/pkg/errors"
)

func TestOnlySellersCanPublish(t *testing.T) {
	e := newEnv(t)
	e.seedAccount(t, "buyer@x.com", "buyer")

	_, err := e.products.CreateProduct(context.Background(), "buyer@x.com", ProductInput{
		Name:     "Tejido a mano",
		Price:    100,
		Stock:    1,
		Category: "artesania",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestNewProductIsActiveByDefault(t *testing.T) {
	e := newEnv(t)
	e.seedAccount(t, "seller@x.com", "seller")
	product := e.seedProduct(t, "seller@x.com", 5)

	view, err := e.products.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductActive, view.Status)

	history, err := e.products.StatusHistory(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCatalogHidesInactiveProducts(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	shown := e.seedProduct(t, "seller@x.com", 5)
	hidden := e.seedProduct(t, "seller@x.com", 5)

	require.NoError(t, e.products.SetStatus(ctx, hidden.ID, "seller@x.com", entity.ProductInactive, "vacation"))

	catalog, err := e.products.Catalog(ctx, "")
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, shown.ID, catalog[0].ID)
}

func TestCatalogHidesProductsOfDeletedSellers(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "admin@x.com", "admin")
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "other@x.com", "seller")
	e.seedProduct(t, "seller@x.com", 5)
	kept := e.seedProduct(t, "other@x.com", 5)

	_, err := e.eliminations.Eliminate(ctx, "admin@x.com", EliminationInput{
		SellerEmail:         "seller@x.com",
		SelectedReason:      "fraudulent-activity",
		DetailedDescription: "Multiple confirmed reports of goods that were paid for and never shipped to buyers.",
	})
	require.NoError(t, err)

	catalog, err := e.products.Catalog(ctx, "")
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, kept.ID, catalog[0].ID)
}

func TestCatalogVisibilityIsRecomputedAfterReactivation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	product := e.seedProduct(t, "seller@x.com", 5)

	require.NoError(t, e.products.SetStatus(ctx, product.ID, "seller@x.com", entity.ProductInactive, ""))
	catalog, err := e.products.Catalog(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, catalog)

	require.NoError(t, e.products.SetStatus(ctx, product.ID, "seller@x.com", entity.ProductActive, "back"))
	catalog, err = e.products.Catalog(ctx, "")
	require.NoError(t, err)
	assert.Len(t, catalog, 1)
}

func TestSetStatusRejectsForeignSeller(t *testing.T) {
	e := newEnv(t)
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "other@x.com", "seller")
	product := e.seedProduct(t, "seller@x.com", 5)

	err := e.products.SetStatus(context.Background(), product.ID, "other@x.com", entity.ProductInactive, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestStatusHistoryKeepsEveryTransition(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	product := e.seedProduct(t, "seller@x.com", 5)

	require.NoError(t, e.products.SetStatus(ctx, product.ID, "seller@x.com", entity.ProductInactive, "vacation"))
	require.NoError(t, e.products.SetStatus(ctx, product.ID, "seller@x.com", entity.ProductActive, "back"))

	history, err := e.products.StatusHistory(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.ProductInactive, history[0].State)
	assert.Equal(t, entity.ProductActive, history[1].State)
}

func TestDiscountedPriceComputedOnCreate(t *testing.T) {
	e := newEnv(t)
	e.seedAccount(t, "seller@x.com", "seller")

	product, err := e.products.CreateProduct(context.Background(), "seller@x.com", ProductInput{
		Name:            "Queso artesanal",
		Price:           1000,
		Stock:           3,
		Category:        "alimentos",
		DiscountPercent: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 800.0, product.DiscountedPrice)
}
