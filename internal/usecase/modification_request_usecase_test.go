package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/pkg/errors"
)

func TestModificationRequestApprovalAppliesChanges(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	product := e.seedProduct(t, "seller@x.com", 5)

	request, err := e.modRequests.Create(ctx, "seller@x.com", product.ID, "price adjustment", map[string]interface{}{
		"price": 3000.0,
		"name":  "Mermelada premium",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ModificationPending, request.State)

	resolved, err := e.modRequests.Resolve(ctx, request.ID, "admin@x.com", true)
	require.NoError(t, err)
	assert.Equal(t, entity.ModificationApproved, resolved.State)

	got, err := e.productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, got.Price)
	assert.Equal(t, "Mermelada premium", got.Name)
}

func TestModificationRequestRejectionLeavesProductAlone(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	product := e.seedProduct(t, "seller@x.com", 5)

	request, err := e.modRequests.Create(ctx, "seller@x.com", product.ID, "", map[string]interface{}{
		"price": 9999.0,
	})
	require.NoError(t, err)

	resolved, err := e.modRequests.Resolve(ctx, request.ID, "admin@x.com", false)
	require.NoError(t, err)
	assert.Equal(t, entity.ModificationRejected, resolved.State)

	got, err := e.productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, got.Price)

	// Already resolved requests cannot be resolved twice.
	_, err = e.modRequests.Resolve(ctx, request.ID, "admin@x.com", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestModificationRequestIgnoresUnknownFields(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	product := e.seedProduct(t, "seller@x.com", 5)

	request, err := e.modRequests.Create(ctx, "seller@x.com", product.ID, "", map[string]interface{}{
		"seller_email": "hijack@x.com",
		"stock":        7.0,
	})
	require.NoError(t, err)

	_, err = e.modRequests.Resolve(ctx, request.ID, "admin@x.com", true)
	require.NoError(t, err)

	got, err := e.productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "seller@x.com", got.SellerEmail)
	assert.Equal(t, 7, got.Stock)
}

func TestModificationRequestOwnerCheck(t *testing.T) {
	e := newEnv(t)
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "other@x.com", "seller")
	product := e.seedProduct(t, "seller@x.com", 5)

	_, err := e.modRequests.Create(context.Background(), "other@x.com", product.ID, "", map[string]interface{}{
		"price": 1.0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
