package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/pkg/errors"
)

var sanctionDay = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func TestWarningDoesNotBlockAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "admin@x.com", "admin")
	e.seedAccount(t, "seller@x.com", "seller")

	_, err := e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
		SellerEmail: "seller@x.com",
		Kind:        entity.SanctionWarning,
		Reason:      "late shipping",
	})
	require.NoError(t, err)

	seller, err := e.accountRepo.GetByEmail(ctx, "seller@x.com")
	require.NoError(t, err)
	assert.False(t, seller.Blocked)
}

func TestSuspensionBlocksAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "admin@x.com", "admin")
	e.seedAccount(t, "seller@x.com", "seller")
	e.sanctions.now = fixedNow(sanctionDay)

	sanction, err := e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
		SellerEmail:  "seller@x.com",
		Kind:         entity.SanctionSuspension,
		Reason:       "misleading listings",
		DurationDays: 7,
	})
	require.NoError(t, err)
	require.NotNil(t, sanction.EndDate)
	assert.Equal(t, sanctionDay.AddDate(0, 0, 7), *sanction.EndDate)

	seller, err := e.accountRepo.GetByEmail(ctx, "seller@x.com")
	require.NoError(t, err)
	assert.True(t, seller.Blocked)
	assert.Equal(t, "misleading listings", seller.BlockReason)
}

func TestSuspensionDurationBounds(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "admin@x.com", "admin")
	e.seedAccount(t, "seller@x.com", "seller")

	for _, days := range []int{0, 366} {
		_, err := e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
			SellerEmail:  "seller@x.com",
			Kind:         entity.SanctionSuspension,
			Reason:       "x",
			DurationDays: days,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, "VALIDATION_FAILED"))
	}
}

func TestSecondActiveSanctionIsConflict(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "admin@x.com", "admin")
	e.seedAccount(t, "seller@x.com", "seller")
	e.sanctions.now = fixedNow(sanctionDay)

	_, err := e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
		SellerEmail:  "seller@x.com",
		Kind:         entity.SanctionSuspension,
		Reason:       "first",
		DurationDays: 30,
	})
	require.NoError(t, err)

	_, err = e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
		SellerEmail: "seller@x.com",
		Kind:        entity.SanctionPermanentBan,
		Reason:      "second",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))

	// Warnings stack freely alongside an active sanction.
	_, err = e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
		SellerEmail: "seller@x.com",
		Kind:        entity.SanctionWarning,
		Reason:      "also this",
	})
	assert.NoError(t, err)
}

func TestCompletionDoesNotUnblock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "admin@x.com", "admin")
	e.seedAccount(t, "seller@x.com", "seller")
	e.sanctions.now = fixedNow(sanctionDay)

	created, err := e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
		SellerEmail:  "seller@x.com",
		Kind:         entity.SanctionSuspension,
		Reason:       "misleading listings",
		DurationDays: 7,
	})
	require.NoError(t, err)

	// Past the end date the sanction auto-completes on the next read.
	e.sanctions.now = fixedNow(sanctionDay.AddDate(0, 0, 8))
	sanctions, err := e.sanctions.ListBySeller(ctx, "seller@x.com")
	require.NoError(t, err)
	require.Len(t, sanctions, 1)
	assert.Equal(t, entity.SanctionCompleted, sanctions[0].State)

	// The block flag stays until an explicit revert.
	seller, err := e.accountRepo.GetByEmail(ctx, "seller@x.com")
	require.NoError(t, err)
	assert.True(t, seller.Blocked)

	// And a completed sanction can no longer be reverted.
	_, err = e.sanctions.Revert(ctx, created.ID, "too late")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRevertUnblocksAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "admin@x.com", "admin")
	e.seedAccount(t, "seller@x.com", "seller")
	e.sanctions.now = fixedNow(sanctionDay)

	created, err := e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
		SellerEmail: "seller@x.com",
		Kind:        entity.SanctionPermanentBan,
		Reason:      "fraud suspicion",
	})
	require.NoError(t, err)

	reverted, err := e.sanctions.Revert(ctx, created.ID, "cleared after review")
	require.NoError(t, err)
	assert.Equal(t, entity.SanctionReverted, reverted.State)
	assert.Equal(t, "cleared after review", reverted.RevertReason)

	seller, err := e.accountRepo.GetByEmail(ctx, "seller@x.com")
	require.NoError(t, err)
	assert.False(t, seller.Blocked)
	assert.Empty(t, seller.BlockReason)
}

func TestExpiredSuspensionDoesNotBlockNewSanction(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "admin@x.com", "admin")
	e.seedAccount(t, "seller@x.com", "seller")
	e.sanctions.now = fixedNow(sanctionDay)

	_, err := e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
		SellerEmail:  "seller@x.com",
		Kind:         entity.SanctionSuspension,
		Reason:       "first",
		DurationDays: 7,
	})
	require.NoError(t, err)

	e.sanctions.now = fixedNow(sanctionDay.AddDate(0, 0, 10))
	_, err = e.sanctions.Create(ctx, "admin@x.com", SanctionInput{
		SellerEmail:  "seller@x.com",
		Kind:         entity.SanctionSuspension,
		Reason:       "second",
		DurationDays: 7,
	})
	assert.NoError(t, err)
}

func TestSanctionsApplyToSellersOnly(t *testing.T) {
	e := newEnv(t)
	e.seedAccount(t, "admin@x.com", "admin")
	e.seedAccount(t, "buyer@x.com", "buyer")

	_, err := e.sanctions.Create(context.Background(), "admin@x.com", SanctionInput{
		SellerEmail: "buyer@x.com",
		Kind:        entity.SanctionWarning,
		Reason:      "x",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_FAILED"))
}
