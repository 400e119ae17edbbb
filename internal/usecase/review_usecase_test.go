package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriavirtual/pkg/errors"
)

func TestReviewRatingBounds(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 5)

	for _, rating := range []int{0, 6} {
		_, err := e.reviews.Create(ctx, "buyer@x.com", CreateReviewInput{
			ProductID: product.ID,
			Rating:    rating,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, "VALIDATION_FAILED"))
	}
}

func TestReviewCreateAndList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.seedAccount(t, "seller@x.com", "seller")
	e.seedAccount(t, "buyer@x.com", "buyer")
	product := e.seedProduct(t, "seller@x.com", 5)

	review, err := e.reviews.Create(ctx, "buyer@x.com", CreateReviewInput{
		ProductID: product.ID,
		Rating:    4,
		Comment:   "Muy rica",
	})
	require.NoError(t, err)
	assert.Equal(t, "buyer@x.com", review.BuyerEmail)

	reviews, err := e.reviews.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}
