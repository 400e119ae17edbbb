package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/localstore"
)

const reviewsKey = "reviews"

type localReviewRepository struct {
	store *localstore.Store
}

func NewLocalReviewRepository(store *localstore.Store) repository.ReviewRepository {
	return &localReviewRepository{store: store}
}

func (r *localReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	return localstore.Mutate(r.store, reviewsKey, func(reviews []*entity.Review) ([]*entity.Review, error) {
		return append(reviews, review), nil
	})
}

func (r *localReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	reviews, err := localstore.Read[[]*entity.Review](r.store, reviewsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Review, 0, len(reviews))
	for _, rev := range reviews {
		if rev.ProductID == productID {
			filtered = append(filtered, rev)
		}
	}
	return filtered, nil
}

func (r *localReviewRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Review, error) {
	reviews, err := localstore.Read[[]*entity.Review](r.store, reviewsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Review, 0, len(reviews))
	for _, rev := range reviews {
		if strings.EqualFold(rev.BuyerEmail, buyerEmail) {
			filtered = append(filtered, rev)
		}
	}
	return filtered, nil
}
