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

const promotionsKey = "promotions"

type localPromotionRepository struct {
	store *localstore.Store
}

func NewLocalPromotionRepository(store *localstore.Store) repository.PromotionRepository {
	return &localPromotionRepository{store: store}
}

func (r *localPromotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	if promotion.ID == "" {
		promotion.ID = uuid.NewString()
	}
	if promotion.CreatedAt.IsZero() {
		promotion.CreatedAt = time.Now()
	}
	return localstore.Mutate(r.store, promotionsKey, func(promotions []*entity.Promotion) ([]*entity.Promotion, error) {
		return append(promotions, promotion), nil
	})
}

func (r *localPromotionRepository) GetByID(ctx context.Context, id string) (*entity.Promotion, error) {
	promotions, err := localstore.Read[[]*entity.Promotion](r.store, promotionsKey)
	if err != nil {
		return nil, err
	}
	for _, p := range promotions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Promotion", nil)
}

func (r *localPromotionRepository) List(ctx context.Context) ([]*entity.Promotion, error) {
	return localstore.Read[[]*entity.Promotion](r.store, promotionsKey)
}

func (r *localPromotionRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Promotion, error) {
	promotions, err := localstore.Read[[]*entity.Promotion](r.store, promotionsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if strings.EqualFold(p.SellerEmail, sellerEmail) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *localPromotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	return localstore.Mutate(r.store, promotionsKey, func(promotions []*entity.Promotion) ([]*entity.Promotion, error) {
		for i, p := range promotions {
			if p.ID == promotion.ID {
				promotions[i] = promotion
				return promotions, nil
			}
		}
		return nil, errors.NotFound("Promotion", nil)
	})
}

func (r *localPromotionRepository) Delete(ctx context.Context, id string) error {
	return localstore.Mutate(r.store, promotionsKey, func(promotions []*entity.Promotion) ([]*entity.Promotion, error) {
		kept := promotions[:0]
		for _, p := range promotions {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept, nil
	})
}
