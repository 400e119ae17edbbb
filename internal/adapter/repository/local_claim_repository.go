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

const claimsKey = "claims"

type localClaimRepository struct {
	store *localstore.Store
}

func NewLocalClaimRepository(store *localstore.Store) repository.ClaimRepository {
	return &localClaimRepository{store: store}
}

func (r *localClaimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	if claim.ID == "" {
		claim.ID = uuid.NewString()
	}
	if claim.CreatedAt.IsZero() {
		claim.CreatedAt = time.Now()
	}
	return localstore.Mutate(r.store, claimsKey, func(claims []*entity.Claim) ([]*entity.Claim, error) {
		return append(claims, claim), nil
	})
}

func (r *localClaimRepository) GetByID(ctx context.Context, id string) (*entity.Claim, error) {
	claims, err := localstore.Read[[]*entity.Claim](r.store, claimsKey)
	if err != nil {
		return nil, err
	}
	for _, c := range claims {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.NotFound("Claim", nil)
}

func (r *localClaimRepository) List(ctx context.Context) ([]*entity.Claim, error) {
	return localstore.Read[[]*entity.Claim](r.store, claimsKey)
}

func (r *localClaimRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Claim, error) {
	claims, err := localstore.Read[[]*entity.Claim](r.store, claimsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Claim, 0, len(claims))
	for _, c := range claims {
		if strings.EqualFold(c.BuyerEmail, buyerEmail) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (r *localClaimRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Claim, error) {
	claims, err := localstore.Read[[]*entity.Claim](r.store, claimsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Claim, 0, len(claims))
	for _, c := range claims {
		if strings.EqualFold(c.SellerEmail, sellerEmail) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (r *localClaimRepository) Update(ctx context.Context, claim *entity.Claim) error {
	return localstore.Mutate(r.store, claimsKey, func(claims []*entity.Claim) ([]*entity.Claim, error) {
		for i, c := range claims {
			if c.ID == claim.ID {
				claims[i] = claim
				return claims, nil
			}
		}
		return nil, errors.NotFound("Claim", nil)
	})
}
