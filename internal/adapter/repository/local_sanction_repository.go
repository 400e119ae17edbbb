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

const sanctionsKey = "sanctions"

type localSanctionRepository struct {
	store *localstore.Store
}

func NewLocalSanctionRepository(store *localstore.Store) repository.SanctionRepository {
	return &localSanctionRepository{store: store}
}

func (r *localSanctionRepository) Create(ctx context.Context, sanction *entity.Sanction) error {
	if sanction.ID == "" {
		sanction.ID = uuid.NewString()
	}
	if sanction.CreatedAt.IsZero() {
		sanction.CreatedAt = time.Now()
	}
	return localstore.Mutate(r.store, sanctionsKey, func(sanctions []*entity.Sanction) ([]*entity.Sanction, error) {
		return append(sanctions, sanction), nil
	})
}

func (r *localSanctionRepository) GetByID(ctx context.Context, id string) (*entity.Sanction, error) {
	sanctions, err := localstore.Read[[]*entity.Sanction](r.store, sanctionsKey)
	if err != nil {
		return nil, err
	}
	for _, s := range sanctions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.NotFound("Sanction", nil)
}

func (r *localSanctionRepository) List(ctx context.Context) ([]*entity.Sanction, error) {
	return localstore.Read[[]*entity.Sanction](r.store, sanctionsKey)
}

func (r *localSanctionRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Sanction, error) {
	sanctions, err := localstore.Read[[]*entity.Sanction](r.store, sanctionsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Sanction, 0, len(sanctions))
	for _, s := range sanctions {
		if strings.EqualFold(s.SellerEmail, sellerEmail) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (r *localSanctionRepository) Update(ctx context.Context, sanction *entity.Sanction) error {
	return localstore.Mutate(r.store, sanctionsKey, func(sanctions []*entity.Sanction) ([]*entity.Sanction, error) {
		for i, s := range sanctions {
			if s.ID == sanction.ID {
				sanctions[i] = sanction
				return sanctions, nil
			}
		}
		return nil, errors.NotFound("Sanction", nil)
	})
}
