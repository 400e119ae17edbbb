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

const eliminationsKey = "seller-eliminations"

type localEliminationRepository struct {
	store *localstore.Store
}

func NewLocalEliminationRepository(store *localstore.Store) repository.EliminationRepository {
	return &localEliminationRepository{store: store}
}

func (r *localEliminationRepository) Create(ctx context.Context, record *entity.EliminationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.EliminatedAt.IsZero() {
		record.EliminatedAt = time.Now()
	}
	return localstore.Mutate(r.store, eliminationsKey, func(records []*entity.EliminationRecord) ([]*entity.EliminationRecord, error) {
		return append(records, record), nil
	})
}

func (r *localEliminationRepository) GetByID(ctx context.Context, id string) (*entity.EliminationRecord, error) {
	records, err := localstore.Read[[]*entity.EliminationRecord](r.store, eliminationsKey)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, errors.NotFound("Elimination record", nil)
}

func (r *localEliminationRepository) List(ctx context.Context) ([]*entity.EliminationRecord, error) {
	return localstore.Read[[]*entity.EliminationRecord](r.store, eliminationsKey)
}

func (r *localEliminationRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.EliminationRecord, error) {
	records, err := localstore.Read[[]*entity.EliminationRecord](r.store, eliminationsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.EliminationRecord, 0, len(records))
	for _, rec := range records {
		if strings.EqualFold(rec.SellerEmail, sellerEmail) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

func (r *localEliminationRepository) Update(ctx context.Context, record *entity.EliminationRecord) error {
	return localstore.Mutate(r.store, eliminationsKey, func(records []*entity.EliminationRecord) ([]*entity.EliminationRecord, error) {
		for i, rec := range records {
			if rec.ID == record.ID {
				records[i] = record
				return records, nil
			}
		}
		return nil, errors.NotFound("Elimination record", nil)
	})
}
