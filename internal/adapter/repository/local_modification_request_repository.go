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

const modificationRequestsKey = "modification-requests"

type localModificationRequestRepository struct {
	store *localstore.Store
}

func NewLocalModificationRequestRepository(store *localstore.Store) repository.ModificationRequestRepository {
	return &localModificationRequestRepository{store: store}
}

func (r *localModificationRequestRepository) Create(ctx context.Context, request *entity.ModificationRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	return localstore.Mutate(r.store, modificationRequestsKey, func(requests []*entity.ModificationRequest) ([]*entity.ModificationRequest, error) {
		return append(requests, request), nil
	})
}

func (r *localModificationRequestRepository) GetByID(ctx context.Context, id string) (*entity.ModificationRequest, error) {
	requests, err := localstore.Read[[]*entity.ModificationRequest](r.store, modificationRequestsKey)
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, errors.NotFound("Modification request", nil)
}

func (r *localModificationRequestRepository) List(ctx context.Context) ([]*entity.ModificationRequest, error) {
	return localstore.Read[[]*entity.ModificationRequest](r.store, modificationRequestsKey)
}

func (r *localModificationRequestRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.ModificationRequest, error) {
	requests, err := localstore.Read[[]*entity.ModificationRequest](r.store, modificationRequestsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.ModificationRequest, 0, len(requests))
	for _, req := range requests {
		if strings.EqualFold(req.SellerEmail, sellerEmail) {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

func (r *localModificationRequestRepository) Update(ctx context.Context, request *entity.ModificationRequest) error {
	return localstore.Mutate(r.store, modificationRequestsKey, func(requests []*entity.ModificationRequest) ([]*entity.ModificationRequest, error) {
		for i, req := range requests {
			if req.ID == request.ID {
				requests[i] = request
				return requests, nil
			}
		}
		return nil, errors.NotFound("Modification request", nil)
	})
}
