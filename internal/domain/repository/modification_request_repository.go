package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

type ModificationRequestRepository interface {
	Create(ctx context.Context, request *entity.ModificationRequest) error
	GetByID(ctx context.Context, id string) (*entity.ModificationRequest, error)
	List(ctx context.Context) ([]*entity.ModificationRequest, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.ModificationRequest, error)
	Update(ctx context.Context, request *entity.ModificationRequest) error
}
