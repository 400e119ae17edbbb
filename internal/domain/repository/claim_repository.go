package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

type ClaimRepository interface {
	Create(ctx context.Context, claim *entity.Claim) error
	GetByID(ctx context.Context, id string) (*entity.Claim, error)
	List(ctx context.Context) ([]*entity.Claim, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Claim, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Claim, error)
	Update(ctx context.Context, claim *entity.Claim) error
}
