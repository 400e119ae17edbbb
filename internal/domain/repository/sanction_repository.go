package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

type SanctionRepository interface {
	Create(ctx context.Context, sanction *entity.Sanction) error
	GetByID(ctx context.Context, id string) (*entity.Sanction, error)
	List(ctx context.Context) ([]*entity.Sanction, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Sanction, error)
	Update(ctx context.Context, sanction *entity.Sanction) error
}
