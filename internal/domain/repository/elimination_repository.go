package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

type EliminationRepository interface {
	Create(ctx context.Context, record *entity.EliminationRecord) error
	GetByID(ctx context.Context, id string) (*entity.EliminationRecord, error)
	List(ctx context.Context) ([]*entity.EliminationRecord, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.EliminationRecord, error)
	Update(ctx context.Context, record *entity.EliminationRecord) error
}
