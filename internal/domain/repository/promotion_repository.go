package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.Promotion) error
	GetByID(ctx context.Context, id string) (*entity.Promotion, error)
	List(ctx context.Context) ([]*entity.Promotion, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Promotion, error)
	Update(ctx context.Context, promotion *entity.Promotion) error
	Delete(ctx context.Context, id string) error
}
