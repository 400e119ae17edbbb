package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Review, error)
}
