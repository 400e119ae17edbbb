package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

// CartRepository keys carts by buyer email.
type CartRepository interface {
	Get(ctx context.Context, buyerEmail string) ([]entity.CartItem, error)
	Save(ctx context.Context, buyerEmail string, items []entity.CartItem) error
	Clear(ctx context.Context, buyerEmail string) error
}
