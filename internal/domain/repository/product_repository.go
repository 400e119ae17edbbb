package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/infrastructure/statuslog"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
}

// ProductStatusRepository is the append-only lifecycle log for products.
// Current state is the last appended entry, or active when the product was
// never logged.
type ProductStatusRepository interface {
	Append(ctx context.Context, productID string, entry statuslog.Entry) error
	Current(ctx context.Context, productID string) (string, error)
	History(ctx context.Context, productID string) ([]statuslog.Entry, error)
	// Snapshot returns last-entry state for every logged product.
	Snapshot(ctx context.Context) (map[string]string, error)
}
