package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/localstore"
	"feriavirtual/internal/infrastructure/statuslog"
	"feriavirtual/pkg/errors"
)

const (
	productsKey      = "products"
	productStatusKey = "product-status-log"
)

type localProductRepository struct {
	store *localstore.Store
}

func NewLocalProductRepository(store *localstore.Store) repository.ProductRepository {
	return &localProductRepository{store: store}
}

func (r *localProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	return localstore.Mutate(r.store, productsKey, func(products []*entity.Product) ([]*entity.Product, error) {
		for _, p := range products {
			if p.ID == product.ID {
				return nil, errors.Conflict("Product id already exists")
			}
		}
		return append(products, product), nil
	})
}

func (r *localProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := localstore.Read[[]*entity.Product](r.store, productsKey)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *localProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	return localstore.Read[[]*entity.Product](r.store, productsKey)
}

func (r *localProductRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	products, err := localstore.Read[[]*entity.Product](r.store, productsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.SellerEmail, sellerEmail) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *localProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return localstore.Mutate(r.store, productsKey, func(products []*entity.Product) ([]*entity.Product, error) {
		for i, p := range products {
			if p.ID == product.ID {
				product.UpdatedAt = time.Now()
				products[i] = product
				return products, nil
			}
		}
		return nil, errors.NotFound("Product", nil)
	})
}

type localProductStatusRepository struct {
	log *statuslog.Log
}

func NewLocalProductStatusRepository(store *localstore.Store) repository.ProductStatusRepository {
	return &localProductStatusRepository{log: statuslog.New(store, productStatusKey)}
}

func (r *localProductStatusRepository) Append(ctx context.Context, productID string, entry statuslog.Entry) error {
	return r.log.Append(productID, entry)
}

func (r *localProductStatusRepository) Current(ctx context.Context, productID string) (string, error) {
	return r.log.Current(productID, entity.ProductActive)
}

func (r *localProductStatusRepository) History(ctx context.Context, productID string) ([]statuslog.Entry, error) {
	return r.log.History(productID)
}

func (r *localProductStatusRepository) Snapshot(ctx context.Context) (map[string]string, error) {
	return r.log.Snapshot()
}
