package repository

import (
	"context"
	"strings"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/localstore"
)

const cartsKey = "carts"

// Carts are stored as one blob keyed by buyer email.
type localCartRepository struct {
	store *localstore.Store
}

func NewLocalCartRepository(store *localstore.Store) repository.CartRepository {
	return &localCartRepository{store: store}
}

func (r *localCartRepository) Get(ctx context.Context, buyerEmail string) ([]entity.CartItem, error) {
	carts, err := localstore.Read[map[string][]entity.CartItem](r.store, cartsKey)
	if err != nil {
		return nil, err
	}
	return carts[strings.ToLower(buyerEmail)], nil
}

func (r *localCartRepository) Save(ctx context.Context, buyerEmail string, items []entity.CartItem) error {
	return localstore.Mutate(r.store, cartsKey, func(carts map[string][]entity.CartItem) (map[string][]entity.CartItem, error) {
		if carts == nil {
			carts = make(map[string][]entity.CartItem)
		}
		carts[strings.ToLower(buyerEmail)] = items
		return carts, nil
	})
}

func (r *localCartRepository) Clear(ctx context.Context, buyerEmail string) error {
	return localstore.Mutate(r.store, cartsKey, func(carts map[string][]entity.CartItem) (map[string][]entity.CartItem, error) {
		if carts == nil {
			return carts, nil
		}
		delete(carts, strings.ToLower(buyerEmail))
		return carts, nil
	})
}
