package repository

import (
	"context"
	"strings"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/localstore"
	"feriavirtual/pkg/errors"
)

const accountsKey = "accounts"

type localAccountRepository struct {
	store *localstore.Store
}

func NewLocalAccountRepository(store *localstore.Store) repository.AccountRepository {
	return &localAccountRepository{store: store}
}

func (r *localAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return localstore.Mutate(r.store, accountsKey, func(accounts []*entity.Account) ([]*entity.Account, error) {
		for _, a := range accounts {
			if strings.EqualFold(a.Email, account.Email) {
				return nil, errors.Conflict("Email already registered")
			}
		}
		now := time.Now()
		if account.CreatedAt.IsZero() {
			account.CreatedAt = now
		}
		account.UpdatedAt = now
		return append(accounts, account), nil
	})
}

func (r *localAccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	accounts, err := localstore.Read[[]*entity.Account](r.store, accountsKey)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, errors.NotFound("Account", nil)
}

func (r *localAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	return localstore.Mutate(r.store, accountsKey, func(accounts []*entity.Account) ([]*entity.Account, error) {
		for i, a := range accounts {
			if strings.EqualFold(a.Email, account.Email) {
				account.UpdatedAt = time.Now()
				accounts[i] = account
				return accounts, nil
			}
		}
		return nil, errors.NotFound("Account", nil)
	})
}

func (r *localAccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	return localstore.Read[[]*entity.Account](r.store, accountsKey)
}

func (r *localAccountRepository) ListByRole(ctx context.Context, role string) ([]*entity.Account, error) {
	accounts, err := localstore.Read[[]*entity.Account](r.store, accountsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Role == role {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
