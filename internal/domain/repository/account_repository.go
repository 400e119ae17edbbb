package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	// GetByEmail matches case-insensitively; emails are unique keys.
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	List(ctx context.Context) ([]*entity.Account, error)
	ListByRole(ctx context.Context, role string) ([]*entity.Account, error)
}
