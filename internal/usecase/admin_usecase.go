package usecase

import (
	"context"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
)

// AdminUseCase covers direct admin account actions. Sanctions and
// eliminations have their own usecases; this one is for manual flag flips.
type AdminUseCase struct {
	accountRepo repository.AccountRepository
}

func NewAdminUseCase(accountRepo repository.AccountRepository) *AdminUseCase {
	return &AdminUseCase{accountRepo: accountRepo}
}

func (uc *AdminUseCase) ListAccounts(ctx context.Context, role string) ([]*entity.Account, error) {
	if role == "" {
		return uc.accountRepo.List(ctx)
	}
	return uc.accountRepo.ListByRole(ctx, role)
}

func (uc *AdminUseCase) BlockAccount(ctx context.Context, email, reason string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account.Blocked {
		return nil, errors.Conflict("Account is already blocked")
	}
	account.Blocked = true
	account.BlockReason = reason
	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (uc *AdminUseCase) UnblockAccount(ctx context.Context, email string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	account.Blocked = false
	account.BlockReason = ""
	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}
