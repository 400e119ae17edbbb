package usecase

import (
	"context"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
	"feriavirtual/pkg/logger"
)

type SanctionUseCase struct {
	sanctionRepo repository.SanctionRepository
	accountRepo  repository.AccountRepository
	now          func() time.Time
}

func NewSanctionUseCase(
	sanctionRepo repository.SanctionRepository,
	accountRepo repository.AccountRepository,
) *SanctionUseCase {
	return &SanctionUseCase{
		sanctionRepo: sanctionRepo,
		accountRepo:  accountRepo,
		now:          time.Now,
	}
}

type SanctionInput struct {
	SellerEmail         string
	Kind                string
	Reason              string
	DetailedDescription string
	DurationDays        int
}

// Create applies a sanction. Warnings never block the account; suspensions
// and bans set the blocked flag with the sanction reason. A seller can have
// at most one active non-warning sanction at a time.
func (uc *SanctionUseCase) Create(ctx context.Context, adminEmail string, input SanctionInput) (*entity.Sanction, error) {
	if input.Kind != entity.SanctionWarning && input.Kind != entity.SanctionSuspension && input.Kind != entity.SanctionPermanentBan {
		return nil, errors.ValidationFailed("Unknown sanction kind")
	}
	if input.Kind == entity.SanctionSuspension && (input.DurationDays < 1 || input.DurationDays > 365) {
		return nil, errors.ValidationFailed("Suspension duration must be between 1 and 365 days")
	}

	seller, err := uc.accountRepo.GetByEmail(ctx, input.SellerEmail)
	if err != nil {
		return nil, err
	}
	if seller.Role != entity.RoleSeller {
		return nil, errors.ValidationFailed("Sanctions apply to sellers only")
	}

	// Refresh first so a suspension that ran out does not block a new one.
	if err := uc.refreshSeller(ctx, seller.Email); err != nil {
		return nil, err
	}
	if input.Kind != entity.SanctionWarning {
		existing, err := uc.sanctionRepo.ListBySeller(ctx, seller.Email)
		if err != nil {
			return nil, err
		}
		for _, s := range existing {
			if s.State == entity.SanctionActive && s.Kind != entity.SanctionWarning {
				return nil, errors.Conflict("Seller already has an active sanction; revert it first")
			}
		}
	}

	now := uc.now()
	sanction := &entity.Sanction{
		SellerEmail:         seller.Email,
		SellerName:          seller.Name,
		Kind:                input.Kind,
		Reason:              input.Reason,
		DetailedDescription: input.DetailedDescription,
		StartDate:           now,
		State:               entity.SanctionActive,
		AdminEmail:          adminEmail,
	}
	if input.Kind == entity.SanctionSuspension {
		end := now.AddDate(0, 0, input.DurationDays)
		sanction.EndDate = &end
		sanction.DurationDays = input.DurationDays
	}
	if err := uc.sanctionRepo.Create(ctx, sanction); err != nil {
		return nil, err
	}

	if sanction.Blocking() {
		seller.Blocked = true
		seller.BlockReason = input.Reason
		if err := uc.accountRepo.Update(ctx, seller); err != nil {
			// Sanction record already committed; the block flag write is a
			// separate store write with no rollback.
			logger.Warn("Account block after sanction failed: %v", err)
			return nil, err
		}
	}
	return sanction, nil
}

// refreshSeller auto-completes active suspensions whose end date passed.
// Completion is one-way and does not unblock the account; only an explicit
// revert does.
func (uc *SanctionUseCase) refreshSeller(ctx context.Context, sellerEmail string) error {
	sanctions, err := uc.sanctionRepo.ListBySeller(ctx, sellerEmail)
	if err != nil {
		return err
	}
	now := uc.now()
	for _, s := range sanctions {
		if s.State == entity.SanctionActive && s.EndDate != nil && now.After(*s.EndDate) {
			s.State = entity.SanctionCompleted
			if err := uc.sanctionRepo.Update(ctx, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func (uc *SanctionUseCase) List(ctx context.Context) ([]*entity.Sanction, error) {
	sanctions, err := uc.sanctionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	for _, s := range sanctions {
		if s.State == entity.SanctionActive && s.EndDate != nil && now.After(*s.EndDate) {
			s.State = entity.SanctionCompleted
			if err := uc.sanctionRepo.Update(ctx, s); err != nil {
				return nil, err
			}
		}
	}
	return sanctions, nil
}

func (uc *SanctionUseCase) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Sanction, error) {
	if err := uc.refreshSeller(ctx, sellerEmail); err != nil {
		return nil, err
	}
	return uc.sanctionRepo.ListBySeller(ctx, sellerEmail)
}

// Revert manually lifts an active sanction. Completed sanctions cannot be
// reverted.
func (uc *SanctionUseCase) Revert(ctx context.Context, id, reason string) (*entity.Sanction, error) {
	sanction, err := uc.sanctionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sanction.State == entity.SanctionActive && sanction.EndDate != nil && uc.now().After(*sanction.EndDate) {
		sanction.State = entity.SanctionCompleted
		if err := uc.sanctionRepo.Update(ctx, sanction); err != nil {
			return nil, err
		}
	}
	if sanction.State != entity.SanctionActive {
		return nil, errors.Conflict("Only active sanctions can be reverted")
	}

	now := uc.now()
	sanction.State = entity.SanctionReverted
	sanction.RevertedAt = &now
	sanction.RevertReason = reason
	if err := uc.sanctionRepo.Update(ctx, sanction); err != nil {
		return nil, err
	}

	if sanction.Blocking() {
		seller, err := uc.accountRepo.GetByEmail(ctx, sanction.SellerEmail)
		if err != nil {
			return nil, err
		}
		seller.Blocked = false
		seller.BlockReason = ""
		if err := uc.accountRepo.Update(ctx, seller); err != nil {
			return nil, err
		}
	}
	return sanction, nil
}
