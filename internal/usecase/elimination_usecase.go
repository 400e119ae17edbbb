package usecase

import (
	"context"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/statuslog"
	"feriavirtual/pkg/errors"
	"feriavirtual/pkg/logger"
)

type EliminationUseCase struct {
	eliminationRepo repository.EliminationRepository
	accountRepo     repository.AccountRepository
	productRepo     repository.ProductRepository
	statusRepo      repository.ProductStatusRepository
}

func NewEliminationUseCase(
	eliminationRepo repository.EliminationRepository,
	accountRepo repository.AccountRepository,
	productRepo repository.ProductRepository,
	statusRepo repository.ProductStatusRepository,
) *EliminationUseCase {
	return &EliminationUseCase{
		eliminationRepo: eliminationRepo,
		accountRepo:     accountRepo,
		productRepo:     productRepo,
		statusRepo:      statusRepo,
	}
}

type EliminationInput struct {
	SellerEmail         string
	SelectedReason      string
	DetailedDescription string
	Evidence            string
	ComplaintLinks      []string
}

// Eliminate removes a seller from the marketplace. The record, the account
// flags and the per-product status entries are three sequential store writes
// with no shared transaction: if a later write fails the earlier ones stay
// committed. Validation therefore all happens up front.
func (uc *EliminationUseCase) Eliminate(ctx context.Context, adminEmail string, input EliminationInput) (*entity.EliminationRecord, error) {
	if len(input.DetailedDescription) < 50 {
		return nil, errors.ValidationFailed("Detailed description must be at least 50 characters")
	}
	if !entity.ValidEliminationReason(input.SelectedReason) {
		return nil, errors.ValidationFailed("Unknown elimination reason")
	}

	seller, err := uc.accountRepo.GetByEmail(ctx, input.SellerEmail)
	if err != nil {
		return nil, err
	}
	if seller.Role != entity.RoleSeller {
		return nil, errors.ValidationFailed("Elimination applies to sellers only")
	}
	if seller.Deleted {
		return nil, errors.Conflict("Seller is already eliminated")
	}

	admin, err := uc.accountRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		return nil, errors.Unauthorized("Unknown admin", err)
	}

	record := &entity.EliminationRecord{
		SellerEmail:         seller.Email,
		SellerName:          seller.Name,
		SelectedReason:      input.SelectedReason,
		DetailedDescription: input.DetailedDescription,
		Evidence:            input.Evidence,
		ComplaintLinks:      input.ComplaintLinks,
		AdminEmail:          admin.Email,
		AdminName:           admin.Name,
		State:               entity.EliminationEliminated,
	}
	if err := uc.eliminationRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	seller.Deleted = true
	seller.Blocked = true
	seller.BlockReason = "Seller eliminated: " + input.SelectedReason
	if err := uc.accountRepo.Update(ctx, seller); err != nil {
		logger.Warn("Account flags write failed after elimination record %s: %v", record.ID, err)
		return nil, err
	}

	products, err := uc.productRepo.ListBySeller(ctx, seller.Email)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		entry := statuslog.Entry{
			State:  entity.ProductDeleted,
			Reason: "Seller eliminated",
			At:     time.Now(),
			Actor:  admin.Email,
		}
		if err := uc.statusRepo.Append(ctx, p.ID, entry); err != nil {
			logger.Warn("Product status write failed during elimination of %s: %v", seller.Email, err)
			return nil, err
		}
	}
	return record, nil
}

// Reactivate undoes an elimination. The elimination record is kept and
// flipped to reactivated; product status logs keep their deleted entries
// until the seller re-activates products individually.
func (uc *EliminationUseCase) Reactivate(ctx context.Context, id, reason string) (*entity.EliminationRecord, error) {
	record, err := uc.eliminationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.State != entity.EliminationEliminated {
		return nil, errors.Conflict("Record is not in eliminated state")
	}

	now := time.Now()
	record.State = entity.EliminationReactivated
	record.ReactivatedAt = &now
	record.ReactivationReason = reason
	if err := uc.eliminationRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	seller, err := uc.accountRepo.GetByEmail(ctx, record.SellerEmail)
	if err != nil {
		return nil, err
	}
	seller.Deleted = false
	seller.Blocked = false
	seller.BlockReason = ""
	if err := uc.accountRepo.Update(ctx, seller); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *EliminationUseCase) List(ctx context.Context) ([]*entity.EliminationRecord, error) {
	return uc.eliminationRepo.List(ctx)
}
