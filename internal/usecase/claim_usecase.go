package usecase

import (
	"context"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
)

type ClaimUseCase struct {
	claimRepo   repository.ClaimRepository
	accountRepo repository.AccountRepository
	productRepo repository.ProductRepository
}

func NewClaimUseCase(
	claimRepo repository.ClaimRepository,
	accountRepo repository.AccountRepository,
	productRepo repository.ProductRepository,
) *ClaimUseCase {
	return &ClaimUseCase{
		claimRepo:   claimRepo,
		accountRepo: accountRepo,
		productRepo: productRepo,
	}
}

type ClaimInput struct {
	SellerEmail string
	ProductID   string
	Subject     string
	Description string
}

func (uc *ClaimUseCase) Create(ctx context.Context, buyerEmail string, input ClaimInput) (*entity.Claim, error) {
	buyer, err := uc.accountRepo.GetByEmail(ctx, buyerEmail)
	if err != nil {
		return nil, errors.Unauthorized("Unknown buyer", err)
	}
	seller, err := uc.accountRepo.GetByEmail(ctx, input.SellerEmail)
	if err != nil {
		return nil, errors.BadRequest("Unknown seller", err)
	}
	if input.ProductID != "" {
		if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
			return nil, err
		}
	}

	claim := &entity.Claim{
		BuyerEmail:  buyer.Email,
		SellerEmail: seller.Email,
		ProductID:   input.ProductID,
		Subject:     input.Subject,
		Description: input.Description,
		State:       entity.ClaimOpen,
	}
	if err := uc.claimRepo.Create(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (uc *ClaimUseCase) ListMine(ctx context.Context, buyerEmail string) ([]*entity.Claim, error) {
	return uc.claimRepo.ListByBuyer(ctx, buyerEmail)
}

func (uc *ClaimUseCase) ListForSeller(ctx context.Context, sellerEmail string) ([]*entity.Claim, error) {
	return uc.claimRepo.ListBySeller(ctx, sellerEmail)
}

func (uc *ClaimUseCase) ListAll(ctx context.Context) ([]*entity.Claim, error) {
	return uc.claimRepo.List(ctx)
}

func (uc *ClaimUseCase) Resolve(ctx context.Context, id, resolution string) (*entity.Claim, error) {
	claim, err := uc.claimRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if claim.State != entity.ClaimOpen {
		return nil, errors.Conflict("Claim already resolved")
	}
	now := time.Now()
	claim.State = entity.ClaimResolved
	claim.ResolvedAt = &now
	claim.Resolution = resolution
	if err := uc.claimRepo.Update(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}
