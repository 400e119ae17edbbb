package usecase

import (
	"context"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	accountRepo repository.AccountRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	accountRepo repository.AccountRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		accountRepo: accountRepo,
	}
}

type CreateReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

func (uc *ReviewUseCase) Create(ctx context.Context, buyerEmail string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.ValidationFailed("Rating must be between 1 and 5")
	}
	buyer, err := uc.accountRepo.GetByEmail(ctx, buyerEmail)
	if err != nil {
		return nil, errors.Unauthorized("Unknown buyer", err)
	}
	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ProductID:  input.ProductID,
		BuyerEmail: buyer.Email,
		BuyerName:  buyer.Name,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByProduct(ctx, productID)
}

func (uc *ReviewUseCase) ListMine(ctx context.Context, buyerEmail string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByBuyer(ctx, buyerEmail)
}
