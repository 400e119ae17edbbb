package usecase

import (
	"context"
	"strings"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
)

type ModificationRequestUseCase struct {
	requestRepo repository.ModificationRequestRepository
	productRepo repository.ProductRepository
}

func NewModificationRequestUseCase(
	requestRepo repository.ModificationRequestRepository,
	productRepo repository.ProductRepository,
) *ModificationRequestUseCase {
	return &ModificationRequestUseCase{
		requestRepo: requestRepo,
		productRepo: productRepo,
	}
}

func (uc *ModificationRequestUseCase) Create(ctx context.Context, sellerEmail, productID, description string, changes map[string]interface{}) (*entity.ModificationRequest, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(product.SellerEmail, sellerEmail) {
		return nil, errors.Forbidden("Product belongs to another seller", nil)
	}
	if len(changes) == 0 {
		return nil, errors.ValidationFailed("At least one change is required")
	}

	request := &entity.ModificationRequest{
		SellerEmail: product.SellerEmail,
		ProductID:   productID,
		Description: description,
		Changes:     changes,
		State:       entity.ModificationPending,
	}
	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *ModificationRequestUseCase) ListMine(ctx context.Context, sellerEmail string) ([]*entity.ModificationRequest, error) {
	return uc.requestRepo.ListBySeller(ctx, sellerEmail)
}

func (uc *ModificationRequestUseCase) ListAll(ctx context.Context) ([]*entity.ModificationRequest, error) {
	return uc.requestRepo.List(ctx)
}

// Resolve approves or rejects a pending request. Approval applies the
// requested field changes to the product in one update.
func (uc *ModificationRequestUseCase) Resolve(ctx context.Context, id, adminEmail string, approve bool) (*entity.ModificationRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.State != entity.ModificationPending {
		return nil, errors.Conflict("Request already resolved")
	}

	if approve {
		product, err := uc.productRepo.GetByID(ctx, request.ProductID)
		if err != nil {
			return nil, err
		}
		applyProductChanges(product, request.Changes)
		if err := uc.productRepo.Update(ctx, product); err != nil {
			return nil, err
		}
		request.State = entity.ModificationApproved
	} else {
		request.State = entity.ModificationRejected
	}

	now := time.Now()
	request.ResolvedAt = &now
	request.AdminEmail = adminEmail
	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// applyProductChanges copies the whitelisted fields from the change set onto
// the product. Numbers arrive as float64 from JSON.
func applyProductChanges(product *entity.Product, changes map[string]interface{}) {
	if v, ok := changes["name"].(string); ok {
		product.Name = v
	}
	if v, ok := changes["description"].(string); ok {
		product.Description = v
	}
	if v, ok := changes["image"].(string); ok {
		product.Image = v
	}
	if v, ok := changes["category"].(string); ok && entity.ValidCategory(v) {
		product.Category = v
	}
	if v, ok := changes["price"].(float64); ok && v >= 0 {
		product.Price = v
	}
	if v, ok := changes["stock"].(float64); ok && v >= 0 {
		product.Stock = int(v)
	}
}
