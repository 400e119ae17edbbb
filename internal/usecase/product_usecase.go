package usecase

import (
	"context"
	"strings"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/statuslog"
	"feriavirtual/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	statusRepo  repository.ProductStatusRepository
	accountRepo repository.AccountRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	statusRepo repository.ProductStatusRepository,
	accountRepo repository.AccountRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		statusRepo:  statusRepo,
		accountRepo: accountRepo,
	}
}

type ProductInput struct {
	Name            string
	Price           float64
	Stock           int
	Category        string
	Description     string
	Image           string
	DiscountPercent int
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerEmail string, input ProductInput) (*entity.Product, error) {
	seller, err := uc.accountRepo.GetByEmail(ctx, sellerEmail)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}
	if seller.Role != entity.RoleSeller {
		return nil, errors.Forbidden("Only sellers can publish products", nil)
	}
	if !entity.ValidCategory(input.Category) {
		return nil, errors.ValidationFailed("Unknown product category")
	}
	if input.Price < 0 {
		return nil, errors.ValidationFailed("Price must not be negative")
	}
	if input.Stock < 0 {
		return nil, errors.ValidationFailed("Stock must not be negative")
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, errors.ValidationFailed("Discount must be between 0 and 100")
	}

	product := &entity.Product{
		Name:            input.Name,
		Price:           input.Price,
		Stock:           input.Stock,
		Category:        input.Category,
		SellerEmail:     seller.Email,
		Description:     input.Description,
		Image:           input.Image,
		DiscountPercent: input.DiscountPercent,
	}
	if input.DiscountPercent > 0 {
		product.DiscountedPrice = input.Price * float64(100-input.DiscountPercent) / 100
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	// No status entry on create: an empty history means active.
	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, sellerEmail string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(product.SellerEmail, sellerEmail) {
		return nil, errors.Forbidden("Product belongs to another seller", nil)
	}
	if !entity.ValidCategory(input.Category) {
		return nil, errors.ValidationFailed("Unknown product category")
	}
	if input.Price < 0 || input.Stock < 0 {
		return nil, errors.ValidationFailed("Price and stock must not be negative")
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, errors.ValidationFailed("Discount must be between 0 and 100")
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Stock = input.Stock
	product.Category = input.Category
	product.Description = input.Description
	product.Image = input.Image
	product.DiscountPercent = input.DiscountPercent
	product.DiscountedPrice = 0
	if input.DiscountPercent > 0 {
		product.DiscountedPrice = input.Price * float64(100-input.DiscountPercent) / 100
	}
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// SetStatus appends a lifecycle entry for the product. History is append-only;
// nothing is ever rewritten.
func (uc *ProductUseCase) SetStatus(ctx context.Context, id, actorEmail, state, reason string) error {
	if state != entity.ProductActive && state != entity.ProductInactive && state != entity.ProductDeleted {
		return errors.ValidationFailed("Unknown product state")
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	actor, err := uc.accountRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return errors.Unauthorized("Unknown actor", err)
	}
	if actor.Role != entity.RoleAdmin && !strings.EqualFold(product.SellerEmail, actorEmail) {
		return errors.Forbidden("Product belongs to another seller", nil)
	}

	return uc.statusRepo.Append(ctx, id, statuslog.Entry{
		State:  state,
		Reason: reason,
		At:     time.Now(),
		Actor:  actor.Email,
	})
}

type ProductView struct {
	*entity.Product
	Status string `json:"status"`
}

// ListMine returns the seller's products with their derived status.
func (uc *ProductUseCase) ListMine(ctx context.Context, sellerEmail string) ([]*ProductView, error) {
	products, err := uc.productRepo.ListBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, err
	}
	statuses, err := uc.statusRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		status, ok := statuses[p.ID]
		if !ok {
			status = entity.ProductActive
		}
		views = append(views, &ProductView{Product: p, Status: status})
	}
	return views, nil
}

// Catalog builds the buyer-facing view. A product is visible iff its derived
// status is active and the owning seller's account is not deleted. The filter
// is recomputed on every call; nothing is cached across mutations.
func (uc *ProductUseCase) Catalog(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	statuses, err := uc.statusRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	deletedSellers := make(map[string]bool)
	for _, a := range accounts {
		if a.Deleted {
			deletedSellers[strings.ToLower(a.Email)] = true
		}
	}

	visible := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		status, ok := statuses[p.ID]
		if ok && status != entity.ProductActive {
			continue
		}
		if deletedSellers[strings.ToLower(p.SellerEmail)] {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*ProductView, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	status, err := uc.statusRepo.Current(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductView{Product: product, Status: status}, nil
}

func (uc *ProductUseCase) StatusHistory(ctx context.Context, id string) ([]statuslog.Entry, error) {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return uc.statusRepo.History(ctx, id)
}
