package usecase

import (
	"context"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
	"feriavirtual/pkg/logger"
)

type CartUseCase struct {
	cartRepo         repository.CartRepository
	productRepo      repository.ProductRepository
	accountRepo      repository.AccountRepository
	notificationRepo repository.NotificationRepository
	promotionUC      *PromotionUseCase
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	accountRepo repository.AccountRepository,
	notificationRepo repository.NotificationRepository,
	promotionUC *PromotionUseCase,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:         cartRepo,
		productRepo:      productRepo,
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
		promotionUC:      promotionUC,
	}
}

func (uc *CartUseCase) GetCart(ctx context.Context, buyerEmail string) ([]entity.CartItem, error) {
	return uc.cartRepo.Get(ctx, buyerEmail)
}

// AddToCart merges quantity for an already-carted product and notifies the
// seller on every call. Repeat adds produce repeat notifications carrying the
// updated quantity; there is no merging of unread notifications.
func (uc *CartUseCase) AddToCart(ctx context.Context, buyerEmail, productID string, quantity int) ([]entity.CartItem, error) {
	if quantity < 1 {
		return nil, errors.ValidationFailed("Quantity must be at least 1")
	}
	buyer, err := uc.accountRepo.GetByEmail(ctx, buyerEmail)
	if err != nil {
		return nil, errors.Unauthorized("Unknown buyer", err)
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	items, err := uc.cartRepo.Get(ctx, buyerEmail)
	if err != nil {
		return nil, err
	}
	total := quantity
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			total = items[i].Quantity
			found = true
			break
		}
	}
	if !found {
		price := product.Price
		if product.DiscountedPrice > 0 {
			price = product.DiscountedPrice
		}
		items = append(items, entity.CartItem{
			ProductID:   productID,
			Quantity:    quantity,
			PriceAtAdd:  price,
			SellerEmail: product.SellerEmail,
		})
	}
	if err := uc.cartRepo.Save(ctx, buyerEmail, items); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		RecipientEmail: product.SellerEmail,
		SenderEmail:    buyer.Email,
		SenderName:     buyer.Name,
		Kind:           entity.NotificationCartAdd,
		ProductID:      product.ID,
		ProductName:    product.Name,
		Quantity:       total,
	}
	if err := uc.notificationRepo.Add(ctx, notification); err != nil {
		// The cart write already committed; the seller just misses a ping.
		logger.Warn("Cart-add notification failed: %v", err)
	}
	return items, nil
}

func (uc *CartUseCase) RemoveFromCart(ctx context.Context, buyerEmail, productID string) ([]entity.CartItem, error) {
	items, err := uc.cartRepo.Get(ctx, buyerEmail)
	if err != nil {
		return nil, err
	}
	kept := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if err := uc.cartRepo.Save(ctx, buyerEmail, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

type CheckoutResult struct {
	Items           []entity.CartItem `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	DiscountPercent int               `json:"discount_percent,omitempty"`
	Total           float64           `json:"total"`
	CouponCode      string            `json:"coupon_code,omitempty"`
}

// Checkout validates the optional coupon, decrements stock, emits one
// purchase notification per item, clears the cart, and finally increments the
// coupon usage count. The usage increment is a separate write after the cart
// clear; a crash in between leaves the coupon under-counted.
func (uc *CartUseCase) Checkout(ctx context.Context, buyerEmail, couponCode string) (*CheckoutResult, error) {
	buyer, err := uc.accountRepo.GetByEmail(ctx, buyerEmail)
	if err != nil {
		return nil, errors.Unauthorized("Unknown buyer", err)
	}
	items, err := uc.cartRepo.Get(ctx, buyerEmail)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.ValidationFailed("Cart is empty")
	}

	var coupon *entity.Promotion
	if couponCode != "" {
		coupon, err = uc.promotionUC.ValidateCoupon(ctx, couponCode)
		if err != nil {
			return nil, err
		}
	}

	// All stock checks happen before any write.
	for _, item := range items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, errors.ValidationFailed("Insufficient stock for " + product.Name)
		}
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.PriceAtAdd * float64(item.Quantity)
	}
	total := subtotal
	discount := 0
	if coupon != nil {
		discount = coupon.DiscountPercent
		total = subtotal * float64(100-discount) / 100
	}

	for _, item := range items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		product.Stock -= item.Quantity
		if err := uc.productRepo.Update(ctx, product); err != nil {
			return nil, err
		}

		notification := &entity.Notification{
			RecipientEmail: product.SellerEmail,
			SenderEmail:    buyer.Email,
			SenderName:     buyer.Name,
			Kind:           entity.NotificationPurchase,
			ProductID:      product.ID,
			ProductName:    product.Name,
			Quantity:       item.Quantity,
			CreatedAt:      time.Now(),
		}
		if err := uc.notificationRepo.Add(ctx, notification); err != nil {
			logger.Warn("Purchase notification failed: %v", err)
		}
	}

	if err := uc.cartRepo.Clear(ctx, buyerEmail); err != nil {
		return nil, err
	}
	if coupon != nil {
		if err := uc.promotionUC.RedeemCoupon(ctx, coupon.ID); err != nil {
			logger.Warn("Coupon usage increment failed after checkout: %v", err)
		}
	}

	return &CheckoutResult{
		Items:           items,
		Subtotal:        subtotal,
		DiscountPercent: discount,
		Total:           total,
		CouponCode:      couponCode,
	}, nil
}
