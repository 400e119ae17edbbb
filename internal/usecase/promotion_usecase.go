package usecase

import (
	"context"
	"strings"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
)

type PromotionUseCase struct {
	promotionRepo repository.PromotionRepository
	now           func() time.Time
}

func NewPromotionUseCase(promotionRepo repository.PromotionRepository) *PromotionUseCase {
	return &PromotionUseCase{
		promotionRepo: promotionRepo,
		now:           time.Now,
	}
}

type PromotionInput struct {
	Name            string
	Kind            string
	Code            string
	Description     string
	DiscountPercent int
	StartDate       time.Time
	EndDate         time.Time
	UsageLimit      int
	Conditions      string
}

func (uc *PromotionUseCase) validateInput(input PromotionInput) error {
	if input.Kind != entity.PromotionCoupon && input.Kind != entity.PromotionRaffle && input.Kind != entity.PromotionPresale {
		return errors.ValidationFailed("Kind must be coupon, raffle or presale")
	}
	if input.Kind == entity.PromotionCoupon && strings.TrimSpace(input.Code) == "" {
		return errors.ValidationFailed("Coupons require a code")
	}
	if input.DiscountPercent < 1 || input.DiscountPercent > 100 {
		return errors.ValidationFailed("Discount must be between 1 and 100")
	}
	if !input.EndDate.After(input.StartDate) {
		return errors.ValidationFailed("End date must be after start date")
	}
	if input.UsageLimit < 0 {
		return errors.ValidationFailed("Usage limit must not be negative")
	}
	return nil
}

func (uc *PromotionUseCase) Create(ctx context.Context, sellerEmail string, input PromotionInput) (*entity.Promotion, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}
	promotion := &entity.Promotion{
		SellerEmail:     sellerEmail,
		Name:            input.Name,
		Kind:            input.Kind,
		Code:            input.Code,
		Description:     input.Description,
		DiscountPercent: input.DiscountPercent,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		UsageLimit:      input.UsageLimit,
		Conditions:      input.Conditions,
	}
	if err := uc.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

func (uc *PromotionUseCase) Update(ctx context.Context, id, sellerEmail string, input PromotionInput) (*entity.Promotion, error) {
	promotion, err := uc.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(promotion.SellerEmail, sellerEmail) {
		return nil, errors.Forbidden("Promotion belongs to another seller", nil)
	}
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}
	promotion.Name = input.Name
	promotion.Kind = input.Kind
	promotion.Code = input.Code
	promotion.Description = input.Description
	promotion.DiscountPercent = input.DiscountPercent
	promotion.StartDate = input.StartDate
	promotion.EndDate = input.EndDate
	promotion.UsageLimit = input.UsageLimit
	promotion.Conditions = input.Conditions
	if err := uc.promotionRepo.Update(ctx, promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

func (uc *PromotionUseCase) Delete(ctx context.Context, id, sellerEmail string) error {
	promotion, err := uc.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !strings.EqualFold(promotion.SellerEmail, sellerEmail) {
		return errors.Forbidden("Promotion belongs to another seller", nil)
	}
	return uc.promotionRepo.Delete(ctx, id)
}

type PromotionView struct {
	*entity.Promotion
	State string `json:"state"`
}

func (uc *PromotionUseCase) ListMine(ctx context.Context, sellerEmail string) ([]*PromotionView, error) {
	promotions, err := uc.promotionRepo.ListBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, err
	}
	today := truncateToDay(uc.now())
	views := make([]*PromotionView, 0, len(promotions))
	for _, p := range promotions {
		views = append(views, &PromotionView{Promotion: p, State: p.DerivedState(today)})
	}
	return views, nil
}

// ValidateCoupon resolves a coupon by case-insensitive code and checks the
// date window and usage limit. It is a pure read: calling it twice without an
// intervening redemption returns the same result.
func (uc *PromotionUseCase) ValidateCoupon(ctx context.Context, code string) (*entity.Promotion, error) {
	promotions, err := uc.promotionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := uc.now()
	for _, p := range promotions {
		if p.Kind != entity.PromotionCoupon || !strings.EqualFold(p.Code, code) {
			continue
		}
		if p.UsageLimit > 0 && p.UsageCount >= p.UsageLimit {
			return nil, errors.ValidationFailed("Coupon is exhausted")
		}
		if !withinWindow(today, p.StartDate, p.EndDate) {
			return nil, errors.ValidationFailed("Coupon is not valid today")
		}
		return p, nil
	}
	return nil, errors.NotFound("Coupon", nil)
}

// RedeemCoupon bumps the usage count. Deliberately a separate write from the
// checkout that consumed the coupon.
func (uc *PromotionUseCase) RedeemCoupon(ctx context.Context, id string) error {
	promotion, err := uc.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	promotion.UsageCount++
	return uc.promotionRepo.Update(ctx, promotion)
}
