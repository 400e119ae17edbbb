package entity

import (
	"time"
)

const (
	PromotionCoupon  = "coupon"
	PromotionRaffle  = "raffle"
	PromotionPresale = "presale"
)

// Derived promotion states, in precedence order: exhausted wins over expired,
// expired wins over active.
const (
	PromotionExhausted = "agotada"
	PromotionExpired   = "expirada"
	PromotionActive    = "activa"
)

// Promotion covers coupons, raffles and presales. Code is required only for
// coupons. UsageLimit zero means unlimited.
type Promotion struct {
	ID              string    `json:"id"`
	SellerEmail     string    `json:"seller_email"`
	Name            string    `json:"name"`
	Kind            string    `json:"kind"`
	Code            string    `json:"code,omitempty"`
	Description     string    `json:"description,omitempty"`
	DiscountPercent int       `json:"discount_percent"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	UsageLimit      int       `json:"usage_limit,omitempty"`
	UsageCount      int       `json:"usage_count"`
	Conditions      string    `json:"conditions,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// DerivedState folds usage and the date window into the display state.
func (p *Promotion) DerivedState(today time.Time) string {
	if p.UsageLimit > 0 && p.UsageCount >= p.UsageLimit {
		return PromotionExhausted
	}
	if p.EndDate.Before(today) {
		return PromotionExpired
	}
	return PromotionActive
}
