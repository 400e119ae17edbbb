package entity

import (
	"time"
)

// Product lifecycle states, derived from the product status log. A product
// with no log entries is active.
const (
	ProductActive   = "active"
	ProductInactive = "inactive"
	ProductDeleted  = "deleted"
)

var ProductCategories = []string{
	"alimentos",
	"artesania",
	"ropa",
	"hogar",
	"tecnologia",
	"servicios",
}

// Product carries no lifecycle status field; current status lives in the
// status log keyed by product id.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Stock           int       `json:"stock"`
	Category        string    `json:"category"`
	SellerEmail     string    `json:"seller_email"`
	Description     string    `json:"description"`
	Image           string    `json:"image,omitempty"`
	DiscountPercent int       `json:"discount_percent,omitempty"`
	DiscountedPrice float64   `json:"discounted_price,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
