package entity

import (
	"time"
)

const (
	ClaimOpen     = "open"
	ClaimResolved = "resolved"
)

// Claim is a buyer-filed complaint against a seller or one of their products.
type Claim struct {
	ID          string     `json:"id"`
	BuyerEmail  string     `json:"buyer_email"`
	SellerEmail string     `json:"seller_email"`
	ProductID   string     `json:"product_id,omitempty"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	Resolution  string     `json:"resolution,omitempty"`
}
