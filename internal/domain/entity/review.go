package entity

import (
	"time"
)

// Review is a buyer rating for a product.
type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	BuyerEmail string    `json:"buyer_email"`
	BuyerName  string    `json:"buyer_name,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
