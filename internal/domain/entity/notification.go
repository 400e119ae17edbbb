package entity

import (
	"time"
)

const (
	NotificationCartAdd  = "cart-add"
	NotificationPurchase = "purchase"
)

// Notification is appended on every buyer action; there is no de-duplication,
// so adding the same product twice produces two notifications.
type Notification struct {
	ID             string    `json:"id"`
	RecipientEmail string    `json:"recipient_email"`
	SenderEmail    string    `json:"sender_email"`
	SenderName     string    `json:"sender_name,omitempty"`
	Kind           string    `json:"kind"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int       `json:"quantity"`
	CreatedAt      time.Time `json:"created_at"`
	Read           bool      `json:"read"`
}
