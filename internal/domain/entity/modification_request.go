package entity

import (
	"time"
)

const (
	ModificationPending  = "pending"
	ModificationApproved = "approved"
	ModificationRejected = "rejected"
)

// ModificationRequest is a seller-requested product change that an admin
// approves or rejects. Changes holds the proposed field values.
type ModificationRequest struct {
	ID          string                 `json:"id"`
	SellerEmail string                 `json:"seller_email"`
	ProductID   string                 `json:"product_id"`
	Description string                 `json:"description,omitempty"`
	Changes     map[string]interface{} `json:"changes"`
	State       string                 `json:"state"`
	CreatedAt   time.Time              `json:"created_at"`
	ResolvedAt  *time.Time             `json:"resolved_at,omitempty"`
	AdminEmail  string                 `json:"admin_email,omitempty"`
}
