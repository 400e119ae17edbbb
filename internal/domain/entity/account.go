package entity

import (
	"time"
)

const (
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
	RoleAdmin  = "admin"
)

// Account is keyed by email. Accounts are never hard-deleted: elimination
// flips the Deleted flag so the record stays around for audit.
type Account struct {
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Password    string    `json:"password"` // stored as provided, demo parity only
	Role        string    `json:"role"`
	Blocked     bool      `json:"blocked"`
	BlockReason string    `json:"block_reason,omitempty"`
	Deleted     bool      `json:"deleted,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	return role == RoleSeller || role == RoleBuyer || role == RoleAdmin
}
