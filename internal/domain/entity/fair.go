package entity

import (
	"time"
)

const (
	FairScheduled = "scheduled"
	FairActive    = "active"
	FairInactive  = "inactive"
	FairClosed    = "closed"
)

const (
	EnrollmentPending  = "pending"
	EnrollmentApproved = "approved"
	EnrollmentRejected = "rejected"
)

// Fair is a time-boxed promotional event. State is recomputed from the date
// window on every load; the stored value only matters for the manual
// inactive toggle and the sticky closed state.
type Fair struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Categories       []string  `json:"categories"`
	Rules            string    `json:"rules,omitempty"`
	Guidelines       string    `json:"guidelines,omitempty"`
	State            string    `json:"state"`
	OwnerAdminEmail  string    `json:"owner_admin_email"`
	CreatedAt        time.Time `json:"created_at"`
	Image            string    `json:"image,omitempty"`
	DiscountRangeMin int       `json:"discount_range_min,omitempty"`
	DiscountRangeMax int       `json:"discount_range_max,omitempty"`
}

// FairEnrollment links a seller to a fair. One enrollment per (fair, seller)
// pair; duplicates are rejected.
type FairEnrollment struct {
	FairID      string    `json:"fair_id"`
	SellerEmail string    `json:"seller_email"`
	EnrolledAt  time.Time `json:"enrolled_at"`
	State       string    `json:"state"`
	ProductIDs  []string  `json:"product_ids"`
}
