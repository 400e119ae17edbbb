package entity

import (
	"time"
)

const (
	SanctionWarning      = "warning"
	SanctionSuspension   = "temporary-suspension"
	SanctionPermanentBan = "permanent-ban"
)

const (
	SanctionActive    = "active"
	SanctionCompleted = "completed"
	SanctionReverted  = "reverted"
)

// Sanction is an administrative penalty on a seller. Temporary suspensions
// carry an end date and a duration; warnings never block the account.
type Sanction struct {
	ID                  string     `json:"id"`
	SellerEmail         string     `json:"seller_email"`
	SellerName          string     `json:"seller_name,omitempty"`
	Kind                string     `json:"kind"`
	Reason              string     `json:"reason"`
	DetailedDescription string     `json:"detailed_description,omitempty"`
	StartDate           time.Time  `json:"start_date"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	DurationDays        int        `json:"duration_days,omitempty"`
	State               string     `json:"state"`
	AdminEmail          string     `json:"admin_email"`
	CreatedAt           time.Time  `json:"created_at"`
	RevertedAt          *time.Time `json:"reverted_at,omitempty"`
	RevertReason        string     `json:"revert_reason,omitempty"`
}

// Blocking reports whether this sanction kind blocks the account.
func (s *Sanction) Blocking() bool {
	return s.Kind == SanctionSuspension || s.Kind == SanctionPermanentBan
}
