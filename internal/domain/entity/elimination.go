package entity

import (
	"time"
)

const (
	EliminationEliminated  = "eliminated"
	EliminationReactivated = "reactivated"
)

var EliminationReasons = []string{
	"fraudulent-activity",
	"repeated-violations",
	"counterfeit-products",
	"abusive-conduct",
	"legal-requirement",
}

// EliminationRecord documents a permanent seller removal. The detailed
// description must be at least 50 characters; the record is kept even after
// reactivation.
type EliminationRecord struct {
	ID                  string     `json:"id"`
	SellerEmail         string     `json:"seller_email"`
	SellerName          string     `json:"seller_name,omitempty"`
	SelectedReason      string     `json:"selected_reason"`
	DetailedDescription string     `json:"detailed_description"`
	Evidence            string     `json:"evidence,omitempty"`
	ComplaintLinks      []string   `json:"complaint_links,omitempty"`
	EliminatedAt        time.Time  `json:"eliminated_at"`
	AdminEmail          string     `json:"admin_email"`
	AdminName           string     `json:"admin_name,omitempty"`
	State               string     `json:"state"`
	ReactivatedAt       *time.Time `json:"reactivated_at,omitempty"`
	ReactivationReason  string     `json:"reactivation_reason,omitempty"`
}

func ValidEliminationReason(reason string) bool {
	for _, r := range EliminationReasons {
		if r == reason {
			return true
		}
	}
	return false
}
