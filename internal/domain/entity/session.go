package entity

// Session is the single persisted slot describing the authenticated actor.
// Login overwrites it unconditionally, logout clears it, and there is no
// expiry.
type Session struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}

// ResetToken is an opaque password-reset token with an absolute expiry.
type ResetToken struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at_epoch_ms"`
}
