package domain

import "time"

// ResetCodeTTL is the fixed window in which a reset code can be redeemed.
const ResetCodeTTL = 2 * time.Hour

// ResetCode is a single-use token authorizing exactly one password reset.
// It is consumed (deleted) on successful reset; expired codes are swept by
// housekeeping. Email is the join key back to the user.
type ResetCode struct {
	ID        string
	Email     string
	Code      string // single-use opaque token, mailed to the user
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code can no longer be redeemed at now.
func (c ResetCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
