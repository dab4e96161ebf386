package domain

import "time"

// User is an account addressable by email for authentication purposes.
// Accounts are never hard-deleted by the auth flows; deactivation only
// flips IsActive.
type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2 encoded
	Firstname    string
	Lastname     string
	Middlename   string
	PhotoURL     string
	IsActive     bool
	Roles        []string // ordered role tags, may be empty
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
