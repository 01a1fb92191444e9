package domain

import (
	"strings"
	"time"
)

// Account models a registered credential owner. PasswordHash never leaves the
// service layer; outward-facing views are built explicitly from Identity or
// the handler response types.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the password-free view of an account that the auth middleware
// attaches to the request context.
type Identity struct {
	ID    string
	Email string
}

// NormalizeEmail applies the canonical form used for uniqueness and lookups:
// trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
