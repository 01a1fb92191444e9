package ports

import (
	"context"

	"github.com/mycontact/contacts-api/internal/core/domain"
)

// AuthResult is returned by Register and Login: the account plus a freshly
// issued bearer token.
type AuthResult struct {
	Account *domain.Account
	Token   string
}

type AuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// PasswordHasher produces and checks salted one-way digests. The salt and
// cost are embedded in the digest, so digests hashed at an older cost keep
// verifying after the configured cost changes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// LoginThrottle bounds failed login attempts per normalized email.
type LoginThrottle interface {
	// TooMany reports whether the email has exceeded the failure budget.
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
