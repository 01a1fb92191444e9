package ports

import "time"

// TokenClaims is the verified payload of a bearer token.
type TokenClaims struct {
	SubjectID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless signed bearer tokens.
// Verify is pure: no store access, expiry enforced at verification time.
// Failures wrap domain.ErrInvalidToken with the specific reason
// (malformed, bad signature, expired) preserved for logs and metrics.
type TokenService interface {
	Issue(subjectID string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
