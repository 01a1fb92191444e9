package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// ErrInvalidToken is the umbrella all token verification failures wrap.
// Callers treat them identically (401); logs and metrics keep the reason.
var ErrInvalidToken = errors.New("invalid token")

var (
	ErrTokenMalformed = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenSignature = fmt.Errorf("%w: bad signature", ErrInvalidToken)
	ErrTokenExpired   = fmt.Errorf("%w: expired", ErrInvalidToken)
)
