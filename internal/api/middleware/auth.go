package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mycontact/contacts-api/internal/api/metrics"
	"github.com/mycontact/contacts-api/internal/core/domain"
	"github.com/mycontact/contacts-api/internal/core/ports"
)

// identityKey is the context key the resolved identity is stored under.
// Handlers read it through handler.CurrentIdentity; the value itself is an
// immutable domain.Identity, never the full account.
const identityKey = "auth.identity"

// IdentityKey exposes the context key for the handler package and tests.
func IdentityKey() string { return identityKey }

// RequireAuth resolves the bearer token into an identity and fails closed
// with 401 on any missing, malformed, invalid, or expired token, and on
// tokens whose account no longer exists. Cryptographic validity alone is
// necessary but not sufficient.
func RequireAuth(tokens ports.TokenService, accounts ports.AuthRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, reason, err := resolve(c, tokens, accounts)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				log.Debug().Str("reason", reason).Str("path", c.Path()).Msg("request rejected by auth gate")
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// OptionalAuth runs the same pipeline but never blocks the request: on any
// failure it continues without an attached identity.
func OptionalAuth(tokens ports.TokenService, accounts ports.AuthRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, reason, err := resolve(c, tokens, accounts)
			if err != nil {
				log.Debug().Str("reason", reason).Msg("optional auth continued anonymously")
				return next(c)
			}
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// resolve walks the full gate: header extraction, token verification, and
// account resolution. The reason string feeds logs and metrics; callers
// collapse all failures into a single outcome.
func resolve(c echo.Context, tokens ports.TokenService, accounts ports.AuthRepository) (domain.Identity, string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return domain.Identity{}, "missing_header", domain.ErrInvalidToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return domain.Identity{}, "malformed_header", domain.ErrInvalidToken
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return domain.Identity{}, verifyReason(err), err
	}

	// The account may have been removed after the token was issued. A store
	// failure is not the same thing; keep the reasons apart so an outage
	// never reads as a wave of deleted accounts.
	account, err := accounts.FindByID(c.Request().Context(), claims.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Identity{}, "account_missing", err
		}
		return domain.Identity{}, "account_lookup_failed", err
	}

	return domain.Identity{ID: account.ID, Email: account.Email}, "", nil
}

func verifyReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignature):
		return "signature"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	default:
		return "invalid"
	}
}
