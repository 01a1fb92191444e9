package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mycontact/contacts-api/internal/api/middleware"
	"github.com/mycontact/contacts-api/internal/core/domain"
)

// CurrentIdentity extracts the identity the auth middleware attached to the
// request. An absent identity on a guarded route means the middleware did
// not run; fail closed rather than proceeding unscoped.
func CurrentIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey()).(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}

// OptionalIdentity returns the identity when present and a false flag when
// the request is anonymous. Never errors: for routes behind OptionalAuth.
func OptionalIdentity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(middleware.IdentityKey()).(domain.Identity)
	return identity, ok && identity.ID != ""
}
