package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootHandler serves GET / — an unauthenticated info endpoint whose payload
// varies with the caller's (optional) authentication state.
type RootHandler struct {
	version string
}

func NewRootHandler(version string) *RootHandler {
	return &RootHandler{version: version}
}

type rootData struct {
	Version       string            `json:"version"`
	Authenticated bool              `json:"authenticated"`
	Email         string            `json:"email,omitempty"`
	Endpoints     map[string]string `json:"endpoints"`
}

func (h *RootHandler) Info(c echo.Context) error {
	data := rootData{
		Version: h.version,
		Endpoints: map[string]string{
			"auth":     "/auth",
			"contacts": "/contacts",
			"docs":     "/api-docs",
			"health":   "/health",
		},
	}
	if identity, ok := OptionalIdentity(c); ok {
		data.Authenticated = true
		data.Email = identity.Email
	}
	return respond(c, http.StatusOK, "Contact App API is running", data)
}
