package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mycontact/contacts-api/internal/api/metrics"
	"github.com/mycontact/contacts-api/internal/core/domain"
	"github.com/mycontact/contacts-api/internal/core/ports"
)

// AuditSink is the interface the handler uses to enqueue audit events.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}

type AuthHandler struct {
	authService ports.AuthService
	audit       AuditSink // nil disables auditing
}

func NewAuthHandler(authService ports.AuthService, audit AuditSink) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Register creates a new account and returns it with a fresh token.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration credentials"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	h.record(c, domain.AuditRegistered, result.Account)

	return respond(c, http.StatusCreated, "account created", authResponse{
		User:  toAccountResponse(result.Account),
		Token: result.Token,
	})
}

// Login authenticates an account and returns a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      429   {object}  envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.AuthAttemptsTotal.WithLabelValues("login", "throttled").Inc()
		default:
			metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		}
		if h.audit != nil && errors.Is(err, domain.ErrInvalidCredentials) {
			h.audit.Enqueue(domain.AuditEvent{
				Email:     domain.NormalizeEmail(req.Email),
				Action:    domain.AuditLoginFailed,
				RemoteIP:  c.RealIP(),
				Timestamp: time.Now().UTC(),
			})
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	h.record(c, domain.AuditLogin, result.Account)

	return respond(c, http.StatusOK, "login successful", authResponse{
		User:  toAccountResponse(result.Account),
		Token: result.Token,
	})
}

// Profile returns the authenticated caller's identity.
//
// @Summary      Get the authenticated profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, err := CurrentIdentity(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "profile retrieved", profileResponse{
		User: identityResponse{ID: identity.ID, Email: identity.Email},
	})
}

// Verify confirms the presented token resolves to a live account.
//
// @Summary      Verify the bearer token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	identity, err := CurrentIdentity(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "token valid", verifyResponse{
		UserID: identity.ID,
		User:   identityResponse{ID: identity.ID, Email: identity.Email},
	})
}

func (h *AuthHandler) record(c echo.Context, action string, account *domain.Account) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(domain.AuditEvent{
		AccountID: account.ID,
		Email:     account.Email,
		Action:    action,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.UTC(),
	}
}
