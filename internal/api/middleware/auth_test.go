package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/mycontact/contacts-api/internal/api/metrics"
	"github.com/mycontact/contacts-api/internal/core/domain"
	"github.com/mycontact/contacts-api/internal/core/service"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	return a, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

func newTestGate(t *testing.T, ttl time.Duration) (*service.TokenService, *stubAccountRepo) {
	t.Helper()
	tokens, err := service.NewTokenService("secret", ttl)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	repo := &stubAccountRepo{accounts: map[string]*domain.Account{
		"acct-1": {ID: "acct-1", Email: "alice@example.com"},
	}}
	return tokens, repo
}

func runGate(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool, domain.Identity) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var identity domain.Identity
	handler := mw(func(c echo.Context) error {
		called = true
		identity, _ = c.Get(IdentityKey()).(domain.Identity)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called, identity
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens, repo := newTestGate(t, time.Hour)
	token, err := tokens.Issue("acct-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, called, identity := runGate(t, RequireAuth(tokens, repo, zerolog.Nop()), "Bearer "+token)
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if identity.ID != "acct-1" || identity.Email != "alice@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestRequireAuth_FailsClosed(t *testing.T) {
	tokens, repo := newTestGate(t, time.Hour)

	valid, _ := tokens.Issue("acct-1")
	otherIssuer, _ := service.NewTokenService("other-secret", time.Hour)
	forged, _ := otherIssuer.Issue("acct-1")
	orphan, _ := tokens.Issue("acct-gone") // valid signature, account removed

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token " + valid},
		{"malformed token", "Bearer not-a-token"},
		{"bad signature", "Bearer " + forged},
		{"account removed", "Bearer " + orphan},
	}

	mw := RequireAuth(tokens, repo, zerolog.Nop())
	for _, tc := range cases {
		rec, called, _ := runGate(t, mw, tc.header)
		if called {
			t.Fatalf("%s: handler reached", tc.name)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rec.Code)
		}
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	tokens, repo := newTestGate(t, time.Nanosecond)
	token, _ := tokens.Issue("acct-1")
	time.Sleep(10 * time.Millisecond)

	rec, called, _ := runGate(t, RequireAuth(tokens, repo, zerolog.Nop()), "Bearer "+token)
	if called {
		t.Fatalf("handler reached with expired token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// unavailableAccountRepo simulates the account store being down.
type unavailableAccountRepo struct {
	*stubAccountRepo
}

func (r *unavailableAccountRepo) FindByID(context.Context, string) (*domain.Account, error) {
	return nil, errors.New("account store unavailable")
}

func TestRequireAuth_StoreErrorFailsClosed(t *testing.T) {
	tokens, repo := newTestGate(t, time.Hour)
	token, _ := tokens.Issue("acct-1")
	down := &unavailableAccountRepo{stubAccountRepo: repo}

	missingBefore := testutil.ToFloat64(metrics.TokenRejectionsTotal.WithLabelValues("account_missing"))
	lookupBefore := testutil.ToFloat64(metrics.TokenRejectionsTotal.WithLabelValues("account_lookup_failed"))

	rec, called, _ := runGate(t, RequireAuth(tokens, down, zerolog.Nop()), "Bearer "+token)
	if called {
		t.Fatalf("handler reached with store down")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// An outage rejects as a lookup failure, never as a removed account.
	if got := testutil.ToFloat64(metrics.TokenRejectionsTotal.WithLabelValues("account_lookup_failed")); got != lookupBefore+1 {
		t.Fatalf("expected account_lookup_failed to increment, got %v (was %v)", got, lookupBefore)
	}
	if got := testutil.ToFloat64(metrics.TokenRejectionsTotal.WithLabelValues("account_missing")); got != missingBefore {
		t.Fatalf("store outage counted as missing account")
	}
}

func TestOptionalAuth_ContinuesAnonymously(t *testing.T) {
	tokens, repo := newTestGate(t, time.Hour)
	mw := OptionalAuth(tokens, repo, zerolog.Nop())

	for _, header := range []string{"", "Bearer garbage", "Token abc"} {
		rec, called, identity := runGate(t, mw, header)
		if !called {
			t.Fatalf("header %q: next not called", header)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("header %q: expected 200, got %d", header, rec.Code)
		}
		if identity.ID != "" {
			t.Fatalf("header %q: unexpected identity %+v", header, identity)
		}
	}
}

func TestOptionalAuth_AttachesIdentityWhenValid(t *testing.T) {
	tokens, repo := newTestGate(t, time.Hour)
	token, _ := tokens.Issue("acct-1")

	_, called, identity := runGate(t, OptionalAuth(tokens, repo, zerolog.Nop()), "Bearer "+token)
	if !called {
		t.Fatalf("next not called")
	}
	if identity.ID != "acct-1" {
		t.Fatalf("expected identity attached, got %+v", identity)
	}
}
