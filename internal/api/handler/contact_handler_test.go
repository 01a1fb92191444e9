package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mycontact/contacts-api/internal/api"
	"github.com/mycontact/contacts-api/internal/api/handler"
	"github.com/mycontact/contacts-api/internal/api/middleware"
	"github.com/mycontact/contacts-api/internal/core/domain"
	"github.com/mycontact/contacts-api/internal/core/ports"
)

type stubContactService struct {
	listFn      func(ctx context.Context, identity domain.Identity, input ports.ListContactsInput) (*ports.ListContactsResult, error)
	getFn       func(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error)
	createFn    func(ctx context.Context, identity domain.Identity, input ports.CreateContactInput) (*domain.Contact, error)
	updateFn    func(ctx context.Context, identity domain.Identity, id string, upd ports.ContactUpdate) (*domain.Contact, error)
	deleteFn    func(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error)
	deleteAllFn func(ctx context.Context, identity domain.Identity) (int64, error)
}

func (s *stubContactService) List(ctx context.Context, identity domain.Identity, input ports.ListContactsInput) (*ports.ListContactsResult, error) {
	return s.listFn(ctx, identity, input)
}

func (s *stubContactService) Get(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error) {
	return s.getFn(ctx, identity, id)
}

func (s *stubContactService) Create(ctx context.Context, identity domain.Identity, input ports.CreateContactInput) (*domain.Contact, error) {
	return s.createFn(ctx, identity, input)
}

func (s *stubContactService) Update(ctx context.Context, identity domain.Identity, id string, upd ports.ContactUpdate) (*domain.Contact, error) {
	return s.updateFn(ctx, identity, id, upd)
}

func (s *stubContactService) Delete(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error) {
	return s.deleteFn(ctx, identity, id)
}

func (s *stubContactService) DeleteAll(ctx context.Context, identity domain.Identity) (int64, error) {
	return s.deleteAllFn(ctx, identity)
}

var testIdentity = domain.Identity{ID: "owner-1", Email: "alice@example.com"}

// newContactEcho registers the contact routes the way the router does, with
// a middleware that attaches the given identity. A zero identity simulates
// an unauthenticated request reaching the handler.
func newContactEcho(svc ports.ContactService, identity domain.Identity) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	if identity.ID != "" {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set(middleware.IdentityKey(), identity)
				return next(c)
			}
		})
	}

	h := handler.NewContactHandler(svc)
	g := e.Group("/contacts")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.DELETE("", h.DeleteAll)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sampleContact(id string) *domain.Contact {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Contact{
		ID:        id,
		OwnerID:   "owner-1",
		FirstName: "Jean",
		LastName:  "Dupont",
		Phone:     "+33 1 23 45 67 89",
		Email:     "jean@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestContactHandler_List(t *testing.T) {
	e := newContactEcho(&stubContactService{
		listFn: func(ctx context.Context, identity domain.Identity, input ports.ListContactsInput) (*ports.ListContactsResult, error) {
			if identity.ID != "owner-1" {
				t.Fatalf("unexpected identity %q", identity.ID)
			}
			if input.Search != "jean" || input.Sort != "firstName" || input.Order != "desc" {
				t.Fatalf("query parameters not bound: %+v", input)
			}
			return &ports.ListContactsResult{
				Contacts: []*domain.Contact{sampleContact("c1"), sampleContact("c2")},
				Total:    5,
				Page:     1,
				Pages:    3,
				Limit:    2,
			}, nil
		},
	}, testIdentity)

	rec := doJSON(e, http.MethodGet, "/contacts?search=jean&sort=firstName&order=desc&page=1&limit=2", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	data := resp["data"].(map[string]any)
	contacts := data["contacts"].([]any)
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	first := contacts[0].(map[string]any)
	if first["fullName"] != "Jean Dupont" {
		t.Fatalf("unexpected fullName %v", first["fullName"])
	}
	pagination := data["pagination"].(map[string]any)
	if pagination["total"] != float64(5) || pagination["pages"] != float64(3) {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
}

func TestContactHandler_List_BadSort(t *testing.T) {
	e := newContactEcho(&stubContactService{
		listFn: func(ctx context.Context, identity domain.Identity, input ports.ListContactsInput) (*ports.ListContactsResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}, testIdentity)

	rec := doJSON(e, http.MethodGet, "/contacts?sort=password", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestContactHandler_Get_NotFound(t *testing.T) {
	e := newContactEcho(&stubContactService{
		getFn: func(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error) {
			return nil, domain.ErrContactNotFound
		},
	}, testIdentity)

	rec := doJSON(e, http.MethodGet, "/contacts/czzz", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["success"] != false || resp["message"] != "contact not found" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestContactHandler_Create(t *testing.T) {
	e := newContactEcho(&stubContactService{
		createFn: func(ctx context.Context, identity domain.Identity, input ports.CreateContactInput) (*domain.Contact, error) {
			if input.FirstName != "Jean" || input.Phone != "+33 1 23 45 67 89" {
				t.Fatalf("payload not bound: %+v", input)
			}
			return sampleContact("c1"), nil
		},
	}, testIdentity)

	rec := doJSON(e, http.MethodPost, "/contacts",
		`{"firstName":"Jean","lastName":"Dupont","phone":"+33 1 23 45 67 89","email":"jean@example.com"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	contact := resp["data"].(map[string]any)["contact"].(map[string]any)
	if contact["id"] != "c1" || contact["firstName"] != "Jean" {
		t.Fatalf("unexpected contact payload: %+v", contact)
	}
}

func TestContactHandler_Create_Validation(t *testing.T) {
	e := newContactEcho(&stubContactService{
		createFn: func(ctx context.Context, identity domain.Identity, input ports.CreateContactInput) (*domain.Contact, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}, testIdentity)

	// Single-letter name and a phone with too few characters.
	rec := doJSON(e, http.MethodPost, "/contacts",
		`{"firstName":"J","lastName":"Dupont","phone":"123"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	errs, ok := resp["errors"].([]any)
	if !ok || len(errs) != 2 {
		t.Fatalf("expected two field errors, got %+v", resp["errors"])
	}
}

func TestContactHandler_Update_Partial(t *testing.T) {
	e := newContactEcho(&stubContactService{
		updateFn: func(ctx context.Context, identity domain.Identity, id string, upd ports.ContactUpdate) (*domain.Contact, error) {
			if id != "c1" {
				t.Fatalf("unexpected id %q", id)
			}
			if upd.Phone == nil || *upd.Phone != "06 12 34 56 78" {
				t.Fatalf("expected phone update, got %+v", upd)
			}
			if upd.FirstName != nil || upd.LastName != nil || upd.Email != nil || upd.Address != nil {
				t.Fatalf("absent fields must stay nil: %+v", upd)
			}
			c := sampleContact("c1")
			c.Phone = *upd.Phone
			return c, nil
		},
	}, testIdentity)

	rec := doJSON(e, http.MethodPatch, "/contacts/c1", `{"phone":"06 12 34 56 78"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	contact := resp["data"].(map[string]any)["contact"].(map[string]any)
	if contact["phone"] != "06 12 34 56 78" {
		t.Fatalf("unexpected phone: %v", contact["phone"])
	}
}

func TestContactHandler_Delete(t *testing.T) {
	e := newContactEcho(&stubContactService{
		deleteFn: func(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error) {
			return sampleContact(id), nil
		},
	}, testIdentity)

	rec := doJSON(e, http.MethodDelete, "/contacts/c1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "contact deleted" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestContactHandler_DeleteAll(t *testing.T) {
	e := newContactEcho(&stubContactService{
		deleteAllFn: func(ctx context.Context, identity domain.Identity) (int64, error) {
			return 3, nil
		},
	}, testIdentity)

	rec := doJSON(e, http.MethodDelete, "/contacts", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "3 contact(s) deleted" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["data"].(map[string]any)["deletedCount"] != float64(3) {
		t.Fatalf("unexpected data: %+v", resp["data"])
	}
}

// Handlers fail closed when the auth middleware never attached an identity.
func TestContactHandler_NoIdentity(t *testing.T) {
	e := newContactEcho(&stubContactService{}, domain.Identity{})

	rec := doJSON(e, http.MethodGet, "/contacts", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
