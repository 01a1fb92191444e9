package ports

import (
	"context"

	"github.com/mycontact/contacts-api/internal/core/domain"
)

// CreateContactInput carries the fields for a new contact. The owner is
// never part of the input; the service forces it from the caller's identity.
type CreateContactInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
}

// ListContactsInput carries the caller-supplied list parameters before
// defaulting and allow-list checks.
type ListContactsInput struct {
	Search string
	Sort   string // firstName | lastName | createdAt
	Order  string // asc | desc
	Page   int
	Limit  int
}

// ListContactsResult is a page of contacts plus pagination metadata.
type ListContactsResult struct {
	Contacts []*domain.Contact
	Total    int64
	Page     int
	Pages    int
	Limit    int
}

// ContactService is the ownership-scoped access guard: every operation
// requires a resolved identity and is filtered by it.
type ContactService interface {
	List(ctx context.Context, identity domain.Identity, input ListContactsInput) (*ListContactsResult, error)
	Get(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error)
	Create(ctx context.Context, identity domain.Identity, input CreateContactInput) (*domain.Contact, error)
	Update(ctx context.Context, identity domain.Identity, id string, upd ContactUpdate) (*domain.Contact, error)
	Delete(ctx context.Context, identity domain.Identity, id string) (*domain.Contact, error)
	DeleteAll(ctx context.Context, identity domain.Identity) (int64, error)
}
