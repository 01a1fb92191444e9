package ports

import (
	"context"

	"github.com/mycontact/contacts-api/internal/core/domain"
)

// ListContactsFilter carries all query parameters for listing contacts.
// OwnerID is always set by the service layer; repositories must apply it to
// every query so cross-owner reads are impossible.
type ListContactsFilter struct {
	OwnerID   string
	Search    string // optional: case-insensitive substring on first/last name or phone
	SortField string // storage field name, pre-validated by the service
	Ascending bool
	Page      int // 1-based
	Limit     int // rows per page
}

// ContactUpdate carries a partial update: nil fields are left untouched.
type ContactUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Address   *string
}

// ContactRepository defines persistence operations for contacts. Every
// method that addresses a single record takes the owner id and must treat a
// record owned by someone else exactly like a missing one
// (domain.ErrContactNotFound).
type ContactRepository interface {
	Insert(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	FindByID(ctx context.Context, ownerID, id string) (*domain.Contact, error)
	// List returns a page of contacts matching filter and the total count.
	List(ctx context.Context, filter ListContactsFilter) ([]*domain.Contact, int64, error)
	Update(ctx context.Context, ownerID, id string, upd ContactUpdate) (*domain.Contact, error)
	Delete(ctx context.Context, ownerID, id string) (*domain.Contact, error)
	// DeleteAll removes every contact of the owner and returns the count.
	DeleteAll(ctx context.Context, ownerID string) (int64, error)
}
