package ports

import (
	"context"

	"github.com/mycontact/contacts-api/internal/core/domain"
)

// AuthRepository defines the interface for account persistence.
// Create must surface domain.ErrEmailTaken when the storage uniqueness
// constraint on email rejects the insert; the service-level existence check
// is only a fast path.
type AuthRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}
