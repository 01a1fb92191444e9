package ports

import (
	"context"

	"github.com/mycontact/contacts-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes audit events delivered by the dispatcher.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}
