package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mycontact/contacts-api/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository appends authentication audit events. Writes happen off the
// request path (via the queue dispatcher), so a slow audit insert never
// delays a login.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	AccountID string    `bson:"account_id,omitempty"`
	Email     string    `bson:"email"`
	Action    string    `bson:"action"`
	RemoteIP  string    `bson:"remote_ip,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, mongoAuditEvent{
		AccountID: event.AccountID,
		Email:     event.Email,
		Action:    event.Action,
		RemoteIP:  event.RemoteIP,
		Timestamp: event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
