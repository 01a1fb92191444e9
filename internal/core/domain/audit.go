package domain

import "time"

// Audit actions recorded by the async audit pipeline.
const (
	AuditRegistered  = "account.registered"
	AuditLogin       = "login.succeeded"
	AuditLoginFailed = "login.failed"
)

// AuditEvent records an authentication-relevant occurrence. AccountID is
// empty for failed logins against unknown emails.
type AuditEvent struct {
	AccountID string
	Email     string
	Action    string
	RemoteIP  string
	Timestamp time.Time
}
