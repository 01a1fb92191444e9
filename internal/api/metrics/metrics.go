// Package metrics defines and registers all custom Prometheus metrics for
// the contacts API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry via promauto at package init;
// the router exposes them on /metrics together with the echoprometheus HTTP
// histograms.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contacts"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts registration and login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "failure", or "throttled"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts, by result.",
	},
	[]string{"action", "result"},
)

// TokenRejectionsTotal counts requests the auth gate refused. All reasons
// look identical to the caller (401); this metric keeps them apart.
// Label:
//   - reason: "missing_header", "malformed_header", "malformed", "signature",
//     "expired", "account_missing", "account_lookup_failed"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by the auth gate, by reason.",
	},
	[]string{"reason"},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactOperationsTotal counts completed contact operations.
// Label:
//   - operation: "list", "get", "create", "update", "delete", "delete_all"
var ContactOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_operations_total",
		Help:      "Total number of successful contact operations, by operation.",
	},
	[]string{"operation"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker
// channel of the dispatcher.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
