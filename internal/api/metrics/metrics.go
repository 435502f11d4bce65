// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Identity metrics ──────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "client" or "freelancer"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Job / proposal metrics ────────────────────────────────────────────────────

// JobsCreatedTotal counts jobs posted by clients.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs created.",
	},
)

// ProposalsSubmittedTotal counts proposals submitted by freelancers.
var ProposalsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proposals_submitted_total",
		Help:      "Total number of proposals submitted.",
	},
)

// ProposalDecisionsTotal counts terminal proposal decisions.
// Label:
//   - decision: "accepted", "rejected", or "conflict" (lost the acceptance race)
var ProposalDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proposal_decisions_total",
		Help:      "Total number of proposal decisions, by outcome.",
	},
	[]string{"decision"},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivityEventsTotal counts activity events recorded to the audit trail.
// Label:
//   - type: activity event type (e.g. "job_created")
var ActivityEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_events_total",
		Help:      "Total number of activity events successfully recorded.",
	},
	[]string{"type"},
)

// ActivityErrorsTotal counts activity events that failed to persist.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity events that failed to persist.",
	},
)
