// Package metrics defines the custom Prometheus metrics of the CompeteConnect
// API. Every metric is registered on the default registry at package init
// through promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "competeconnect"

// ── Search metrics ────────────────────────────────────────────────────────────

// SearchesTotal counts finished searches.
// Label:
//   - outcome: "populated", "empty", "failed" or "stale"
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of competition searches, by outcome.",
	},
	[]string{"outcome"},
)

// SearchesIssuedTotal counts searches accepted by the API before they run.
var SearchesIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_issued_total",
		Help:      "Total number of competition searches issued.",
	},
)

// SearchDuration measures a search from dequeue to the view update.
// Label:
//   - outcome: same values as SearchesTotal
var SearchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of a competition search including the generation call.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 45},
	},
	[]string{"outcome"},
)

// SearchQueueDepth tracks the searches waiting in each dispatcher worker.
// Label:
//   - worker_id: numeric worker index
var SearchQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "search_queue_depth",
		Help:      "Current number of searches pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Workspace metrics ─────────────────────────────────────────────────────────

// SignInsTotal counts successful sign-ins.
// Labels:
//   - mode: "login" or "register"
//   - role: "candidate" or "organizer"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-ins, by form mode and role.",
	},
	[]string{"mode", "role"},
)

// ActiveWorkspaces is the number of workspaces held in memory.
var ActiveWorkspaces = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_workspaces",
		Help:      "Number of client workspaces currently held in memory.",
	},
)

// WorkspacesEvictedTotal counts workspaces dropped by the idle sweeper.
var WorkspacesEvictedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workspaces_evicted_total",
		Help:      "Total number of idle workspaces evicted from memory.",
	},
)
