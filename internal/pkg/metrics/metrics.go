// Package metrics defines and registers all custom Prometheus metrics for the
// WMS console API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register with the default Prometheus registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wms"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", "throttled", "interrupted" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "incomplete", "interrupted" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts logouts.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// ActiveSessions tracks the number of open client instances.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Current number of open client instances.",
	},
)

// ── View metrics ──────────────────────────────────────────────────────────────

// ViewRendersTotal counts view renders.
// Labels:
//   - view: the requested view id
//   - outcome: "rendered" or "denied"
var ViewRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "view_renders_total",
		Help:      "Total number of view renders, by view and outcome.",
	},
	[]string{"view", "outcome"},
)

// ── Summary metrics ───────────────────────────────────────────────────────────

// SummaryAttemptsTotal counts individual calls to the summary endpoint.
// Label:
//   - outcome: "success", "rate_limited" or "failed"
var SummaryAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_attempts_total",
		Help:      "Total number of summary endpoint calls, by outcome.",
	},
	[]string{"outcome"},
)

// SummaryResultsTotal counts resolved summaries.
// Label:
//   - source: "mock", "remote", "placeholder" or "fallback"
var SummaryResultsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_results_total",
		Help:      "Total number of resolved dashboard summaries, by source.",
	},
	[]string{"source"},
)

// SummaryFetchDuration measures a whole fetch including backoff waits.
// Label:
//   - source: the resolved summary source
var SummaryFetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "summary_fetch_duration_seconds",
		Help:      "Duration of a dashboard summary fetch, retries and backoff included.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"source"},
)

// SummaryQueueDepth tracks the number of summary jobs waiting for a worker.
var SummaryQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "summary_queue_depth",
		Help:      "Current number of summary jobs waiting in the dispatcher queue.",
	},
)

// SummaryJobsInFlight tracks the number of summary jobs currently running.
var SummaryJobsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "summary_jobs_in_flight",
		Help:      "Current number of summary jobs being run by dispatcher workers.",
	},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP method
//   - route: the registered route pattern, not the raw path
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures handler latency.
// Labels:
//   - method: HTTP method
//   - route: the registered route pattern
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
