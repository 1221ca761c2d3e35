// Package metrics defines and registers all custom Prometheus metrics for the
// presensi API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "presensi"

// ── Admission metrics ─────────────────────────────────────────────────────────

// SubmissionsTotal counts check-in attempts.
// Label:
//   - result: "accepted", a rejection reason (e.g. "already_recorded",
//     "window_closed"), or "error" on an unexpected failure
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of presensi submissions, by result.",
	},
	[]string{"result"},
)

// AdmissionDuration measures how long a check-in takes through the admission gate.
// Label:
//   - result: same values as SubmissionsTotal
var AdmissionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "admission_duration_seconds",
		Help:      "Duration of a presensi submission through the admission gate.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// GuardQueueDepth tracks the admissions waiting in each serializer worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var GuardQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "guard_queue_depth",
		Help:      "Current number of admissions pending in each serializer worker channel.",
	},
	[]string{"worker_id"},
)

// ── Admin metrics ─────────────────────────────────────────────────────────────

// LoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ExportsTotal counts attendance report downloads.
// Label:
//   - format: "json" or "csv"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of attendance reports served, by format.",
	},
	[]string{"format"},
)
