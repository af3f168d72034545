// Package metrics defines the custom Prometheus metrics for the geoweather
// API. It is the single source of truth for metric names, labels, and help
// strings; everything registers with the default registry at init time via
// promauto.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "geoweather"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "rejected", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing", "expired", or "invalid"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware, by reason.",
	},
	[]string{"reason"},
)

// ── Upstream lookup metrics ───────────────────────────────────────────────────

// LookupsTotal counts proxied lookups against third-party providers.
// Labels:
//   - provider: "geocode" or "weather"
//   - outcome: "ok", "no_match", or "error"
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of proxied upstream lookups, by provider and outcome.",
	},
	[]string{"provider", "outcome"},
)

// LookupDuration measures end-to-end lookup latency including cache checks.
// Label:
//   - provider: "geocode" or "weather"
var LookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Duration of proxied upstream lookups, by provider.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"provider"},
)

// ObserveLookup records one lookup in both LookupsTotal and LookupDuration.
func ObserveLookup(provider, outcome string, start time.Time) {
	LookupsTotal.WithLabelValues(provider, outcome).Inc()
	LookupDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}
