// Package metrics holds Prometheus instruments that are used across the
// engine.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ResolveDBHitTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "resolve_db_hit_total",
			Help: "Page requests resolved from the database tier.",
		})

	ResolveCatalogHitTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "resolve_catalog_hit_total",
			Help: "Page requests resolved from the static catalog tier.",
		})

	ResolveSuggestTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "resolve_suggest_total",
			Help: "Unresolved requests that produced fuzzy suggestions.",
		})

	ResolveNotFoundTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "resolve_not_found_total",
			Help: "Requests that exhausted every resolution tier.",
		})

	ResolveDBErrorTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "resolve_db_error_total",
			Help: "Database lookups that failed or timed out and were treated as misses.",
		})

	LeadSubmitTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_submit_total",
			Help: "Lead submissions accepted and stored.",
		})

	LeadRejectTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_reject_total",
			Help: "Lead submissions rejected by validation.",
		})

	LeadNotifyErrorTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_notify_error_total",
			Help: "Lead webhook notifications that failed after the lead was stored.",
		})
)

func init() {
	prometheus.MustRegister(
		ResolveDBHitTotal,
		ResolveCatalogHitTotal,
		ResolveSuggestTotal,
		ResolveNotFoundTotal,
		ResolveDBErrorTotal,
		LeadSubmitTotal,
		LeadRejectTotal,
		LeadNotifyErrorTotal,
	)
}
