// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Invocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lex_invocations_total",
			Help: "Total number of Lex code hook invocations",
		},
		[]string{"intent", "source"},
	)

	DialogActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lex_dialog_actions_total",
			Help: "Total number of dialog actions returned, by action type",
		},
		[]string{"type"},
	)

	InvocationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lex_invocation_errors_total",
			Help: "Total number of failed invocations by error code",
		},
		[]string{"error_code"},
	)

	SlotViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lex_slot_violations_total",
			Help: "Total number of slot values rejected during validation",
		},
		[]string{"slot"},
	)

	PetfinderLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petfinder_lookup_duration_seconds",
			Help:    "Duration of pet directory lookups in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
)
