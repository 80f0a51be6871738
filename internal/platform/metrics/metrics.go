package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RegistrationsApproved  prometheus.Counter
	RegistrationsRejected  prometheus.Counter
	AssessmentsUnavailable prometheus.Counter
	SignInFailures         prometheus.Counter
	BasketMerges           prometheus.Counter
	BasketMergeFailures    prometheus.Counter
	RequestLatency         *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on the given registerer. Tests pass a fresh
// prometheus.NewRegistry so packages can build metrics independently.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsApproved: factory.NewCounter(prometheus.CounterOpts{
			Name: "gatekeep_registrations_approved_total",
			Help: "Registrations that passed risk assessment and created an account",
		}),
		RegistrationsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "gatekeep_registrations_rejected_total",
			Help: "Registrations denied by the risk decision policy",
		}),
		AssessmentsUnavailable: factory.NewCounter(prometheus.CounterOpts{
			Name: "gatekeep_assessments_unavailable_total",
			Help: "Registration attempts aborted because the risk client failed",
		}),
		SignInFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "gatekeep_signin_failures_total",
			Help: "Sign-in attempts rejected with invalid credentials",
		}),
		BasketMerges: factory.NewCounter(prometheus.CounterOpts{
			Name: "gatekeep_basket_merges_total",
			Help: "Anonymous baskets merged into named baskets",
		}),
		BasketMergeFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "gatekeep_basket_merge_failures_total",
			Help: "Basket reconciliation calls that failed and will retry on next sign-in",
		}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gatekeep_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
