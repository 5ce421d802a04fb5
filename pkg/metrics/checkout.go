package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Checkout groups the counters emitted by the order composition workflow and
// the catalog fallback path. Constructed once at startup and injected, so
// tests can use their own registry.
type Checkout struct {
	StepTotal       *prometheus.CounterVec
	StepFailures    *prometheus.CounterVec
	ItemFailures    prometheus.Counter
	CatalogFallback prometheus.Counter
}

// NewCheckout registers the workflow metrics on the provided registerer.
func NewCheckout(reg prometheus.Registerer) *Checkout {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Checkout{
		StepTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_step_total",
			Help: "Order workflow steps attempted, by step name.",
		}, []string{"step"}),
		StepFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_step_failures_total",
			Help: "Order workflow step failures, by step name.",
		}, []string{"step"}),
		ItemFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "checkout_line_item_failures_total",
			Help: "Line items that failed to attach to a remote cart.",
		}),
		CatalogFallback: factory.NewCounter(prometheus.CounterOpts{
			Name: "catalog_static_fallback_total",
			Help: "Catalog queries served from the static dataset after a store failure.",
		}),
	}
}

// ObserveStep records one attempt of a workflow step.
func (c *Checkout) ObserveStep(step string) {
	if c == nil {
		return
	}
	c.StepTotal.WithLabelValues(step).Inc()
}

// ObserveStepFailure records one failed workflow step.
func (c *Checkout) ObserveStepFailure(step string) {
	if c == nil {
		return
	}
	c.StepFailures.WithLabelValues(step).Inc()
}
