package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg                *prometheus.Registry
	PricedLines        prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	SchemaRejected     prometheus.Counter
	UnitPrice          prometheus.Histogram

	// relay
	OutboxPublished prometheus.Counter
	OutboxFailed    prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	priced := prometheus.NewCounter(prometheus.CounterOpts{Name: "customization_priced_lines_total"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "customization_validation_failures_total"}, []string{"kind"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "customization_schema_rejected_total"})
	unitPrice := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "customization_unit_price",
		Buckets: prometheus.ExponentialBuckets(25000, 2, 8),
	})
	published := prometheus.NewCounter(prometheus.CounterOpts{Name: "customization_outbox_published_total"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{Name: "customization_outbox_failed_total"})

	r.MustRegister(priced, failures, rejected, unitPrice, published, failed)
	return &Registry{
		reg:                r,
		PricedLines:        priced,
		ValidationFailures: failures,
		SchemaRejected:     rejected,
		UnitPrice:          unitPrice,
		OutboxPublished:    published,
		OutboxFailed:       failed,
	}
}

// ObservePricedLine records one successfully priced line.
func (r *Registry) ObservePricedLine(unitPrice int64) {
	r.PricedLines.Inc()
	r.UnitPrice.Observe(float64(unitPrice))
}

// ObserveValidationFailure counts one rejected selection per violation kind.
func (r *Registry) ObserveValidationFailure(kinds ...string) {
	for _, k := range kinds {
		r.ValidationFailures.WithLabelValues(k).Inc()
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
