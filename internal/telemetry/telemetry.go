// Package telemetry counts generated rules and how long they took, in
// Prometheus form. The CLI is short-lived, so metrics are written to a
// node-exporter textfile rather than served.
package telemetry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/san-kum/quadgen/internal/quad"
)

const namespace = "quadgen"

type Recorder struct {
	registry  *prometheus.Registry
	rules     *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	lastOrder *prometheus.GaugeVec
}

func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		rules: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rules_total",
			Help:      "Rules generated, by family and outcome.",
		}, []string{"family", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rule_duration_seconds",
			Help:      "Time spent generating one rule.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"family"}),
		lastOrder: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_order",
			Help:      "Order of the most recent successful rule.",
		}, []string{"family"}),
	}
}

// Status classifies err into the status label value.
func Status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, quad.ErrConfiguration):
		return "configuration"
	case errors.Is(err, quad.ErrNumerical):
		return "numerical"
	case errors.Is(err, quad.ErrSingularSystem):
		return "singular"
	default:
		return "error"
	}
}

// ObserveRule records one generation attempt.
func (r *Recorder) ObserveRule(family string, order int, elapsed time.Duration, err error) {
	r.rules.WithLabelValues(family, Status(err)).Inc()
	r.latency.WithLabelValues(family).Observe(elapsed.Seconds())
	if err == nil {
		r.lastOrder.WithLabelValues(family).Set(float64(order))
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteFile writes every metric in text exposition format. The file is
// replaced atomically.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
