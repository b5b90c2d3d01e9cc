// Package prommetrics implements postalsvc.Metrics on Prometheus. Register it
// with your metrics handler to expose per-country validation outcomes.
package prommetrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PromMetrics struct {
	results  *prometheus.CounterVec
	duration prometheus.Histogram
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return fmt.Errorf("register collector: %w", err)
	}
	return nil
}

// New creates a PromMetrics instance and registers its collectors with the
// provided registry.
//
// Metrics registered:
//   - {namespace}_{subsystem}_resolve_total{country_code, result} - counter of
//     resolutions by country and outcome
//   - {namespace}_{subsystem}_resolve_duration_seconds - histogram of
//     resolution duration
//
// Returns an error if reg is nil or registration fails (except
// AlreadyRegisteredError).
func New(reg prometheus.Registerer, namespace, subsystem string) (*PromMetrics, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	pm := &PromMetrics{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "resolve_total", Help: "Postcode resolutions by country and result",
		}, []string{"country_code", "result"}),

		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "resolve_duration_seconds",
			Help:    "Duration of one postcode resolution",
			Buckets: []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3},
		}),
	}

	for _, c := range []prometheus.Collector{pm.results, pm.duration} {
		if err := registerCollector(reg, c); err != nil {
			return nil, err
		}
	}

	return pm, nil
}

func (p *PromMetrics) IncResult(countryCode, result string) {
	p.results.WithLabelValues(countryCode, result).Inc()
}

func (p *PromMetrics) ObserveDuration(d time.Duration) {
	p.duration.Observe(d.Seconds())
}
