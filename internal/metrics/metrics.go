// Package metrics registers the Prometheus instruments for the analysis
// pipeline. Registration happens once at startup; the record helpers are
// no-ops before Init so unit tests never need the registry.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	analysesTotal *prometheus.CounterVec
	fallbackTotal *prometheus.CounterVec
	externalTotal *prometheus.CounterVec
	dependencyUp  *prometheus.GaugeVec

	initOnce sync.Once
)

// Init creates and registers all collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		analysesTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "placerank_analyses_total",
				Help: "Completed keyword analyses by outcome",
			},
			[]string{"outcome"},
		)
		fallbackTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "placerank_fallback_total",
				Help: "Data-source tier selections per pipeline component",
			},
			[]string{"component", "tier"},
		)
		externalTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "placerank_external_requests_total",
				Help: "Outbound API requests by service and outcome",
			},
			[]string{"service", "outcome"},
		)
		dependencyUp = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "placerank_dependency_up",
				Help: "Whether an external dependency answered its last probe",
			},
			[]string{"dependency"},
		)
		prometheus.MustRegister(analysesTotal, fallbackTotal, externalTotal, dependencyUp)
	})
}

// RecordAnalysis counts a finished analysis request ("ok" or "error").
func RecordAnalysis(outcome string) {
	if analysesTotal == nil {
		return
	}
	analysesTotal.WithLabelValues(outcome).Inc()
}

// RecordFallback counts which tier answered for a pipeline component, e.g.
// ("volume", "population") or ("generator", "model").
func RecordFallback(component, tier string) {
	if fallbackTotal == nil {
		return
	}
	fallbackTotal.WithLabelValues(component, tier).Inc()
}

// RecordExternal counts an outbound API request.
func RecordExternal(service, outcome string) {
	if externalTotal == nil {
		return
	}
	externalTotal.WithLabelValues(service, outcome).Inc()
}

// SetDependencyUp records the latest probe result for a dependency.
func SetDependencyUp(dependency string, up bool) {
	if dependencyUp == nil {
		return
	}
	v := 0.0
	if up {
		v = 1.0
	}
	dependencyUp.WithLabelValues(dependency).Set(v)
}
