package aipipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	outcomes *prometheus.CounterVec
	attempts *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripmigo_ai_pipeline_total",
				Help: "Pipeline runs by use case, result source and fallback kind",
			},
			[]string{"use_case", "source", "kind"},
		),
		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripmigo_ai_model_attempts_total",
				Help: "Model call attempts by use case and outcome",
			},
			[]string{"use_case", "outcome"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tripmigo_ai_model_latency_seconds",
				Help:    "Wall time of a model call including retries",
				Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
			},
			[]string{"use_case"},
		),
	}
}

// A nil *Metrics records nothing.

func (m *Metrics) observeOutcome(useCase string, source Source, kind Kind) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(useCase, string(source), string(kind)).Inc()
}

func (m *Metrics) observeAttempt(useCase, outcome string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(useCase, outcome).Inc()
}

func (m *Metrics) observeLatency(useCase string, d time.Duration) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(useCase).Observe(d.Seconds())
}
