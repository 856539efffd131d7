package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AnalysisMetrics tracks classifier outcomes.
type AnalysisMetrics struct {
	AnalysesTotal *prometheus.CounterVec
	FailuresTotal *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	RecordErrors  prometheus.Counter
}

func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	m := &AnalysisMetrics{
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Reviews classified, by classifier and sentiment.",
		}, []string{"classifier", "sentiment"}),
		FailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_failures_total",
			Help:      "Classifications that returned an error, by classifier.",
		}, []string{"classifier"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent inside the classifier.",
			Buckets:   []float64{.0005, .001, .005, .025, .1, .5, 1, 2.5, 5, 10, 30},
		}, []string{"classifier"}),
		RecordErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_errors_total",
			Help:      "Analyses that at least one recorder failed to store.",
		}),
	}

	reg.MustRegister(m.AnalysesTotal, m.FailuresTotal, m.Duration, m.RecordErrors)
	return m
}

func (m *AnalysisMetrics) ObserveSuccess(classifier, sentiment string, elapsed time.Duration) {
	m.AnalysesTotal.WithLabelValues(classifier, sentiment).Inc()
	m.Duration.WithLabelValues(classifier).Observe(elapsed.Seconds())
}

func (m *AnalysisMetrics) ObserveFailure(classifier string, elapsed time.Duration) {
	m.FailuresTotal.WithLabelValues(classifier).Inc()
	m.Duration.WithLabelValues(classifier).Observe(elapsed.Seconds())
}
