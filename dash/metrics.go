package dash

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "canvaschart"

type Metrics struct {
	Renders     *prometheus.CounterVec
	Skipped     *prometheus.CounterVec
	Unavailable *prometheus.CounterVec
	Failures    *prometheus.CounterVec
}

// NewMetrics creates the panel counters and registers them on reg when it
// is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Number of full redraws of a panel.",
		}, []string{"panel"}),
		Skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redraws_skipped_total",
			Help:      "Number of updates ignored because neither data nor kind changed.",
		}, []string{"panel"}),
		Unavailable: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "surface_unavailable_total",
			Help:      "Number of redraws aborted because the surface could not be acquired.",
		}, []string{"panel"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Number of failed reads of a panel data source.",
		}, []string{"panel"}),
	}
	if reg != nil {
		reg.MustRegister(m.Renders, m.Skipped, m.Unavailable, m.Failures)
	}
	return m
}

func (m *Metrics) rendered(panel string) {
	if m != nil {
		m.Renders.WithLabelValues(panel).Inc()
	}
}

func (m *Metrics) skipped(panel string) {
	if m != nil {
		m.Skipped.WithLabelValues(panel).Inc()
	}
}

func (m *Metrics) unavailable(panel string) {
	if m != nil {
		m.Unavailable.WithLabelValues(panel).Inc()
	}
}

func (m *Metrics) failed(panel string) {
	if m != nil {
		m.Failures.WithLabelValues(panel).Inc()
	}
}
