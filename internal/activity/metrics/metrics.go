package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	AssociationsRecorded  prometheus.Counter
	AssociationsRejected  prometheus.Counter
	ReferentialViolations prometheus.Counter
	ValidateDuration      prometheus.Histogram
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the collectors on a specific registerer. Tests use a
// fresh registry to avoid duplicate registration across cases.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AssociationsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "adms_audit_associations_recorded_total",
			Help: "Total number of audit associations accepted and stored",
		}),
		AssociationsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "adms_audit_associations_rejected_total",
			Help: "Total number of audit associations rejected by validation",
		}),
		ReferentialViolations: factory.NewCounter(prometheus.CounterOpts{
			Name: "adms_audit_referential_violations_total",
			Help: "Total number of referential-integrity violations detected",
		}),
		ValidateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "adms_audit_validate_duration_seconds",
			Help:    "Duration of full association validation",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
	}
}

func (m *Metrics) IncrementRecorded() {
	m.AssociationsRecorded.Inc()
}

func (m *Metrics) IncrementRejected() {
	m.AssociationsRejected.Inc()
}

func (m *Metrics) AddReferentialViolations(n int) {
	m.ReferentialViolations.Add(float64(n))
}

func (m *Metrics) ObserveValidate(start time.Time) {
	m.ValidateDuration.Observe(time.Since(start).Seconds())
}
