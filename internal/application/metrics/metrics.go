package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the application lifecycle module.
type Metrics struct {
	ApplicationsCreated prometheus.Counter
	Transitions         *prometheus.CounterVec
	Overrides           prometheus.Counter
	ChecklistItems      prometheus.Counter
	TransitionDuration  prometheus.Histogram
	CreateDuration      prometheus.Histogram
}

// New creates a Metrics instance with all lifecycle metrics registered.
func New() *Metrics {
	return &Metrics{
		ApplicationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_applications_created_total",
			Help: "Total number of applications created",
		}),
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_stage_transitions_total",
			Help: "Total number of stage transitions, labelled by target stage",
		}, []string{"to_stage"}),
		Overrides: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_stage_overrides_total",
			Help: "Total number of explicit stage overrides",
		}),
		ChecklistItems: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caseflow_checklist_items_generated_total",
			Help: "Total number of checklist items materialized from templates",
		}),
		TransitionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "caseflow_transition_duration_seconds",
			Help:    "Duration of stage transitions including checklist generation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		CreateDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "caseflow_create_duration_seconds",
			Help:    "Duration of application creation including checklist generation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveTransition records one transition and its duration.
func (m *Metrics) ObserveTransition(toStage string, start time.Time) {
	m.Transitions.WithLabelValues(toStage).Inc()
	m.TransitionDuration.Observe(time.Since(start).Seconds())
}

// ObserveCreate records one creation and its duration.
func (m *Metrics) ObserveCreate(start time.Time) {
	m.ApplicationsCreated.Inc()
	m.CreateDuration.Observe(time.Since(start).Seconds())
}

// AddChecklistItems records n newly materialized checklist items.
func (m *Metrics) AddChecklistItems(n int) {
	m.ChecklistItems.Add(float64(n))
}
