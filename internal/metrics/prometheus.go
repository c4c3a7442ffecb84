// Package metrics provides Prometheus metrics for contribution reconciliation.
package metrics

import (
	"net/http"
	"time"

	"github.com/janne6565/projectmanager/internal/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "projectmanager"

// Reconciliation records reconciliation pass statistics.
// Implements app.ReconcilerMetrics.
type Reconciliation struct {
	registry *prometheus.Registry

	passes              *prometheus.CounterVec
	passDuration        prometheus.Histogram
	lastSuccess         prometheus.Gauge
	contributions       prometheus.Gauge
	unassigned          prometheus.Gauge
	projectSaves        *prometheus.CounterVec
	assignedPerProjects prometheus.Gauge
}

var _ app.ReconcilerMetrics = &Reconciliation{}

// NewReconciliation creates metrics registered on a new registry.
func NewReconciliation() *Reconciliation {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)

	return &Reconciliation{
		registry: reg,
		passes: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "passes_total",
			Help:      "Reconciliation passes by result.",
		}, []string{"result"}),
		passDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "pass_duration_seconds",
			Help:      "Duration of reconciliation passes.",
			Buckets:   prometheus.DefBuckets,
		}),
		lastSuccess: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful pass.",
		}),
		contributions: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "fetched_contributions",
			Help:      "Contributions fetched in the last successful pass.",
		}),
		unassigned: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "unassigned_contributions",
			Help:      "Contributions matching no project in the last successful pass.",
		}),
		assignedPerProjects: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "assigned_contributions",
			Help:      "Contributions assigned to projects in the last successful pass, counted once per project.",
		}),
		projectSaves: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciliation",
			Name:      "project_updates_total",
			Help:      "Per project updates by result.",
		}, []string{"result"}),
	}
}

// ObservePass records single pass.
func (m *Reconciliation) ObservePass(duration time.Duration, res app.PassResult, err error) {
	m.passDuration.Observe(duration.Seconds())
	if err != nil {
		m.passes.WithLabelValues("error").Inc()
		return
	}

	m.passes.WithLabelValues("success").Inc()
	m.lastSuccess.SetToCurrentTime()
	m.contributions.Set(float64(res.Fetched))
	m.unassigned.Set(float64(res.Unassigned))
	m.assignedPerProjects.Set(float64(res.Assigned))
	m.projectSaves.WithLabelValues("saved").Add(float64(res.Saved))
	m.projectSaves.WithLabelValues("skipped").Add(float64(res.Skipped))
	m.projectSaves.WithLabelValues("failed").Add(float64(res.Failed))
}

// Handler returns http handler exposing metrics.
func (m *Reconciliation) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
