// Package metrics exposes the dispatcher's navigation lifecycle as
// Prometheus metrics.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/petrijr/navio/pkg/api"
)

// Observer implements api.Observer over prometheus collectors:
//
//	navio_navigations_total{destination, outcome}
//	navio_step_errors_total{destination}
//	navio_navigation_duration_seconds{destination}
//
// Durations are observed for both completed and failed navigations.
type Observer struct {
	api.NoopObserver

	navigations *prometheus.CounterVec
	stepErrors  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// Ensure Observer implements api.Observer.
var _ api.Observer = (*Observer)(nil)

// NewObserver creates an Observer and registers its collectors with reg.
// A nil reg falls back to prometheus.DefaultRegisterer. It panics if a
// collector with the same name is already registered, matching
// MustRegister semantics.
func NewObserver(reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &Observer{
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navio_navigations_total",
				Help: "Total number of finished navigations by destination and outcome",
			},
			[]string{"destination", "outcome"},
		),
		stepErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navio_step_errors_total",
				Help: "Total number of action failures that triggered a retry",
			},
			[]string{"destination"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "navio_navigation_duration_seconds",
				Help: "Duration of finished navigations, prerequisites included",
			},
			[]string{"destination"},
		),
	}

	reg.MustRegister(o.navigations, o.stepErrors, o.duration)
	return o
}

func (o *Observer) OnStepError(ctx context.Context, info api.NavigationInfo, err error) {
	o.stepErrors.WithLabelValues(info.Destination).Inc()
}

func (o *Observer) OnNavigateCompleted(ctx context.Context, info api.NavigationInfo, d time.Duration) {
	o.navigations.WithLabelValues(info.Destination, "completed").Inc()
	o.duration.WithLabelValues(info.Destination).Observe(d.Seconds())
}

func (o *Observer) OnNavigateFailed(ctx context.Context, info api.NavigationInfo, err error, d time.Duration) {
	o.navigations.WithLabelValues(info.Destination, "failed").Inc()
	o.duration.WithLabelValues(info.Destination).Observe(d.Seconds())
}
