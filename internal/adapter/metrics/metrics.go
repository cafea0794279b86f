// Package metrics exposes Prometheus instruments for HTTP traffic and
// undo/habit feedback signals.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

const namespace = "dayflow"

// Metrics holds the application collectors registered on one registry.
type Metrics struct {
	reg prometheus.Registerer

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	actionsTotal    *prometheus.CounterVec
}

// New creates and registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		actionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_signals_total",
			Help:      "Delete, undo, expiry and toggle outcomes by entity kind.",
		}, []string{"kind", "action", "outcome"}),
	}
}

// Signal records one feedback signal. It never blocks.
func (m *Metrics) Signal(_ context.Context, kind domain.EntityKind, action domain.FeedbackAction, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.actionsTotal.WithLabelValues(kind.String(), action.String(), outcome).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, route, code).Observe(d.Seconds())
	m.requestsTotal.WithLabelValues(method, route, code).Inc()
}

// RegisterQueueSize exports the number of pending undo entries.
func (m *Metrics) RegisterQueueSize(size func() int) {
	promauto.With(m.reg).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "undo_pending_entries",
		Help:      "Deleted entities still restorable.",
	}, func() float64 { return float64(size()) })
}

// RegisterSyncing exports 1 while any optimistic habit write is in flight.
func (m *Metrics) RegisterSyncing(syncing func() bool) {
	promauto.With(m.reg).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "habit_sync_in_flight",
		Help:      "1 while a habit completion write is awaiting the store.",
	}, func() float64 {
		if syncing() {
			return 1
		}
		return 0
	})
}
