// Package metrics provides Prometheus metrics for gig and bid activity.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every collector of the service. A nil *Manager is a valid no-op.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	gigsCreated          prometheus.Counter
	bidsSubmitted        prometheus.Counter
	bidsHired            prometheus.Counter
	bidsRejected         prometheus.Counter
	transitionFailures   *prometheus.CounterVec
	notificationFailures prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a manager with a private registry unless WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gigflow",
		histogramBuckets: prometheus.DefBuckets,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.init()

	return m
}

func (m *Manager) init() {
	auto := promauto.With(m.registry)

	m.gigsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "gigs_created_total",
		Help:      "Total number of gigs posted",
	})

	m.bidsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "bids_submitted_total",
		Help:      "Total number of bids accepted",
	})

	m.bidsHired = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "bids_hired_total",
		Help:      "Total number of hires",
	})

	m.bidsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "bids_rejected_total",
		Help:      "Total number of bids rejected as a consequence of a hire",
	})

	m.transitionFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "transition_failures_total",
		Help:      "Refused lifecycle operations by operation and error kind",
	}, []string{"op", "kind"})

	m.notificationFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "notification_failures_total",
		Help:      "Notifications that could not be delivered to the inbox",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code",
	}, []string{"method", "route", "code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "route"})
}

func (m *Manager) GigCreated() {
	if m == nil {
		return
	}
	m.gigsCreated.Inc()
}

func (m *Manager) BidSubmitted() {
	if m == nil {
		return
	}
	m.bidsSubmitted.Inc()
}

// Hired records one hire and the number of sibling bids it rejected.
func (m *Manager) Hired(rejected int) {
	if m == nil {
		return
	}
	m.bidsHired.Inc()
	m.bidsRejected.Add(float64(rejected))
}

func (m *Manager) TransitionFailed(op, kind string) {
	if m == nil {
		return
	}
	m.transitionFailures.WithLabelValues(op, kind).Inc()
}

func (m *Manager) NotificationFailed() {
	if m == nil {
		return
	}
	m.notificationFailures.Inc()
}

func (m *Manager) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
