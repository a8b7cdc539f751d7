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

// Metrics holds the service's Prometheus collectors. A nil *Metrics is a no-op.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	RequestsCreated  prometheus.Counter
	Decisions        *prometheus.CounterVec
	DonorsRegistered prometheus.Counter
	SignInFailures   *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeline_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifeline_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		RequestsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "lifeline_blood_requests_created_total",
			Help: "Blood requests submitted by requesters",
		}),
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeline_blood_request_decisions_total",
			Help: "Hospital decisions on blood requests by outcome",
		}, []string{"outcome"}),
		DonorsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "lifeline_donors_registered_total",
			Help: "Donor registrations",
		}),
		SignInFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeline_signin_failures_total",
			Help: "Rejected sign-in attempts by account kind",
		}, []string{"kind"}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementRequestsCreated() {
	if m == nil {
		return
	}
	m.RequestsCreated.Inc()
}

func (m *Metrics) IncrementDecision(outcome string) {
	if m == nil {
		return
	}
	m.Decisions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementDonorsRegistered() {
	if m == nil {
		return
	}
	m.DonorsRegistered.Inc()
}

func (m *Metrics) IncrementSignInFailure(kind string) {
	if m == nil {
		return
	}
	m.SignInFailures.WithLabelValues(kind).Inc()
}
