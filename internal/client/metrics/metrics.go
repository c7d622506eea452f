// Package metrics holds the console's Prometheus instruments for outbound
// API traffic and session transitions.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	TransportErrors prometheus.Counter
	Unauthorized    prometheus.Counter
	SessionCleared  prometheus.Counter
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "llmpid_console_api_requests_total",
			Help: "Total number of API requests by method and status code",
		}, []string{"method", "code"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "llmpid_console_api_request_duration_seconds",
			Help:    "API request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		TransportErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "llmpid_console_api_transport_errors_total",
			Help: "Total number of API requests that failed before a response arrived",
		}),
		Unauthorized: f.NewCounter(prometheus.CounterOpts{
			Name: "llmpid_console_api_unauthorized_total",
			Help: "Total number of 401 responses observed",
		}),
		SessionCleared: f.NewCounter(prometheus.CounterOpts{
			Name: "llmpid_console_session_cleared_total",
			Help: "Total number of times the held credential was dropped",
		}),
	}
}

func (m *Metrics) ObserveRequest(method string, code int, d time.Duration) {
	m.Requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) IncrementTransportErrors() {
	m.TransportErrors.Inc()
}

func (m *Metrics) IncrementUnauthorized() {
	m.Unauthorized.Inc()
}

func (m *Metrics) IncrementSessionCleared() {
	m.SessionCleared.Inc()
}
