package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов консоли
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	backendCalls *prometheus.CounterVec
	backendTime  *prometheus.HistogramVec
	actions      *prometheus.CounterVec
}

// New создает и регистрирует коллекторы
// Имя сервиса используется как namespace метрик
func New(serviceName string, registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of console HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "Console HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "backend_calls_total",
			Help:      "Calls to the platform REST backend by operation and outcome.",
		}, []string{"operation", "outcome"}),
		backendTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "backend_call_duration_seconds",
			Help:      "Latency of platform REST backend calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "admin_actions_total",
			Help:      "Admin actions (create, approve, reject, toggle, delete, upload) by resource and outcome.",
		}, []string{"resource", "action", "outcome"}),
	}

	registerer.MustRegister(m.httpRequests, m.httpDuration, m.backendCalls, m.backendTime, m.actions)
	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveBackendCall фиксирует вызов backend API
func (m *Metrics) ObserveBackendCall(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.backendCalls.WithLabelValues(operation, outcome(err)).Inc()
	m.backendTime.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveAction фиксирует действие администратора
func (m *Metrics) ObserveAction(resource, action string, err error) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(resource, action, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
