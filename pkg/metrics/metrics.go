package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках
// можно передавать nil и не проверять это в вызывающем коде
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	BookingsTotal      *prometheus.CounterVec
	ModerationsTotal   *prometheus.CounterVec
	NotificationsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests",
				ConstLabels: constLabels,
				Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		DBQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_queries_total",
				Help:        "Total number of database queries",
				ConstLabels: constLabels,
			},
			[]string{"operation", "status"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Duration of database queries",
				ConstLabels: constLabels,
				Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"operation"},
		),
		DBConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_connections",
				Help:        "Database connection pool state",
				ConstLabels: constLabels,
			},
			[]string{"state"},
		),
		BookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_total",
				Help:        "Booking attempts by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		ModerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "moderations_total",
				Help:        "Admin moderation actions by result",
				ConstLabels: constLabels,
			},
			[]string{"action", "result"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "notifications_total",
				Help:        "Notification delivery attempts",
				ConstLabels: constLabels,
			},
			[]string{"channel", "kind", "result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBConnections,
		m.BookingsTotal,
		m.ModerationsTotal,
		m.NotificationsTotal,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetPoolStats обновляет состояние пула соединений
func (m *Metrics) SetPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues("open").Set(float64(open))
	m.DBConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
}

// RecordBooking result: created | blocked | slot_taken | invalid | error
func (m *Metrics) RecordBooking(result string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordModeration(action, result string) {
	if m == nil {
		return
	}
	m.ModerationsTotal.WithLabelValues(action, result).Inc()
}

func (m *Metrics) RecordNotification(channel, kind string, ok bool) {
	if m == nil {
		return
	}
	result := "sent"
	if !ok {
		result = "failed"
	}
	m.NotificationsTotal.WithLabelValues(channel, kind, result).Inc()
}
