package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса.
// Все метрики имеют label service для агрегации между сервисами.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueriesTotal      *prometheus.CounterVec
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   *prometheus.GaugeVec
	DBIdleConnections   *prometheus.GaugeVec
	DBInUseConnections  *prometheus.GaugeVec
	DBWaitCountTotal    *prometheus.CounterVec

	// Business
	BookingsCreatedTotal      *prometheus.CounterVec
	BookingConflictsTotal     *prometheus.CounterVec
	BookingsCancelledTotal    *prometheus.CounterVec
	NotificationFailuresTotal *prometheus.CounterVec
}

// New регистрирует и возвращает коллекторы метрик
func New(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path", "status"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		DBOpenConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of open database connections",
		}, []string{"service"}),

		DBIdleConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		DBInUseConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),

		DBWaitCountTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_wait_count_total",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		BookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings created",
		}, []string{"service", "time_slot"}),

		BookingConflictsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_conflicts_total",
			Help: "Total number of booking attempts rejected because the slot was taken",
		}, []string{"service", "time_slot"}),

		BookingsCancelledTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Total number of bookings cancelled",
		}, []string{"service"}),

		NotificationFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Total number of failed notification deliveries",
		}, []string{"service"}),
	}

	// Инициализируем gauge для сервиса, чтобы метрики появились сразу
	m.DBOpenConnections.WithLabelValues(serviceName).Set(0)
	m.DBIdleConnections.WithLabelValues(serviceName).Set(0)
	m.DBInUseConnections.WithLabelValues(serviceName).Set(0)

	return m
}

// ForService возвращает метрики, привязанные к имени сервиса.
// Usecase-слой видит только этот узкий тип и не знает про labels.
func (m *Metrics) ForService(serviceName string) *ServiceMetrics {
	return &ServiceMetrics{m: m, service: serviceName}
}

// ServiceMetrics бизнес-метрики с заранее подставленным label service
type ServiceMetrics struct {
	m       *Metrics
	service string
}

// BookingCreated инкрементирует счетчик созданных бронирований
func (s *ServiceMetrics) BookingCreated(timeSlot string) {
	s.m.BookingsCreatedTotal.WithLabelValues(s.service, timeSlot).Inc()
}

// BookingConflict инкрементирует счетчик конфликтов по слоту
func (s *ServiceMetrics) BookingConflict(timeSlot string) {
	s.m.BookingConflictsTotal.WithLabelValues(s.service, timeSlot).Inc()
}

// BookingCancelled инкрементирует счетчик отмен
func (s *ServiceMetrics) BookingCancelled() {
	s.m.BookingsCancelledTotal.WithLabelValues(s.service).Inc()
}

// NotificationFailure инкрементирует счетчик ошибок доставки уведомлений
func (s *ServiceMetrics) NotificationFailure() {
	s.m.NotificationFailuresTotal.WithLabelValues(s.service).Inc()
}

// Noop реализация бизнес-метрик, используемая при выключенных метриках
type Noop struct{}

func (Noop) BookingCreated(string)  {}
func (Noop) BookingConflict(string) {}
func (Noop) BookingCancelled()      {}
func (Noop) NotificationFailure()   {}
