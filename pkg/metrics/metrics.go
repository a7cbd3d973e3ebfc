package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every Prometheus collector of the service.
// All methods are safe on a nil receiver so components can run without metrics.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storeOperationDuration *prometheus.HistogramVec
	storeErrorsTotal       *prometheus.CounterVec

	bookingsCreated      prometheus.Counter
	bookingConflicts     prometheus.Counter
	bookingStatusChanges *prometheus.CounterVec
	slotsGenerated       prometheus.Counter
	chatbotQuestions     *prometheus.CounterVec
	loginAttempts        *prometheus.CounterVec
}

// New creates the collectors under the given namespace and registers them in reg.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "http_requests_total",
				Help:      "Count of HTTP requests by method, route and status code.",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		storeOperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "store_operation_duration_seconds",
				Help:      "Key-value store operation latency by backend and operation.",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"backend", "operation"},
		),
		storeErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "store_errors_total",
				Help:      "Count of failed key-value store operations.",
			},
			[]string{"backend", "operation"},
		),
		bookingsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "bookings_created_total",
				Help:      "Count of bookings created.",
			},
		),
		bookingConflicts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "booking_conflicts_total",
				Help:      "Count of booking attempts rejected because the slot was unavailable.",
			},
		),
		bookingStatusChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "bookings_status_changes_total",
				Help:      "Count of booking status changes by target status.",
			},
			[]string{"status"},
		),
		slotsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "slots_generated_total",
				Help:      "Count of booking slots created by the generator.",
			},
		),
		chatbotQuestions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "chatbot_questions_total",
				Help:      "Count of chatbot questions by whether a predefined answer matched.",
			},
			[]string{"matched"},
		),
		loginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "login_attempts_total",
				Help:      "Count of admin login attempts by result.",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.storeOperationDuration,
		m.storeErrorsTotal,
		m.bookingsCreated,
		m.bookingConflicts,
		m.bookingStatusChanges,
		m.slotsGenerated,
		m.chatbotQuestions,
		m.loginAttempts,
	)

	return m
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveStoreOperation records one key-value store call.
func (m *Metrics) ObserveStoreOperation(backend, operation string, elapsed time.Duration, failed bool) {
	if m == nil {
		return
	}
	m.storeOperationDuration.WithLabelValues(backend, operation).Observe(elapsed.Seconds())
	if failed {
		m.storeErrorsTotal.WithLabelValues(backend, operation).Inc()
	}
}

func (m *Metrics) IncBookingCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

func (m *Metrics) IncBookingConflict() {
	if m == nil {
		return
	}
	m.bookingConflicts.Inc()
}

func (m *Metrics) IncBookingStatusChange(status string) {
	if m == nil {
		return
	}
	m.bookingStatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) AddSlotsGenerated(n int) {
	if m == nil {
		return
	}
	m.slotsGenerated.Add(float64(n))
}

func (m *Metrics) IncChatbotQuestion(matched bool) {
	if m == nil {
		return
	}
	m.chatbotQuestions.WithLabelValues(strconv.FormatBool(matched)).Inc()
}

func (m *Metrics) IncLoginAttempt(result string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(result).Inc()
}
