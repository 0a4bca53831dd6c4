package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Requests           *prometheus.CounterVec
	LatencyMS          *prometheus.HistogramVec
	OrdersSubmitted    prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	ActiveSessions     prometheus.GaugeFunc

	registry *prometheus.Registry
}

// New registers the collectors on a private registry. sessions, if non-nil,
// is sampled for the active session gauge.
func New(sessions func() int) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fruitorder",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fruitorder",
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"route"}),
		OrdersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fruitorder",
			Name:      "orders_submitted_total",
			Help:      "Orders accepted into a session's order store.",
		}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fruitorder",
			Name:      "order_validation_failures_total",
			Help:      "Rejected submissions by reason.",
		}, []string{"reason"}),
		registry: reg,
	}
	reg.MustRegister(m.Requests, m.LatencyMS, m.OrdersSubmitted, m.ValidationFailures)

	if sessions != nil {
		m.ActiveSessions = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "fruitorder",
			Name:      "active_sessions",
			Help:      "Sessions currently held in memory.",
		}, func() float64 { return float64(sessions()) })
		reg.MustRegister(m.ActiveSessions)
	}
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Microseconds()) / 1000)
	})
}
