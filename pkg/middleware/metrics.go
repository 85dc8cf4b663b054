package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const unmatchedRoute = "unmatched"

// Metrics registra contadores e histogramas por rota em reg.
// Só os caminhos em routes viram rótulo; o resto cai em "unmatched" para manter a cardinalidade baixa.
func Metrics(reg prometheus.Registerer, routes []string) func(http.Handler) http.Handler {
	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"route", "method", "class"},
	)

	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "Current number of in-flight HTTP requests",
	})

	reg.MustRegister(requestsTotal, requestDuration, inFlight)

	known := make(map[string]bool, len(routes))
	for _, route := range routes {
		known[route] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := r.URL.Path
			if !known[route] {
				route = unmatchedRoute
			}

			inFlight.Inc()
			defer inFlight.Dec()

			start := time.Now()
			mrw := &metricsResponseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(mrw, r)

			requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(mrw.status)).Inc()
			requestDuration.WithLabelValues(route, r.Method, statusClass(mrw.status)).Observe(time.Since(start).Seconds())
		})
	}
}

type metricsResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *metricsResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
