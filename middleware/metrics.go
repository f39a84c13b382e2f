package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "license_tracker_http_requests_total",
			Help: "HTTP requests handled by the license tracker API.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "license_tracker_http_request_duration_seconds",
			Help:    "HTTP request latency of the license tracker API in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware 요청 수와 처리 시간을 Prometheus로 기록
func MetricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)

		wrapped := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	}
}

type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *metricsResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// normalizePath 라이선스/티켓 ID 경로 세그먼트를 {id}로 치환 (레이블 카디널리티 제한)
// /api/licenses/42/remove → /api/licenses/{id}/remove
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/licenses/"):
		rest := strings.TrimPrefix(path, "/api/licenses/")
		if _, action, found := strings.Cut(rest, "/"); found {
			return "/api/licenses/{id}/" + action
		}
		return "/api/licenses/{id}"
	case strings.HasPrefix(path, "/api/tickets/"):
		return "/api/tickets/{id}"
	case strings.HasPrefix(path, "/swagger/"):
		return "/swagger/"
	}
	return path
}
