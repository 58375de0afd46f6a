package middleware

import (
	"net/http"
	"time"

	"medical-office-api/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware writes one access-log line per request and feeds the
// HTTP metrics. Routes are labelled by their template, not the raw path.
type LoggingMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.HTTPMetrics
}

func NewLoggingMiddleware(log *logrus.Logger, httpMetrics *metrics.HTTPMetrics) *LoggingMiddleware {
	return &LoggingMiddleware{
		log:     log,
		metrics: httpMetrics,
	}
}

// unmatchedRoute labels requests without a route template (404s, the
// OPTIONS catch-all) so arbitrary paths cannot grow the metric series.
const unmatchedRoute = "unmatched"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := unmatchedRoute
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil && tpl != "" {
				route = tpl
			}
		}
		elapsed := time.Since(start)
		m.metrics.ObserveRequest(r.Method, route, rec.status, elapsed.Seconds())

		entry := m.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"route":       route,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": elapsed.Milliseconds(),
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request handled")
	})
}
