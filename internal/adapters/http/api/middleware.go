package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/example/expedicoes/internal/ctxutil"
	"github.com/example/expedicoes/pkg/metrics"
)

// RequestIDHeader carries the per-request correlation id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware echoes X-Request-ID or assigns a new UUID.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

// LoggingMiddleware writes one access log line per request.
func LoggingMiddleware(logger logrus.FieldLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			requestLogger(logger, r).WithFields(logrus.Fields{
				"method":      r.Method,
				"route":       routeTemplate(r),
				"status":      wrapped.statusCode,
				"duration_ms": durationMs(time.Since(start)),
			}).Info("request served")
		})
	}
}

// MetricsMiddleware records HTTP metrics for each request.
func MetricsMiddleware(m *metrics.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			m.RecordHTTPRequest(routeTemplate(r), r.Method, strconv.Itoa(wrapped.statusCode), durationMs(time.Since(start)))
		})
	}
}

// routeTemplate prefers the mux pattern so ids do not explode label cardinality.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

func requestLogger(logger logrus.FieldLogger, r *http.Request) logrus.FieldLogger {
	if id := ctxutil.RequestIDFromContext(r.Context()); id != "" {
		return logger.WithField("request_id", id)
	}
	return logger
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}
