package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
)

// slowRequestThreshold escalates the log level for requests slower than this.
const slowRequestThreshold = 500 * time.Millisecond

// wrappedResponseWriter captures the status code and bytes written.
type wrappedResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *wrappedResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *wrappedResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// HTTPMetrics receives one observation per completed request.
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// RequestLogger logs every request with its route pattern, status, and
// latency, and feeds the same observation to metrics (which may be nil).
// 5xx responses log at error level, 4xx and slow requests at warn.
func RequestLogger(logger logging.Logger, metrics HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := &wrappedResponseWriter{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			if ww.status == 0 {
				ww.status = http.StatusOK
			}

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			if metrics != nil {
				metrics.ObserveHTTPRequest(r.Method, route, ww.status, elapsed)
			}

			fields := []logging.Field{
				logging.String("request_id", GetRequestID(r.Context())),
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.String("route", route),
				logging.Int("status", ww.status),
				logging.Int("bytes", ww.bytes),
				logging.Duration("elapsed", elapsed),
				logging.String("remote", r.RemoteAddr),
			}

			switch {
			case ww.status >= http.StatusInternalServerError:
				logger.Error("request failed", fields...)
			case ww.status >= http.StatusBadRequest || elapsed > slowRequestThreshold:
				logger.Warn("request completed", fields...)
			default:
				logger.Info("request completed", fields...)
			}
		})
	}
}

//Personal.AI order the ending
