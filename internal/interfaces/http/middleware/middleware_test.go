package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesCallerValue(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "caller-id-1", seen)
}

func TestCORS_SetsHeadersAndAnswersPreflight(t *testing.T) {
	h := CORS(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	h := RateLimit(1, 2)(okHandler())

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
	assert.Equal(t, http.StatusTooManyRequests, codes[3])
}

func TestRequestLogger_CapturesStatusAndMetrics(t *testing.T) {
	type obs struct {
		method string
		route  string
		status int
	}
	var got []obs
	metrics := httpMetricsFunc(func(method, route string, status int, _ time.Duration) {
		got = append(got, obs{method, route, status})
	})

	h := RequestLogger(logging.NewNopLogger(), metrics)(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/weekday", nil))

	require.Len(t, got, 1)
	assert.Equal(t, "GET", got[0].method)
	assert.Equal(t, "/api/weekday", got[0].route)
	assert.Equal(t, http.StatusBadRequest, got[0].status)
}

// httpMetricsFunc adapts a function to the HTTPMetrics interface.
type httpMetricsFunc func(method, route string, status int, elapsed time.Duration)

func (f httpMetricsFunc) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	f(method, route, status, elapsed)
}

//Personal.AI order the ending
