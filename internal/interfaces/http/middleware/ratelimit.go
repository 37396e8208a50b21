package middleware

import (
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"

	apperrors "github.com/siamhora/siamhora/pkg/errors"
)

// RateLimit applies a process-wide token bucket.  Requests beyond the burst
// are answered 429 immediately rather than queued.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"code":    apperrors.ErrCodeTooManyRequests.String(),
					"message": apperrors.DefaultMessageForCode(apperrors.ErrCodeTooManyRequests),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

//Personal.AI order the ending
