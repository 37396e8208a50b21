package handlers

import (
	"context"
	"net/http"
	"time"
)

// ReadinessChecker reports whether an optional dependency is usable.
type ReadinessChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	version  string
	checkers map[string]ReadinessChecker
}

// NewHealthHandler builds the handler.  checkers maps dependency names to
// their probes; an empty map means readiness equals liveness.
func NewHealthHandler(version string, checkers map[string]ReadinessChecker) *HealthHandler {
	return &HealthHandler{version: version, checkers: checkers}
}

// Healthz answers liveness: the process is up.
func (h *HealthHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// Readyz answers readiness: every registered dependency responds.  The
// service stays ready when optional dependencies are degraded; they are
// reported but do not flip the status, because every endpoint can serve
// without them.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string, len(h.checkers))
	for name, checker := range h.checkers {
		if checker.Healthy(ctx) {
			deps[name] = "ok"
		} else {
			deps[name] = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ready",
		"dependencies": deps,
	})
}

//Personal.AI order the ending
