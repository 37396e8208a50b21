package handlers

import (
	"net/http"

	"github.com/siamhora/siamhora/internal/application/astro"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
)

// AstroHandler serves the chart, transit, and match endpoints on top of the
// astro service.
type AstroHandler struct {
	service *astro.Service
	logger  logging.Logger
}

// NewAstroHandler builds the handler.
func NewAstroHandler(service *astro.Service, logger logging.Logger) *AstroHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &AstroHandler{service: service, logger: logger}
}

// Chart handles GET /api/astro-chart?date=&time=&timezone=&lat=&lon=.
func (h *AstroHandler) Chart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	resp, err := h.service.BuildChart(r.Context(), astro.ChartRequest{
		Date:      q.Get("date"),
		Time:      q.Get("time"),
		Timezone:  q.Get("timezone"),
		Latitude:  queryFloat(r, "lat", 0),
		Longitude: queryFloat(r, "lon", 0),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Transit handles GET /api/astro-transit with base_* and target_* moments.
func (h *AstroHandler) Transit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	resp, err := h.service.AnalyzeTransit(r.Context(), astro.TransitRequest{
		BaseDate:   q.Get("base_date"),
		BaseTime:   q.Get("base_time"),
		TargetDate: q.Get("target_date"),
		TargetTime: q.Get("target_time"),
		Timezone:   q.Get("timezone"),
		Latitude:   queryFloat(r, "lat", 0),
		Longitude:  queryFloat(r, "lon", 0),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Match handles GET /api/astro-match with two birth moments.
func (h *AstroHandler) Match(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	resp, err := h.service.ScorePair(r.Context(), astro.MatchRequest{
		Date1:      q.Get("date1"),
		Time1:      q.Get("time1"),
		Latitude1:  queryFloat(r, "lat1", 0),
		Longitude1: queryFloat(r, "lon1", 0),
		Date2:      q.Get("date2"),
		Time2:      q.Get("time2"),
		Latitude2:  queryFloat(r, "lat2", 0),
		Longitude2: queryFloat(r, "lon2", 0),
		Timezone:   q.Get("timezone"),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

//Personal.AI order the ending
