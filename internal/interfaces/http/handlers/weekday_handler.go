package handlers

import (
	"net/http"

	"github.com/siamhora/siamhora/internal/domain/calendar"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
	"github.com/siamhora/siamhora/internal/infrastructure/verify"
)

// WeekdayHandler serves the weekday endpoints: plain, Thai-formatted, and
// remotely verified.
type WeekdayHandler struct {
	gateway *verify.Gateway
	logger  logging.Logger
}

// NewWeekdayHandler builds the handler.  gateway is required for
// /api/validate-weekday only and may be nil otherwise.
func NewWeekdayHandler(gateway *verify.Gateway, logger logging.Logger) *WeekdayHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &WeekdayHandler{gateway: gateway, logger: logger}
}

// weekdayResponse is the /api/weekday payload.
type weekdayResponse struct {
	Input             map[string]string `json:"input"`
	ResolvedGregorian string            `json:"resolved_gregorian"`
	YearBE            int               `json:"year_be"`
	WeekdayIndex      int               `json:"weekday_index"`
	Weekday           string            `json:"weekday"`
	WeekdayThai       string            `json:"weekday_thai"`
}

// Weekday handles GET /api/weekday?date=&timezone=.
func (h *WeekdayHandler) Weekday(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	tz := r.URL.Query().Get("timezone")

	res, err := calendar.ResolveWithFallback(date, "", tz)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, weekdayResponse{
		Input:             map[string]string{"date": date, "timezone": res.Timezone},
		ResolvedGregorian: res.Date.ISO(),
		YearBE:            res.Date.YearBE(),
		WeekdayIndex:      (int(res.Weekday) + 6) % 7,
		Weekday:           calendar.WeekdayEnglish(res.Weekday),
		WeekdayThai:       calendar.WeekdayThai(res.Weekday),
	})
}

// weekdayThaiResponse is the /api/weekday-th payload.
type weekdayThaiResponse struct {
	Input              map[string]string `json:"input"`
	ResolvedGregorian  string            `json:"resolved_gregorian"`
	YearBE             int               `json:"year_be"`
	WeekdayThai        string            `json:"weekday_thai"`
	WeekdayThaiCompact string            `json:"weekday_thai_compact"`
	MonthThai          string            `json:"month_thai"`
	ThaiDate           string            `json:"thai_date"`
}

// WeekdayThai handles GET /api/weekday-th?date=&style=&timezone=.  style is
// "short" (default) or "long" and selects the Thai month table.
func (h *WeekdayHandler) WeekdayThai(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	tz := r.URL.Query().Get("timezone")

	style := calendar.MonthStyleShort
	if r.URL.Query().Get("style") == "long" {
		style = calendar.MonthStyleLong
	}

	res, err := calendar.ResolveWithFallback(date, "", tz)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, weekdayThaiResponse{
		Input:              map[string]string{"date": date, "style": string(style), "timezone": res.Timezone},
		ResolvedGregorian:  res.Date.ISO(),
		YearBE:             res.Date.YearBE(),
		WeekdayThai:        calendar.WeekdayThai(res.Weekday),
		WeekdayThaiCompact: calendar.WeekdayThaiCompact(res.Weekday),
		MonthThai:          calendar.MonthThai(res.Date.Month, style),
		ThaiDate:           calendar.FormatThaiDate(res.Date, res.Weekday, style),
	})
}

// Validate handles GET /api/validate-weekday?date=&timezone=, answering with
// the verification gateway's result and its source tag.
func (h *WeekdayHandler) Validate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	tz := r.URL.Query().Get("timezone")

	res, err := h.gateway.Verify(r.Context(), date, tz)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

//Personal.AI order the ending
