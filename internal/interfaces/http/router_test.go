package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamhora/siamhora/internal/application/astro"
	"github.com/siamhora/siamhora/internal/config"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/prometheus"
	"github.com/siamhora/siamhora/internal/infrastructure/verify"
	"github.com/siamhora/siamhora/internal/interfaces/http/handlers"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNopLogger()
	collector := prometheus.NewCollector()

	selector := astro.NewSystemSelector(nil, logger)
	service := astro.NewService(selector, astro.Defaults{
		Timezone: "Asia/Bangkok", Latitude: 13.75, Longitude: 100.5,
	}, logger, collector)

	gateway := verify.NewGateway(config.VerifierConfig{}, logger, collector)

	return NewRouter(RouterDeps{
		Weekday:        handlers.NewWeekdayHandler(gateway, logger),
		Astro:          handlers.NewAstroHandler(service, logger),
		Health:         handlers.NewHealthHandler("test", nil),
		MetricsHandler: collector.Handler(),
		HTTPMetrics:    collector,
		Logger:         logger,
		Server:         config.ServerConfig{},
	})
}

func doGET(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))

	var body map[string]interface{}
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
	}
	return rec, body
}

func TestWeekdayEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router, "/api/weekday?date=27/10/2568")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-10-27", body["resolved_gregorian"])
	assert.Equal(t, float64(2568), body["year_be"])
	assert.Equal(t, float64(0), body["weekday_index"])
	assert.Equal(t, "Monday", body["weekday"])
	assert.Equal(t, "จันทร์", body["weekday_thai"])
}

func TestWeekdayEndpoint_BadDate(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router, "/api/weekday?date=banana")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DATE_002", body["code"])
	assert.NotEmpty(t, body["message"])
}

func TestWeekdayEndpoint_EmptyDate(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router, "/api/weekday")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DATE_001", body["code"])
}

func TestWeekdayThaiEndpoint_ShortAndLong(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router, "/api/weekday-th?date=27/10/2568")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "วันจันทร์ที่ 27 ต.ค. 2568", body["thai_date"])
	assert.Equal(t, "ต.ค.", body["month_thai"])
	assert.Equal(t, "จันทร์", body["weekday_thai_compact"])

	rec, body = doGET(t, router, "/api/weekday-th?date=27/10/2568&style=long")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "วันจันทร์ที่ 27 ตุลาคม 2568", body["thai_date"])
	assert.Equal(t, "ตุลาคม", body["month_thai"])
}

func TestWeekdayThaiEndpoint_CompactThursday(t *testing.T) {
	router := newTestRouter(t)

	// 2025-10-30 is a Thursday.
	rec, body := doGET(t, router, "/api/weekday-th?date=30/10/2568")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "พฤหัสบดี", body["weekday_thai"])
	assert.Equal(t, "พฤหัส", body["weekday_thai_compact"])
}

func TestValidateWeekdayEndpoint_LocalSource(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router, "/api/validate-weekday?date=27/10/2568")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "local", body["source"])
	assert.Equal(t, "Monday", body["weekday"])
}

func TestAstroChartEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router, "/api/astro-chart?date=27/10/2568&time=14:30")
	require.Equal(t, http.StatusOK, rec.Code)

	sel := body["zodiac_selection"].(map[string]interface{})
	assert.Equal(t, "sidereal", sel["system"])
	assert.Equal(t, "city_fast_path", sel["source"])

	c := body["chart"].(map[string]interface{})
	points := c["points"].([]interface{})
	require.Len(t, points, 8)

	first := points[0].(map[string]interface{})
	assert.Equal(t, "Sun", first["body"])
	// Sidereal charts name signs in Thai: Sun at 11.80 is in เมษ.
	assert.Equal(t, "เมษ", first["sign"])

	lon := first["longitude"].(float64)
	assert.GreaterOrEqual(t, lon, 0.0)
	assert.Less(t, lon, 360.0)
}

func TestAstroChartEndpoint_BadDate(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router, "/api/astro-chart?date=99/99/99")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["code"])
}

func TestAstroTransitEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router,
		"/api/astro-transit?base_date=27/10/2568&target_date=27/10/2568")
	require.Equal(t, http.StatusOK, rec.Code)

	transits := body["transits"].([]interface{})
	require.Len(t, transits, 7)
	for _, raw := range transits {
		tr := raw.(map[string]interface{})
		assert.Equal(t, "conjunction", tr["aspect"])
	}
}

func TestAstroMatchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router,
		"/api/astro-match?date1=27/10/2568&date2=27/10/2568")
	require.Equal(t, http.StatusOK, rec.Code)

	match := body["match"].(map[string]interface{})
	assert.Equal(t, float64(100), match["score"])
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGET(t, router, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])

	rec, body = doGET(t, router, "/readyz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// Generate some traffic first.
	_, _ = doGET(t, router, "/api/weekday?date=27/10/2568")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "siamhora_http_requests_total")
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doGET(t, router, "/healthz")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

//Personal.AI order the ending
