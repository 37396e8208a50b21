package astro

import (
	"context"
	"time"

	"github.com/siamhora/siamhora/internal/domain/calendar"
	"github.com/siamhora/siamhora/internal/domain/chart"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
)

// Metrics is the slice of instrumentation the service emits.  The prometheus
// implementation lives in the infrastructure layer; a nopMetrics stands in
// when none is wired.
type Metrics interface {
	ChartComputed(system string)
	TransitAnalyzed(aspects int)
	MatchScored(score int)
}

type nopMetrics struct{}

func (nopMetrics) ChartComputed(string) {}
func (nopMetrics) TransitAnalyzed(int)  {}
func (nopMetrics) MatchScored(int)      {}

// Defaults are the fallback birth-location parameters applied when a request
// omits them.
type Defaults struct {
	Timezone  string
	Latitude  float64
	Longitude float64
}

// Service computes charts, transits, and match scores for resolved birth
// moments.  All methods are safe for concurrent use.
type Service struct {
	selector *SystemSelector
	defaults Defaults
	logger   logging.Logger
	metrics  Metrics
}

// NewService builds the astro service.  logger and metrics may be nil.
func NewService(selector *SystemSelector, defaults Defaults, logger logging.Logger, metrics Metrics) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if defaults.Timezone == "" {
		defaults.Timezone = calendar.DefaultTimezone
	}
	return &Service{selector: selector, defaults: defaults, logger: logger, metrics: metrics}
}

// InputEcho repeats the request parameters back to the caller after default
// substitution, so responses are self-describing.
type InputEcho struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ChartRequest is one birth moment.  Empty Time means midnight; empty
// Timezone and zero coordinates take the configured defaults.
type ChartRequest struct {
	Date      string
	Time      string
	Timezone  string
	Latitude  float64
	Longitude float64
}

// ChartResponse is the full chart payload for one birth moment.
type ChartResponse struct {
	Input             InputEcho   `json:"input"`
	ResolvedGregorian string      `json:"resolved_gregorian"`
	YearBE            int         `json:"year_be"`
	Weekday           string      `json:"weekday"`
	WeekdayThai       string      `json:"weekday_thai"`
	LocalTime         string      `json:"local_time"`
	UTCTime           string      `json:"utc_time"`
	Selection         Selection   `json:"zodiac_selection"`
	Chart             chart.Chart `json:"chart"`
}

// applyDefaults fills the blanks in a ChartRequest from the service defaults.
func (s *Service) applyDefaults(req ChartRequest) ChartRequest {
	if req.Timezone == "" {
		req.Timezone = s.defaults.Timezone
	}
	if req.Latitude == 0 && req.Longitude == 0 {
		req.Latitude = s.defaults.Latitude
		req.Longitude = s.defaults.Longitude
	}
	return req
}

// BuildChart resolves the request to a birth moment, selects the zodiac
// system, and computes the chart.  Only an unusable date produces an error;
// time, timezone, and coordinate problems degrade to defaults.
func (s *Service) BuildChart(ctx context.Context, req ChartRequest) (ChartResponse, error) {
	req = s.applyDefaults(req)

	res, err := calendar.ResolveWithFallback(req.Date, req.Time, req.Timezone)
	if err != nil {
		return ChartResponse{}, err
	}

	selection := s.selector.Select(ctx, res.Timezone, req.Latitude, req.Longitude)
	c := chart.Compute(res.Date, chart.TimeOffsetHours(req.Time), req.Latitude, selection.System)
	s.metrics.ChartComputed(string(selection.System))

	s.logger.Debug("chart computed",
		logging.String("date", res.Date.ISO()),
		logging.String("system", string(selection.System)),
		logging.String("selection_source", string(selection.Source)))

	return ChartResponse{
		Input: InputEcho{
			Date:      req.Date,
			Time:      req.Time,
			Timezone:  res.Timezone,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		ResolvedGregorian: res.Date.ISO(),
		YearBE:            res.Date.YearBE(),
		Weekday:           calendar.WeekdayEnglish(res.Weekday),
		WeekdayThai:       calendar.WeekdayThai(res.Weekday),
		LocalTime:         res.Time.Format(time.RFC3339),
		UTCTime:           res.Time.UTC().Format(time.RFC3339),
		Selection:         selection,
		Chart:             c,
	}, nil
}

// TransitRequest compares a natal moment against a transit moment at the
// same observer location.
type TransitRequest struct {
	BaseDate   string
	BaseTime   string
	TargetDate string
	TargetTime string
	Timezone   string
	Latitude   float64
	Longitude  float64
}

// TransitResponse reports the aspects between the two charts.
type TransitResponse struct {
	Base     ChartResponse `json:"base"`
	Target   ChartResponse `json:"target"`
	Transits []Transit     `json:"transits"`
}

// AnalyzeTransit computes both charts at the same location, which gives them
// the same zodiac selection, and reports conjunctions and oppositions per
// body.
func (s *Service) AnalyzeTransit(ctx context.Context, req TransitRequest) (TransitResponse, error) {
	base, err := s.BuildChart(ctx, ChartRequest{
		Date: req.BaseDate, Time: req.BaseTime, Timezone: req.Timezone,
		Latitude: req.Latitude, Longitude: req.Longitude,
	})
	if err != nil {
		return TransitResponse{}, err
	}

	target, err := s.BuildChart(ctx, ChartRequest{
		Date: req.TargetDate, Time: req.TargetTime, Timezone: req.Timezone,
		Latitude: req.Latitude, Longitude: req.Longitude,
	})
	if err != nil {
		return TransitResponse{}, err
	}

	transits := AnalyzeTransits(base.Chart, target.Chart)
	s.metrics.TransitAnalyzed(len(transits))

	return TransitResponse{Base: base, Target: target, Transits: transits}, nil
}

// MatchRequest pairs two birth moments for compatibility scoring.  A single
// timezone applies to both; coordinates are per person.
type MatchRequest struct {
	Date1      string
	Time1      string
	Latitude1  float64
	Longitude1 float64
	Date2      string
	Time2      string
	Latitude2  float64
	Longitude2 float64
	Timezone   string
}

// MatchResponse is the scored pairing plus both underlying charts.
type MatchResponse struct {
	PersonA ChartResponse `json:"person_a"`
	PersonB ChartResponse `json:"person_b"`
	Match   MatchResult   `json:"match"`
}

// ScorePair builds both charts and scores their compatibility.
func (s *Service) ScorePair(ctx context.Context, req MatchRequest) (MatchResponse, error) {
	a, err := s.BuildChart(ctx, ChartRequest{
		Date: req.Date1, Time: req.Time1, Timezone: req.Timezone,
		Latitude: req.Latitude1, Longitude: req.Longitude1,
	})
	if err != nil {
		return MatchResponse{}, err
	}

	b, err := s.BuildChart(ctx, ChartRequest{
		Date: req.Date2, Time: req.Time2, Timezone: req.Timezone,
		Latitude: req.Latitude2, Longitude: req.Longitude2,
	})
	if err != nil {
		return MatchResponse{}, err
	}

	match := ScoreMatch(a.Chart, b.Chart)
	s.metrics.MatchScored(match.Score)

	return MatchResponse{PersonA: a, PersonB: b, Match: match}, nil
}

//Personal.AI order the ending
