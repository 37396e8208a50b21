package client

import (
	"context"
	"fmt"
	"net/url"
)

// WeekdayResult is the /api/weekday payload.
type WeekdayResult struct {
	Input             map[string]string `json:"input"`
	ResolvedGregorian string            `json:"resolved_gregorian"`
	YearBE            int               `json:"year_be"`
	WeekdayIndex      int               `json:"weekday_index"`
	Weekday           string            `json:"weekday"`
	WeekdayThai       string            `json:"weekday_thai"`
}

// Weekday resolves a date's weekday.
func (c *Client) Weekday(ctx context.Context, date, timezone string) (WeekdayResult, error) {
	q := url.Values{}
	q.Set("date", date)
	if timezone != "" {
		q.Set("timezone", timezone)
	}

	var out WeekdayResult
	err := c.get(ctx, "/api/weekday", q, &out)
	return out, err
}

// ThaiWeekdayResult is the /api/weekday-th payload.
type ThaiWeekdayResult struct {
	Input              map[string]string `json:"input"`
	ResolvedGregorian  string            `json:"resolved_gregorian"`
	YearBE             int               `json:"year_be"`
	WeekdayThai        string            `json:"weekday_thai"`
	WeekdayThaiCompact string            `json:"weekday_thai_compact"`
	MonthThai          string            `json:"month_thai"`
	ThaiDate           string            `json:"thai_date"`
}

// WeekdayThai resolves a date to its Thai rendering.  style is "short",
// "long", or "" for the default.
func (c *Client) WeekdayThai(ctx context.Context, date, style, timezone string) (ThaiWeekdayResult, error) {
	q := url.Values{}
	q.Set("date", date)
	if style != "" {
		q.Set("style", style)
	}
	if timezone != "" {
		q.Set("timezone", timezone)
	}

	var out ThaiWeekdayResult
	err := c.get(ctx, "/api/weekday-th", q, &out)
	return out, err
}

// ValidationResult is the /api/validate-weekday payload.
type ValidationResult struct {
	Weekday     string `json:"weekday"`
	WeekdayThai string `json:"weekday_thai"`
	ISODate     string `json:"iso_date"`
	Source      string `json:"source"`
}

// ValidateWeekday resolves a weekday through the verification gateway.
func (c *Client) ValidateWeekday(ctx context.Context, date, timezone string) (ValidationResult, error) {
	q := url.Values{}
	q.Set("date", date)
	if timezone != "" {
		q.Set("timezone", timezone)
	}

	var out ValidationResult
	err := c.get(ctx, "/api/validate-weekday", q, &out)
	return out, err
}

// ChartPoint is one charted body.  Sign is named per the chart's zodiac
// system: Thai for sidereal, Western for tropical.
type ChartPoint struct {
	Body      string  `json:"body"`
	Longitude float64 `json:"longitude"`
	SignIndex int     `json:"sign_index"`
	Sign      string  `json:"sign"`
}

// Selection explains the chosen zodiac system.
type Selection struct {
	System string `json:"system"`
	Source string `json:"source"`
	Detail string `json:"detail,omitempty"`
}

// ChartResult is the /api/astro-chart payload.
type ChartResult struct {
	ResolvedGregorian string    `json:"resolved_gregorian"`
	YearBE            int       `json:"year_be"`
	Weekday           string    `json:"weekday"`
	WeekdayThai       string    `json:"weekday_thai"`
	LocalTime         string    `json:"local_time"`
	UTCTime           string    `json:"utc_time"`
	Selection         Selection `json:"zodiac_selection"`
	Chart             struct {
		System string       `json:"system"`
		Points []ChartPoint `json:"points"`
	} `json:"chart"`
}

// ChartParams are the /api/astro-chart inputs.  Zero coordinates defer to
// the server's configured defaults.
type ChartParams struct {
	Date     string
	Time     string
	Timezone string
	Lat      float64
	Lon      float64
}

func (p ChartParams) values(prefix string) url.Values {
	q := url.Values{}
	q.Set(prefix+"date", p.Date)
	if p.Time != "" {
		q.Set(prefix+"time", p.Time)
	}
	if p.Timezone != "" {
		q.Set("timezone", p.Timezone)
	}
	if p.Lat != 0 || p.Lon != 0 {
		q.Set("lat", fmt.Sprintf("%g", p.Lat))
		q.Set("lon", fmt.Sprintf("%g", p.Lon))
	}
	return q
}

// Chart computes a birth chart.
func (c *Client) Chart(ctx context.Context, params ChartParams) (ChartResult, error) {
	var out ChartResult
	err := c.get(ctx, "/api/astro-chart", params.values(""), &out)
	return out, err
}

// TransitAspect is one reported aspect.
type TransitAspect struct {
	Body             string  `json:"body"`
	NatalLongitude   float64 `json:"natal_longitude"`
	TransitLongitude float64 `json:"transit_longitude"`
	Separation       float64 `json:"separation"`
	Aspect           string  `json:"aspect"`
}

// TransitResult is the /api/astro-transit payload.
type TransitResult struct {
	Base     ChartResult     `json:"base"`
	Target   ChartResult     `json:"target"`
	Transits []TransitAspect `json:"transits"`
}

// Transit compares a natal moment against a transit moment.
func (c *Client) Transit(ctx context.Context, base, target ChartParams) (TransitResult, error) {
	q := base.values("base_")
	for k, vs := range target.values("target_") {
		if k == "timezone" || k == "lat" || k == "lon" {
			continue
		}
		for _, v := range vs {
			q.Set(k, v)
		}
	}

	var out TransitResult
	err := c.get(ctx, "/api/astro-transit", q, &out)
	return out, err
}

// BodyMatch is the per-body match contribution.
type BodyMatch struct {
	Body     string `json:"body"`
	SignA    string `json:"sign_a"`
	SignB    string `json:"sign_b"`
	SameSign bool   `json:"same_sign"`
	Points   int    `json:"points"`
}

// MatchResult is the /api/astro-match payload.
type MatchResult struct {
	PersonA ChartResult `json:"person_a"`
	PersonB ChartResult `json:"person_b"`
	Match   struct {
		Score  int         `json:"score"`
		Bodies []BodyMatch `json:"bodies"`
	} `json:"match"`
}

// Match scores the compatibility of two birth moments.
func (c *Client) Match(ctx context.Context, a, b ChartParams, timezone string) (MatchResult, error) {
	q := url.Values{}
	q.Set("date1", a.Date)
	q.Set("date2", b.Date)
	if a.Time != "" {
		q.Set("time1", a.Time)
	}
	if b.Time != "" {
		q.Set("time2", b.Time)
	}
	if a.Lat != 0 || a.Lon != 0 {
		q.Set("lat1", fmt.Sprintf("%g", a.Lat))
		q.Set("lon1", fmt.Sprintf("%g", a.Lon))
	}
	if b.Lat != 0 || b.Lon != 0 {
		q.Set("lat2", fmt.Sprintf("%g", b.Lat))
		q.Set("lon2", fmt.Sprintf("%g", b.Lon))
	}
	if timezone != "" {
		q.Set("timezone", timezone)
	}

	var out MatchResult
	err := c.get(ctx, "/api/astro-match", q, &out)
	return out, err
}

// Health probes the liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	var out map[string]interface{}
	return c.get(ctx, "/healthz", nil, &out)
}

//Personal.AI order the ending
