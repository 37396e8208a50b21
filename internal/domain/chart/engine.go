package chart

import (
	"math"

	"github.com/siamhora/siamhora/internal/domain/calendar"
)

// Body names, in the fixed order charts are emitted.
const (
	BodySun       = "Sun"
	BodyMoon      = "Moon"
	BodyMercury   = "Mercury"
	BodyVenus     = "Venus"
	BodyMars      = "Mars"
	BodyJupiter   = "Jupiter"
	BodySaturn    = "Saturn"
	BodyAscendant = "Ascendant"
)

// Bodies lists the seven planetary bodies in emission order.
var Bodies = []string{
	BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars, BodyJupiter, BodySaturn,
}

// speedFactors scales the base longitude per body, approximating each body's
// relative angular speed along the ecliptic.
var speedFactors = map[string]float64{
	BodySun:     1.0,
	BodyMoon:    13.2,
	BodyMercury: 4.7,
	BodyVenus:   1.6,
	BodyMars:    0.8,
	BodyJupiter: 0.2,
	BodySaturn:  0.1,
}

// timeOffsetDegreesPerHour shifts every planetary longitude by this many
// degrees per hour past midnight.
const timeOffsetDegreesPerHour = 5.0

// Point is a single charted body: its ecliptic longitude and the sign that
// longitude falls in.  Sign is named per the chart's zodiac system, Thai for
// sidereal and Western for tropical.
type Point struct {
	Body      string  `json:"body"`
	Longitude float64 `json:"longitude"`
	SignIndex int     `json:"sign_index"`
	Sign      string  `json:"sign"`
}

// Chart is the full set of charted points for one birth moment.
type Chart struct {
	System ZodiacSystem `json:"system"`
	Points []Point      `json:"points"`
}

// Point returns the chart's point for the named body, or a zero Point if the
// body is not charted.
func (c Chart) Point(body string) (Point, bool) {
	for _, p := range c.Points {
		if p.Body == body {
			return p, true
		}
	}
	return Point{}, false
}

// wrap360 folds an angle into [0, 360).
func wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// baseLongitude derives the date's base ecliptic angle.  The day-of-year
// proxy (month*30+day) is folded into a 365-step cycle and scaled onto the
// full circle.
func baseLongitude(d calendar.NormalizedDate) float64 {
	return float64((d.Month*30+d.Day)%365) * (360.0 / 365.25)
}

// Compute builds a chart for the given date, wall-clock hour offset, and
// observer latitude.  timeOffsetHours is the decimal hours past midnight
// (e.g. 14.5 for 14:30); latitude only influences the Ascendant.  Compute
// never fails: every input produces a deterministic chart.
//
// The sidereal ayanamsa is subtracted from the base longitude before the
// per-body speed factors apply, so it propagates through each body scaled
// by that body's speed.
func Compute(d calendar.NormalizedDate, timeOffsetHours, latitude float64, system ZodiacSystem) Chart {
	base := baseLongitude(d)
	if system == SystemSidereal {
		base = wrap360(base - AyanamsaOffset)
	}

	points := make([]Point, 0, len(Bodies)+1)
	for _, body := range Bodies {
		lon := wrap360(base*speedFactors[body] + timeOffsetHours*timeOffsetDegreesPerHour)
		points = append(points, newPoint(body, lon, system))
	}

	asc := wrap360(base + timeOffsetHours*(latitude/10.0))
	points = append(points, newPoint(BodyAscendant, asc, system))

	return Chart{System: system, Points: points}
}

// newPoint rounds the longitude and resolves the sign name from the table
// matching the chart's system.
func newPoint(body string, lon float64, system ZodiacSystem) Point {
	lon = round2(lon)
	if lon >= 360.0 {
		// Rounding 359.995..359.999 up would leave the [0, 360) range.
		lon = 0
	}
	return Point{
		Body:      body,
		Longitude: lon,
		SignIndex: SignIndex(lon),
		Sign:      SignNameFor(lon, system),
	}
}

// TimeOffsetHours converts an HH:MM string to decimal hours past midnight.
// Unparsable input resolves to 0 (midnight); chart computation never rejects
// a time string.
func TimeOffsetHours(timeOfDay string) float64 {
	if timeOfDay == "" {
		return 0
	}
	h, m, err := calendar.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return 0
	}
	return float64(h) + float64(m)/60.0
}

//Personal.AI order the ending
