// Package astro orchestrates the chart domain: zodiac system selection,
// chart computation, transit analysis, and compatibility scoring.
package astro

import (
	"context"
	"strings"

	"github.com/siamhora/siamhora/internal/domain/chart"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
)

// Geocoder resolves a coordinate to its country name.  Implementations live
// in the infrastructure layer; the selector only needs the country string.
type Geocoder interface {
	CountryAt(ctx context.Context, lat, lon float64) (string, error)
}

// SelectionSource records which rule chose the zodiac system, so responses
// can explain themselves.
type SelectionSource string

const (
	// SourceCityFastPath means the timezone string named a known sidereal city.
	SourceCityFastPath SelectionSource = "city_fast_path"
	// SourceGeocodedCountry means the coordinate reverse-geocoded to a country
	// with a known preference.
	SourceGeocodedCountry SelectionSource = "geocoded_country"
	// SourceTimezoneRegion means the "Asia/" timezone region decided, because
	// geocoding was unavailable.
	SourceTimezoneRegion SelectionSource = "timezone_region"
	// SourceDefault means no rule matched and the tropical default applied.
	SourceDefault SelectionSource = "default"
)

// Selection is a chosen zodiac system together with the rule that chose it.
type Selection struct {
	System chart.ZodiacSystem `json:"system"`
	Source SelectionSource    `json:"source"`
	Detail string             `json:"detail,omitempty"`
}

// siderealCities are lowercase city tokens whose presence in a timezone
// identifier immediately selects the sidereal zodiac.
var siderealCities = []string{
	"bangkok", "vientiane", "yangon", "phnom_penh",
	"colombo", "kolkata", "calcutta", "dhaka",
}

// siderealCountries are lowercase country names whose astrological tradition
// uses the sidereal zodiac.
var siderealCountries = map[string]bool{
	"thailand":   true,
	"india":      true,
	"sri lanka":  true,
	"myanmar":    true,
	"laos":       true,
	"cambodia":   true,
	"nepal":      true,
	"bangladesh": true,
}

// SystemSelector picks tropical or sidereal for a birth location.  It never
// returns an error; every failure degrades to a weaker rule and ultimately
// to the tropical default.
type SystemSelector struct {
	geocoder Geocoder
	logger   logging.Logger
}

// NewSystemSelector builds a selector.  geocoder may be nil, in which case
// the geocoded-country tier is skipped entirely.
func NewSystemSelector(geocoder Geocoder, logger logging.Logger) *SystemSelector {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &SystemSelector{geocoder: geocoder, logger: logger}
}

// Select chooses the zodiac system for a timezone identifier and coordinate.
//
// Tier 1 checks the timezone string for a known city token and avoids any
// network call.  Tier 2 reverse-geocodes the coordinate and matches the
// country.  Tier 3, used only when geocoding is unavailable or fails, keeps
// sidereal for any "Asia/" timezone.  Everything else is tropical.
func (s *SystemSelector) Select(ctx context.Context, tz string, lat, lon float64) Selection {
	lowered := strings.ToLower(tz)

	for _, city := range siderealCities {
		if strings.Contains(lowered, city) {
			return Selection{System: chart.SystemSidereal, Source: SourceCityFastPath, Detail: city}
		}
	}

	if s.geocoder != nil {
		country, err := s.geocoder.CountryAt(ctx, lat, lon)
		if err == nil && country != "" {
			key := strings.ToLower(strings.TrimSpace(country))
			if siderealCountries[key] {
				return Selection{System: chart.SystemSidereal, Source: SourceGeocodedCountry, Detail: key}
			}
			return Selection{System: chart.SystemTropical, Source: SourceGeocodedCountry, Detail: key}
		}
		if err != nil {
			s.logger.Warn("reverse geocode failed, degrading to timezone region rule",
				logging.Float64("lat", lat), logging.Float64("lon", lon), logging.Err(err))
		}
	}

	if strings.Contains(lowered, "asia/") {
		return Selection{System: chart.SystemSidereal, Source: SourceTimezoneRegion, Detail: "asia"}
	}

	return Selection{System: chart.SystemTropical, Source: SourceDefault}
}

//Personal.AI order the ending
