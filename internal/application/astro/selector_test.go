package astro

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siamhora/siamhora/internal/domain/chart"
)

type stubGeocoder struct {
	country string
	err     error
	calls   int
}

func (g *stubGeocoder) CountryAt(_ context.Context, _, _ float64) (string, error) {
	g.calls++
	return g.country, g.err
}

func TestSelect_CityFastPathSkipsGeocoder(t *testing.T) {
	geo := &stubGeocoder{country: "France"}
	sel := NewSystemSelector(geo, nil)

	got := sel.Select(context.Background(), "Asia/Bangkok", 13.75, 100.5)
	assert.Equal(t, chart.SystemSidereal, got.System)
	assert.Equal(t, SourceCityFastPath, got.Source)
	assert.Equal(t, "bangkok", got.Detail)
	assert.Zero(t, geo.calls, "fast path must not hit the geocoder")
}

func TestSelect_CityFastPathAllCities(t *testing.T) {
	sel := NewSystemSelector(nil, nil)
	zones := []string{
		"Asia/Bangkok", "Asia/Vientiane", "Asia/Yangon", "Asia/Phnom_Penh",
		"Asia/Colombo", "Asia/Kolkata", "Asia/Calcutta", "Asia/Dhaka",
	}
	for _, tz := range zones {
		got := sel.Select(context.Background(), tz, 0, 0)
		assert.Equal(t, chart.SystemSidereal, got.System, tz)
		assert.Equal(t, SourceCityFastPath, got.Source, tz)
	}
}

func TestSelect_GeocodedSiderealCountry(t *testing.T) {
	geo := &stubGeocoder{country: "Nepal"}
	sel := NewSystemSelector(geo, nil)

	got := sel.Select(context.Background(), "Asia/Kathmandu", 27.7, 85.3)
	assert.Equal(t, chart.SystemSidereal, got.System)
	assert.Equal(t, SourceGeocodedCountry, got.Source)
	assert.Equal(t, "nepal", got.Detail)
	assert.Equal(t, 1, geo.calls)
}

func TestSelect_GeocodedTropicalCountry(t *testing.T) {
	geo := &stubGeocoder{country: "Japan"}
	sel := NewSystemSelector(geo, nil)

	got := sel.Select(context.Background(), "Asia/Tokyo", 35.7, 139.7)
	assert.Equal(t, chart.SystemTropical, got.System)
	assert.Equal(t, SourceGeocodedCountry, got.Source)
}

func TestSelect_GeocoderFailureDegradesToRegionRule(t *testing.T) {
	geo := &stubGeocoder{err: errors.New("connection refused")}
	sel := NewSystemSelector(geo, nil)

	got := sel.Select(context.Background(), "Asia/Tokyo", 35.7, 139.7)
	assert.Equal(t, chart.SystemSidereal, got.System)
	assert.Equal(t, SourceTimezoneRegion, got.Source)
}

func TestSelect_NilGeocoderUsesRegionRule(t *testing.T) {
	sel := NewSystemSelector(nil, nil)

	got := sel.Select(context.Background(), "Asia/Tokyo", 35.7, 139.7)
	assert.Equal(t, chart.SystemSidereal, got.System)
	assert.Equal(t, SourceTimezoneRegion, got.Source)
}

func TestSelect_RegionRuleMatchesAnywhereInIdentifier(t *testing.T) {
	// The region rule is a substring match, so aliased identifiers that
	// embed "Asia/" past the first segment still select sidereal.
	sel := NewSystemSelector(nil, nil)

	got := sel.Select(context.Background(), "posix/Asia/Tokyo", 35.7, 139.7)
	assert.Equal(t, chart.SystemSidereal, got.System)
	assert.Equal(t, SourceTimezoneRegion, got.Source)
}

func TestSelect_DefaultTropical(t *testing.T) {
	sel := NewSystemSelector(nil, nil)

	got := sel.Select(context.Background(), "Europe/Paris", 48.8, 2.3)
	assert.Equal(t, chart.SystemTropical, got.System)
	assert.Equal(t, SourceDefault, got.Source)
}

func TestSelect_NeverErrorsOnGarbage(t *testing.T) {
	geo := &stubGeocoder{err: errors.New("boom")}
	sel := NewSystemSelector(geo, nil)

	for _, tz := range []string{"", "???", "Not/AZone", "UTC"} {
		got := sel.Select(context.Background(), tz, -999, 999)
		assert.True(t, got.System.Valid(), tz)
	}
}

//Personal.AI order the ending
