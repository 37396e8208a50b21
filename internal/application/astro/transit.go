package astro

import (
	"math"

	"github.com/siamhora/siamhora/internal/domain/chart"
)

// Aspect names the angular relationships the analyzer reports.
type Aspect string

const (
	AspectConjunction Aspect = "conjunction"
	AspectOpposition  Aspect = "opposition"
)

// Aspect orbs in degrees.  Separations are folded to [0, 180] before
// classification, so the opposition band is an upper range.
const (
	conjunctionOrb = 10.0
	oppositionMin  = 170.0
)

// Transit is one reported aspect between a natal body and its transiting
// counterpart.
type Transit struct {
	Body             string  `json:"body"`
	NatalLongitude   float64 `json:"natal_longitude"`
	TransitLongitude float64 `json:"transit_longitude"`
	Separation       float64 `json:"separation"`
	Aspect           Aspect  `json:"aspect"`
}

// Separation folds the angular distance between two longitudes into
// [0, 180], always taking the shorter way around the circle.
func Separation(a, b float64) float64 {
	sep := math.Mod(math.Abs(a-b), 360.0)
	if sep > 180.0 {
		sep = 360.0 - sep
	}
	return sep
}

// ClassifyAspect reports the aspect for a folded separation, if any.
func ClassifyAspect(sep float64) (Aspect, bool) {
	switch {
	case sep <= conjunctionOrb:
		return AspectConjunction, true
	case sep >= oppositionMin:
		return AspectOpposition, true
	default:
		return "", false
	}
}

// AnalyzeTransits compares each natal body against the same body in the
// transit chart and reports those within a conjunction or opposition orb.
// Bodies outside both orbs are omitted.  The Ascendant is excluded; it is a
// point of the natal frame, not a transiting body.
func AnalyzeTransits(natal, transit chart.Chart) []Transit {
	out := make([]Transit, 0, len(chart.Bodies))
	for _, body := range chart.Bodies {
		np, ok := natal.Point(body)
		if !ok {
			continue
		}
		tp, ok := transit.Point(body)
		if !ok {
			continue
		}

		sep := Separation(np.Longitude, tp.Longitude)
		aspect, ok := ClassifyAspect(sep)
		if !ok {
			continue
		}

		out = append(out, Transit{
			Body:             body,
			NatalLongitude:   np.Longitude,
			TransitLongitude: tp.Longitude,
			Separation:       math.Round(sep*100) / 100,
			Aspect:           aspect,
		})
	}
	return out
}

//Personal.AI order the ending
