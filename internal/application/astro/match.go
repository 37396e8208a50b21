package astro

import (
	"math"

	"github.com/siamhora/siamhora/internal/domain/chart"
)

// Compatibility scoring weights.
const (
	sameSignPoints = 25
	nearbyPoints   = 15
	nearbyOrb      = 30.0
	maxMatchScore  = 100
)

// matchBodies are the bodies that contribute to a compatibility score.
var matchBodies = []string{chart.BodySun, chart.BodyMoon, chart.BodyVenus, chart.BodyMars}

// BodyMatch is the per-body contribution to a compatibility score.
type BodyMatch struct {
	Body     string `json:"body"`
	SignA    string `json:"sign_a"`
	SignB    string `json:"sign_b"`
	SameSign bool   `json:"same_sign"`
	Points   int    `json:"points"`
}

// MatchResult is a scored pairing of two charts.
type MatchResult struct {
	Score  int         `json:"score"`
	Bodies []BodyMatch `json:"bodies"`
}

// ScoreMatch scores the compatibility of two charts over the Sun, Moon,
// Venus, and Mars.  A shared sign is worth 25 points; longitudes within 30
// degrees of each other (unfolded) are worth 15; anything else is 0.  The
// total is capped at 100.
func ScoreMatch(a, b chart.Chart) MatchResult {
	res := MatchResult{Bodies: make([]BodyMatch, 0, len(matchBodies))}

	for _, body := range matchBodies {
		pa, okA := a.Point(body)
		pb, okB := b.Point(body)
		if !okA || !okB {
			continue
		}

		bm := BodyMatch{Body: body, SignA: pa.Sign, SignB: pb.Sign}
		switch {
		case pa.SignIndex == pb.SignIndex:
			bm.SameSign = true
			bm.Points = sameSignPoints
		case math.Abs(pa.Longitude-pb.Longitude) < nearbyOrb:
			bm.Points = nearbyPoints
		}

		res.Score += bm.Points
		res.Bodies = append(res.Bodies, bm)
	}

	if res.Score > maxMatchScore {
		res.Score = maxMatchScore
	}
	return res
}

//Personal.AI order the ending
