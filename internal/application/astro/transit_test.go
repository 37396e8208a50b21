package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamhora/siamhora/internal/domain/chart"
)

func TestSeparation_FoldsToShorterArc(t *testing.T) {
	assert.InDelta(t, 0, Separation(10, 10), 0.001)
	assert.InDelta(t, 20, Separation(350, 10), 0.001)
	assert.InDelta(t, 180, Separation(0, 180), 0.001)
	assert.InDelta(t, 170, Separation(355, 165), 0.001)
	assert.InDelta(t, 90, Separation(45, 315), 0.001)
}

func TestClassifyAspect(t *testing.T) {
	aspect, ok := ClassifyAspect(0)
	require.True(t, ok)
	assert.Equal(t, AspectConjunction, aspect)

	aspect, ok = ClassifyAspect(10)
	require.True(t, ok)
	assert.Equal(t, AspectConjunction, aspect)

	_, ok = ClassifyAspect(10.01)
	assert.False(t, ok)

	_, ok = ClassifyAspect(169.99)
	assert.False(t, ok)

	aspect, ok = ClassifyAspect(170)
	require.True(t, ok)
	assert.Equal(t, AspectOpposition, aspect)

	aspect, ok = ClassifyAspect(180)
	require.True(t, ok)
	assert.Equal(t, AspectOpposition, aspect)
}

func singleBodyChart(body string, lon float64) chart.Chart {
	return chart.Chart{
		System: chart.SystemTropical,
		Points: []chart.Point{{Body: body, Longitude: lon}},
	}
}

func TestAnalyzeTransits_ConjunctionAcrossZeroDegrees(t *testing.T) {
	// 358° and 5° are 7° apart the short way around.
	natal := singleBodyChart(chart.BodySun, 358)
	transit := singleBodyChart(chart.BodySun, 5)

	out := AnalyzeTransits(natal, transit)
	require.Len(t, out, 1)
	assert.Equal(t, chart.BodySun, out[0].Body)
	assert.Equal(t, AspectConjunction, out[0].Aspect)
	assert.InDelta(t, 7, out[0].Separation, 0.001)
}

func TestAnalyzeTransits_Opposition(t *testing.T) {
	natal := singleBodyChart(chart.BodyMars, 10)
	transit := singleBodyChart(chart.BodyMars, 185)

	out := AnalyzeTransits(natal, transit)
	require.Len(t, out, 1)
	assert.Equal(t, AspectOpposition, out[0].Aspect)
}

func TestAnalyzeTransits_OmitsMidRangeSeparations(t *testing.T) {
	natal := singleBodyChart(chart.BodyVenus, 0)
	transit := singleBodyChart(chart.BodyVenus, 90)

	assert.Empty(t, AnalyzeTransits(natal, transit))
}

func TestAnalyzeTransits_IgnoresAscendant(t *testing.T) {
	natal := singleBodyChart(chart.BodyAscendant, 0)
	transit := singleBodyChart(chart.BodyAscendant, 1)

	assert.Empty(t, AnalyzeTransits(natal, transit))
}

func TestAnalyzeTransits_FullCharts(t *testing.T) {
	d := mustDate(t, "27/10/2568")
	natal := chart.Compute(d, 0, 13.75, chart.SystemTropical)
	// Identical charts put every body in exact conjunction.
	out := AnalyzeTransits(natal, natal)
	require.Len(t, out, len(chart.Bodies))
	for _, tr := range out {
		assert.Equal(t, AspectConjunction, tr.Aspect)
		assert.Zero(t, tr.Separation)
	}
}

//Personal.AI order the ending
