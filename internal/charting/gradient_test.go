package charting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientAlpha(t *testing.T) {
	assert.Equal(t, 0.0, gradientAlpha(0, 320))
	assert.InDelta(t, 0.35, gradientAlpha(320, 320), 1e-9)
	assert.InDelta(t, 0.175, gradientAlpha(160, 320), 1e-9)
	assert.Equal(t, 0.0, gradientAlpha(10, 0))
	assert.InDelta(t, 0.35, gradientAlpha(400, 320), 1e-9)

	assert.Less(t, gradientAlpha(100, 320), gradientAlpha(200, 320))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, uint8(0), withAlpha(colorPrimary, -1).A)
	assert.Equal(t, uint8(255), withAlpha(colorPrimary, 2).A)
	assert.Equal(t, uint8(89), withAlpha(colorPrimary, 0.35).A)
}

func TestBandPolygon(t *testing.T) {
	line := []pixel{{x: 0, y: 50}, {x: 100, y: 50}}

	assert.Nil(t, bandPolygon(line, 0, 40), "faixa acima da linha fica vazia")

	clipped := bandPolygon(line, 40, 60)
	require.NotEmpty(t, clipped)
	for _, p := range clipped {
		assert.GreaterOrEqual(t, p.y, 50.0)
		assert.LessOrEqual(t, p.y, 60.0)
	}

	full := bandPolygon(line, 60, 80)
	require.NotEmpty(t, full)
	for _, p := range full {
		assert.True(t, p.y == 60 || p.y == 80)
	}
}

func TestBandPolygon_InsertsCrossings(t *testing.T) {
	line := []pixel{{x: 0, y: 0}, {x: 100, y: 100}}

	polygon := bandPolygon(line, 25, 75)
	require.NotEmpty(t, polygon)

	var xs []float64
	for _, p := range polygon {
		xs = append(xs, p.x)
	}
	assert.Contains(t, xs, 25.0)
	assert.Contains(t, xs, 75.0)
}

func TestDecimate(t *testing.T) {
	points := make([]point, 1000)
	for i := range points {
		points[i] = point{X: float64(i), Y: math.Sin(float64(i) / 20)}
	}
	points[500].Y = 50

	sampled := decimate(points, 250)
	require.Len(t, sampled, 250)
	assert.Equal(t, points[0], sampled[0])
	assert.Equal(t, points[999], sampled[249])

	spike := false
	for i := 1; i < len(sampled); i++ {
		assert.Greater(t, sampled[i].X, sampled[i-1].X)
		if sampled[i].Y == 50 {
			spike = true
		}
	}
	assert.True(t, spike, "o pico deve ser preservado")

	small := points[:100]
	assert.Equal(t, small, decimate(small, 250))
	assert.Equal(t, points, decimate(points, 0))
}

func TestDateTicks(t *testing.T) {
	ticks := dateTicks(samplePoints(1), 1)
	require.Len(t, ticks, 2)
	assert.Equal(t, 0.0, ticks[0].Value)
	assert.Equal(t, 1.0, ticks[1].Value)
	assert.Empty(t, ticks[1].Label)

	ticks = dateTicks(samplePoints(30), 29)
	assert.LessOrEqual(t, len(ticks), maxDateTicks+1)
	assert.Equal(t, 29.0, ticks[len(ticks)-1].Value)
}
