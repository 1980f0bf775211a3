package charting

import (
	"io"
	"math"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/format"
	"github.com/wcharczuk/go-chart/v2"
)

const maxDateTicks = 6

func (c TimeSeries) build(env buildEnv) *instance {
	points := append([]domain.TimeSeriesPoint{}, c.Points...)
	formatter := env.formatter

	tooltips := make([]string, len(points))
	for i, p := range points {
		tooltips[i] = "Vendas: " + formatter.Currency(p.Total)
	}

	series := make([]point, len(points))
	for i, p := range points {
		series[i] = point{X: float64(i), Y: p.Total}
	}
	series = decimate(series, env.decimationSamples)

	return &instance{
		id:       env.id,
		slot:     c.Slot(),
		surface:  env.surface,
		tooltips: tooltips,
		render: func(rp chart.RendererProvider, width, height int, w io.Writer) error {
			if len(points) == 0 {
				return renderPlaceholder(rp, width, height, w)
			}
			return timeSeriesChart(points, series, formatter, width, height).Render(rp, w)
		},
	}
}

func timeSeriesChart(points []domain.TimeSeriesPoint, series []point, formatter *format.Formatter, width, height int) chart.Chart {
	xValues := make([]float64, len(series))
	yValues := make([]float64, len(series))
	maxY := 0.0
	minY := 0.0
	for i, p := range series {
		xValues[i] = p.X
		yValues[i] = p.Y
		maxY = math.Max(maxY, p.Y)
		minY = math.Min(minY, p.Y)
	}
	if maxY <= minY {
		maxY = minY + 1
	}

	maxX := math.Max(float64(len(points)-1), 1)

	return chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding:   chart.Box{Top: 16, Left: 8, Right: 16, Bottom: 8},
			FillColor: colorBackground,
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxX},
			Ticks: dateTicks(points, maxX),
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: minY, Max: maxY * 1.1},
			ValueFormatter: func(v interface{}) string {
				return formatter.Currency(v)
			},
		},
		Series: []chart.Series{
			gradientFill{
				name:          "gradient",
				color:         colorPrimary,
				surfaceHeight: height,
				xValues:       xValues,
				yValues:       yValues,
			},
			chart.ContinuousSeries{
				Name: "Vendas",
				Style: chart.Style{
					StrokeColor: colorPrimary,
					StrokeWidth: 2,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}
}

// dateTicks distribui até maxDateTicks rótulos de data incluindo as duas pontas do eixo
func dateTicks(points []domain.TimeSeriesPoint, maxX float64) []chart.Tick {
	step := int(math.Ceil(float64(len(points)) / maxDateTicks))
	if step < 1 {
		step = 1
	}

	label := func(i int) string {
		if i < len(points) {
			return points[i].Date
		}
		return ""
	}

	var ticks []chart.Tick
	for i := 0; float64(i) < maxX; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: label(i)})
	}
	return append(ticks, chart.Tick{Value: maxX, Label: label(int(maxX))})
}
