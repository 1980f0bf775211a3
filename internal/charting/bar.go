package charting

import (
	"io"
	"math"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/format"
	"github.com/wcharczuk/go-chart/v2"
)

func (c RankedBar) build(env buildEnv) *instance {
	products := c.Products
	if len(products) > domain.MaxTopProducts {
		products = products[:domain.MaxTopProducts]
	}
	products = append([]domain.TopProductEntry{}, products...)
	formatter := env.formatter

	tooltips := make([]string, len(products))
	for i, p := range products {
		tooltips[i] = "Unidades: " + formatter.Number(p.Sold)
	}

	return &instance{
		id:       env.id,
		slot:     c.Slot(),
		surface:  env.surface,
		tooltips: tooltips,
		render: func(rp chart.RendererProvider, width, height int, w io.Writer) error {
			if len(products) == 0 {
				return renderPlaceholder(rp, width, height, w)
			}
			return rankedBarChart(products, formatter, width, height).Render(rp, w)
		},
	}
}

func rankedBarChart(products []domain.TopProductEntry, formatter *format.Formatter, width, height int) chart.BarChart {
	bars := make([]chart.Value, len(products))
	maxY := 0.0
	for i, p := range products {
		color := paletteColor(i)
		bars[i] = chart.Value{
			Label: p.Name,
			Value: p.Sold,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
		maxY = math.Max(maxY, p.Sold)
	}
	if maxY <= 0 {
		maxY = 1
	}

	barWidth := width / (2*len(products) + 1)
	if barWidth < 8 {
		barWidth = 8
	}

	return chart.BarChart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding:   chart.Box{Top: 24, Left: 8, Right: 8, Bottom: 8},
			FillColor: colorBackground,
		},
		BarWidth:   barWidth,
		BarSpacing: barWidth / 2,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
			ValueFormatter: func(v interface{}) string {
				return formatter.Number(v)
			},
		},
		Bars: bars,
	}
}
