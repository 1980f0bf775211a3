package charting

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/format"
	"github.com/wcharczuk/go-chart/v2"
)

// doughnutCutout é a fração do raio recortada no centro
const doughnutCutout = 0.6

func (c Distribution) build(env buildEnv) *instance {
	entries := append([]domain.PaymentDistributionEntry{}, c.Entries...)
	formatter := env.formatter

	total := 0.0
	for _, e := range entries {
		total += e.Count
	}

	tooltips := make([]string, len(entries))
	for i, e := range entries {
		tooltips[i] = fmt.Sprintf("%s: %s (%d%%)", e.Method, formatter.Number(e.Count), format.Percentage(e.Count, total))
	}

	caption := "Total: " + strconv.FormatFloat(total, 'f', -1, 64)

	return &instance{
		id:       env.id,
		slot:     c.Slot(),
		surface:  env.surface,
		tooltips: tooltips,
		render: func(rp chart.RendererProvider, width, height int, w io.Writer) error {
			if total <= 0 {
				return renderPlaceholder(rp, width, height, w, caption)
			}
			return distributionChart(entries, caption, width, height).Render(rp, w)
		},
	}
}

func distributionChart(entries []domain.PaymentDistributionEntry, caption string, width, height int) chart.PieChart {
	values := make([]chart.Value, 0, len(entries))
	nonZero := 0
	var sliceStyle chart.Style
	for i, e := range entries {
		style := sliceStyleFor(i)
		if e.Count > 0 {
			nonZero++
			sliceStyle = style
		}
		// Sem rótulo na fatia: o recorte central cobriria o texto. O método fica no tooltip.
		values = append(values, chart.Value{
			Value: e.Count,
			Style: style,
		})
	}

	pie := chart.PieChart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: colorBackground,
		},
		Values: values,
		// Elements rodam depois da pintura das fatias
		Elements: []chart.Renderable{
			centerOverlay(caption),
		},
	}

	// Com uma única fatia o go-chart pinta com SliceStyle e ignora Value.Style
	if nonZero == 1 {
		pie.SliceStyle = sliceStyle
	}

	return pie
}

func sliceStyleFor(index int) chart.Style {
	return chart.Style{
		FillColor:   paletteColor(index),
		StrokeColor: colorBackground,
		StrokeWidth: 2,
	}
}

// centerOverlay recorta o centro da pizza e escreve o total no centro geométrico
func centerOverlay(caption string) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		cx, cy := canvasBox.Center()
		radius := float64(min(canvasBox.Width(), canvasBox.Height())) / 2

		r.SetFillColor(colorBackground)
		r.SetStrokeColor(colorBackground)
		r.SetStrokeWidth(0)
		r.Circle(radius*doughnutCutout, cx, cy)
		r.Fill()

		if defaults.Font != nil {
			r.SetFont(defaults.Font)
		}
		r.SetFontSize(14)
		r.SetFontColor(colorText)

		box := r.MeasureText(caption)
		r.Text(caption, cx-box.Width()/2, cy+box.Height()/2)
	}
}
