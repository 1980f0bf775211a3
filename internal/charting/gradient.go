package charting

import (
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	gradientBaseAlpha = 0.35
	gradientBands     = 24
)

// gradientAlpha dá a opacidade do preenchimento na linha y da superfície:
// gradientBaseAlpha na base (y = height) e zero no topo (y = 0)
func gradientAlpha(y, height int) float64 {
	if height <= 0 {
		return 0
	}

	ratio := float64(y) / float64(height)
	return gradientBaseAlpha * math.Max(0, math.Min(1, ratio))
}

// gradientFill é uma série que pinta a área sob a linha em faixas
// horizontais, cada uma com a opacidade do gradiente na sua altura
type gradientFill struct {
	name          string
	color         drawing.Color
	surfaceHeight int
	xValues       []float64
	yValues       []float64
}

func (g gradientFill) GetName() string {
	return g.name
}

func (g gradientFill) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (g gradientFill) GetStyle() chart.Style {
	return chart.Style{}
}

func (g gradientFill) Validate() error {
	return nil
}

func (g gradientFill) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	if len(g.xValues) < 2 || canvasBox.Height() <= 0 {
		return
	}

	line := make([]pixel, len(g.xValues))
	for i := range g.xValues {
		line[i] = pixel{
			x: float64(canvasBox.Left + xrange.Translate(g.xValues[i])),
			y: float64(canvasBox.Bottom - yrange.Translate(g.yValues[i])),
		}
	}

	bandHeight := float64(canvasBox.Height()) / gradientBands
	for band := 0; band < gradientBands; band++ {
		top := float64(canvasBox.Top) + float64(band)*bandHeight
		bottom := top + bandHeight

		polygon := bandPolygon(line, top, bottom)
		if len(polygon) < 3 {
			continue
		}

		middle := int((top + bottom) / 2)
		r.SetFillColor(withAlpha(g.color, gradientAlpha(middle, g.surfaceHeight)))
		r.SetStrokeWidth(0)
		r.MoveTo(int(math.Round(polygon[0].x)), int(math.Round(polygon[0].y)))
		for _, p := range polygon[1:] {
			r.LineTo(int(math.Round(p.x)), int(math.Round(p.y)))
		}
		r.Close()
		r.Fill()
	}
}

type pixel struct {
	x, y float64
}

// bandPolygon recorta a área entre a linha e a base da faixa [top, bottom].
// Em pixels y cresce para baixo, então a área fica onde y >= linha.
func bandPolygon(line []pixel, top, bottom float64) []pixel {
	var edge []pixel
	for i := 0; i < len(line)-1; i++ {
		a, b := line[i], line[i+1]
		edge = append(edge, a)
		for _, t := range crossings(a, b, top, bottom) {
			edge = append(edge, pixel{x: a.x + (b.x-a.x)*t, y: a.y + (b.y-a.y)*t})
		}
	}
	edge = append(edge, line[len(line)-1])

	covered := false
	for i := range edge {
		edge[i].y = math.Max(top, math.Min(bottom, edge[i].y))
		if edge[i].y < bottom {
			covered = true
		}
	}
	if !covered {
		return nil
	}

	polygon := make([]pixel, 0, len(edge)+2)
	polygon = append(polygon, pixel{x: edge[0].x, y: bottom})
	polygon = append(polygon, edge...)
	return append(polygon, pixel{x: edge[len(edge)-1].x, y: bottom})
}

// crossings devolve, em ordem, os parâmetros t em (0, 1) onde o segmento cruza top ou bottom
func crossings(a, b pixel, top, bottom float64) []float64 {
	if a.y == b.y {
		return nil
	}

	var ts []float64
	for _, level := range []float64{top, bottom} {
		t := (level - a.y) / (b.y - a.y)
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	sort.Float64s(ts)
	return ts
}
