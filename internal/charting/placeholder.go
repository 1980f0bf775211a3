package charting

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

const placeholderText = "Sem dados"

// renderPlaceholder pinta o quadro vazio usado quando não há dados para o gráfico.
// Linhas extras de texto são desenhadas abaixo da mensagem principal.
func renderPlaceholder(rp chart.RendererProvider, width, height int, w io.Writer, extra ...string) error {
	r, err := rp(width, height)
	if err != nil {
		return err
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}

	r.SetFillColor(colorBackground)
	r.SetStrokeWidth(0)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontSize(14)
	r.SetFontColor(colorMuted)

	lines := append([]string{placeholderText}, extra...)
	y := height / 2
	for _, line := range lines {
		box := r.MeasureText(line)
		r.Text(line, (width-box.Width())/2, y)
		y += box.Height() + 6
	}

	return r.Save(w)
}
