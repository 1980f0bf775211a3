package charting

import (
	"strings"

	"github.com/vfg2006/sales-dashboard/pkg/format"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	colorPrimary    = hexColor("#3f51b5")
	colorBackground = drawing.ColorWhite
	colorText       = hexColor("#424242")
	colorMuted      = hexColor("#9e9e9e")
)

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func paletteColor(index int) drawing.Color {
	return hexColor(format.PaletteColor(index))
}

func withAlpha(c drawing.Color, alpha float64) drawing.Color {
	switch {
	case alpha <= 0:
		c.A = 0
	case alpha >= 1:
		c.A = 255
	default:
		c.A = uint8(alpha*255 + 0.5)
	}
	return c
}
