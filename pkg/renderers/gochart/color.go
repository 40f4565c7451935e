package gochart

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/goliatone/go-chartgen/pkg/model"
)

func toDrawing(c model.Color) drawing.Color {
	if c.RGB != nil {
		return drawing.Color{R: c.RGB.R, G: c.RGB.G, B: c.RGB.B, A: 255}
	}
	return drawing.ColorFromHex(strings.TrimPrefix(strings.TrimSpace(c.Hex), "#"))
}

func colorOrTransparent(c *model.Color) drawing.Color {
	if c == nil {
		return drawing.ColorTransparent
	}
	return toDrawing(*c)
}
