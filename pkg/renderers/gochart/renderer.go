// Package gochart draws resolved charts with go-chart. Area, line and scatter
// views share one plot; vertical bar views render as a bar chart.
package gochart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/goliatone/go-chartgen/pkg/model"
	"github.com/goliatone/go-chartgen/pkg/render"
)

var (
	// ErrHorizontalBar is returned for horizontal bar views, which go-chart
	// cannot draw.
	ErrHorizontalBar = errors.New("gochart: horizontal bar views are not supported")
	// ErrMixedViews is returned when bar views and series views share a chart.
	ErrMixedViews = errors.New("gochart: bar and series views cannot share a chart")
	// ErrNoViews is returned for a chart without views.
	ErrNoViews = errors.New("gochart: chart has no views")
)

// Format selects the go-chart output backend.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Renderer implements render.Renderer on top of go-chart.
type Renderer struct {
	format Format
}

var _ render.Renderer = (*Renderer)(nil)

// NewSVG returns a renderer producing SVG documents.
func NewSVG() *Renderer {
	return &Renderer{format: FormatSVG}
}

// NewPNG returns a renderer producing PNG images.
func NewPNG() *Renderer {
	return &Renderer{format: FormatPNG}
}

func (r *Renderer) Name() string {
	return string(r.format)
}

func (r *Renderer) ContentType() string {
	if r.format == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// Render draws chart in the configured format.
func (r *Renderer) Render(ctx context.Context, c model.Chart, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(c.Views) == 0 {
		return nil, ErrNoViews
	}

	var bars, series int
	for _, view := range c.Views {
		switch view.Kind {
		case model.ViewKindHorizontalBar:
			return nil, ErrHorizontalBar
		case model.ViewKindVerticalBar:
			bars++
		default:
			series++
		}
	}
	if bars > 0 && series > 0 {
		return nil, ErrMixedViews
	}

	var graph interface {
		Render(chart.RendererProvider, io.Writer) error
	}
	if bars > 0 {
		bc, err := barChart(c)
		if err != nil {
			return nil, err
		}
		graph = bc
	} else {
		sc, err := seriesChart(c)
		if err != nil {
			return nil, err
		}
		graph = sc
	}

	var provider chart.RendererProvider = chart.SVG
	if r.format == FormatPNG {
		provider = chart.PNG
	}

	var buf bytes.Buffer
	if err := graph.Render(provider, &buf); err != nil {
		return nil, fmt.Errorf("gochart: render %s: %w", r.format, err)
	}
	return buf.Bytes(), nil
}
