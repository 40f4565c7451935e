package gochart

import (
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/goliatone/go-chartgen/pkg/model"
)

const (
	dotWidth    = 4.0
	strokeWidth = 2.0
)

func seriesChart(c model.Chart) (*chart.Chart, error) {
	horizontal := c.Views[0].Horizontal
	vertical := c.Views[0].Vertical

	xAxis, err := xAxisFor(horizontal, axisLabel(c, model.AxisPositionTop, model.AxisPositionBottom))
	if err != nil {
		return nil, err
	}
	yAxis, err := yAxisFor(vertical, axisLabel(c, model.AxisPositionLeft, model.AxisPositionRight))
	if err != nil {
		return nil, err
	}

	graph := &chart.Chart{
		Title:      c.Title,
		Width:      c.Geometry.Width,
		Height:     c.Geometry.Height,
		Background: chart.Style{Padding: padding(c.Geometry)},
		XAxis:      xAxis,
		YAxis:      yAxis,
	}

	for i, view := range c.Views {
		xs, ys, err := coordinates(view)
		if err != nil {
			return nil, fmt.Errorf("gochart: view %d: %w", i, err)
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s %d", view.Kind, i+1),
			XValues: xs,
			YValues: ys,
			Style:   seriesStyle(view),
		})
	}
	return graph, nil
}

// coordinates places scalar values at their category index and points at
// their own x.
func coordinates(view model.View) ([]float64, []float64, error) {
	switch {
	case len(view.Values.Points) > 0:
		xs := make([]float64, len(view.Values.Points))
		ys := make([]float64, len(view.Values.Points))
		for i, p := range view.Values.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		return xs, ys, nil
	case len(view.Values.Scalar) > 0:
		xs := make([]float64, len(view.Values.Scalar))
		for i := range xs {
			xs[i] = float64(i)
		}
		return xs, append([]float64(nil), view.Values.Scalar...), nil
	default:
		return nil, nil, errors.New("no values to draw")
	}
}

func seriesStyle(view model.View) chart.Style {
	style := chart.Style{
		StrokeWidth: strokeWidth,
		StrokeColor: colorOrTransparent(view.Colors.Stroke),
	}
	if view.Kind == model.ViewKindScatter {
		style.StrokeColor = drawing.ColorTransparent
	}
	if view.Colors.Fill != nil && view.Kind != model.ViewKindScatter {
		style.FillColor = toDrawing(*view.Colors.Fill)
	}
	if view.Point != nil && view.Point.Visible {
		style.DotWidth = dotWidth
		style.DotColor = colorOrTransparent(view.Colors.PointFill)
	}
	return style
}

func xAxisFor(scale model.Scale, name string) (chart.XAxis, error) {
	axis := chart.XAxis{Name: name}
	switch {
	case scale.Band != nil:
		categories := scale.Band.Categories
		if len(categories) == 0 {
			return axis, errors.New("gochart: band axis has no categories")
		}
		axis.Range = &chart.ContinuousRange{Min: 0, Max: math.Max(float64(len(categories)-1), 1)}
		for i, category := range categories {
			axis.Ticks = append(axis.Ticks, chart.Tick{Value: float64(i), Label: category})
		}
	case scale.Linear != nil:
		axis.Range = linearRange(*scale.Linear)
	}
	return axis, nil
}

func yAxisFor(scale model.Scale, name string) (chart.YAxis, error) {
	if scale.Linear == nil {
		return chart.YAxis{}, errors.New("gochart: vertical axis must be linear")
	}
	return chart.YAxis{Name: name, Range: linearRange(*scale.Linear)}, nil
}

func linearRange(scale model.LinearScale) *chart.ContinuousRange {
	return &chart.ContinuousRange{
		Min: math.Min(scale.DomainStart, scale.DomainEnd),
		Max: math.Max(scale.DomainStart, scale.DomainEnd),
	}
}

func axisLabel(c model.Chart, primary, secondary model.AxisPosition) string {
	if axis, ok := c.Axis(primary); ok {
		return axis.Label
	}
	if axis, ok := c.Axis(secondary); ok {
		return axis.Label
	}
	return ""
}

func padding(g model.Geometry) chart.Box {
	return chart.Box{
		Top:    g.MarginTop,
		Bottom: g.MarginBottom,
		Left:   g.MarginLeft,
		Right:  g.MarginRight,
	}
}
