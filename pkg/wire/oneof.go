package wire

import (
	"errors"
	"fmt"
)

// ErrAmbiguousOneOf reports a one-of message with more than one member set.
var ErrAmbiguousOneOf = errors.New("more than one variant is set")

// Validate rejects requests whose one-of members (scale domains, colors and
// view values) carry more than one variant. Missing members are left for
// chart resolution to report.
func (r RenderChartRequest) Validate() error {
	if r.Axes != nil {
		slots := []struct {
			name  string
			scale *Scale
		}{
			{"top", r.Axes.Top},
			{"bottom", r.Axes.Bottom},
			{"left", r.Axes.Left},
			{"right", r.Axes.Right},
		}
		for _, slot := range slots {
			if slot.scale != nil && slot.scale.Domain.variants() > 1 {
				return ambiguous("axes.%s.domain", slot.name)
			}
		}
	}

	for i, view := range r.Views {
		if view.Colors != nil {
			colors := []struct {
				name  string
				color *Color
			}{
				{"fill", view.Colors.Fill},
				{"stroke", view.Colors.Stroke},
				{"point_fill", view.Colors.PointFill},
				{"point_stroke", view.Colors.PointStroke},
			}
			for _, c := range colors {
				if c.color.variants() > 1 {
					return ambiguous("views[%d].colors.%s", i, c.name)
				}
			}
		}
		if view.Values.variants() > 1 {
			return ambiguous("views[%d].values", i)
		}
		if view.Values == nil || view.Values.Bars == nil {
			continue
		}
		for j, dataset := range view.Values.Bars.Datasets {
			if dataset.Colors == nil {
				continue
			}
			if dataset.Colors.Fill.variants() > 1 {
				return ambiguous("views[%d].values.bars.datasets[%d].colors.fill", i, j)
			}
			if dataset.Colors.Stroke.variants() > 1 {
				return ambiguous("views[%d].values.bars.datasets[%d].colors.stroke", i, j)
			}
		}
	}
	return nil
}

func ambiguous(format string, args ...any) error {
	return fmt.Errorf("wire: %s: %w", fmt.Sprintf(format, args...), ErrAmbiguousOneOf)
}

func (d *Domain) variants() int {
	if d == nil {
		return 0
	}
	return count(d.Numeric != nil, d.Categories != nil)
}

func (c *Color) variants() int {
	if c == nil {
		return 0
	}
	return count(c.Hex != nil, c.RGB != nil)
}

func (v *Values) variants() int {
	if v == nil {
		return 0
	}
	return count(v.Scalar != nil, v.Points != nil, v.Bars != nil)
}

func count(set ...bool) int {
	n := 0
	for _, ok := range set {
		if ok {
			n++
		}
	}
	return n
}
