package model

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-chartgen/pkg/wire"
)

// RangeStrategy decides where scale range bounds come from.
type RangeStrategy string

const (
	// RangeFromRequest requires range_start and range_end on every scale.
	RangeFromRequest RangeStrategy = "request"
	// RangeFromGeometry derives ranges from the chart size and margins:
	// [0, inner width] horizontally and [inner height, 0] vertically. Range
	// bounds on the wire are ignored.
	RangeFromGeometry RangeStrategy = "geometry"
)

// ParseRangeStrategy maps a configuration value onto a strategy. The empty
// string selects RangeFromRequest.
func ParseRangeStrategy(raw string) (RangeStrategy, error) {
	switch RangeStrategy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", RangeFromRequest:
		return RangeFromRequest, nil
	case RangeFromGeometry:
		return RangeFromGeometry, nil
	default:
		return "", fmt.Errorf("chart model: unknown range strategy %q", raw)
	}
}

// Dimension is the chart direction a scale spans.
type Dimension int

const (
	DimensionHorizontal Dimension = iota
	DimensionVertical
)

// Ranges resolves scale range bounds under a single strategy.
type Ranges struct {
	Strategy RangeStrategy
	Geometry Geometry
}

func (r Ranges) bounds(scale *wire.Scale, dimension Dimension) (int, int, error) {
	if r.Strategy == RangeFromGeometry {
		if dimension == DimensionHorizontal {
			return 0, r.Geometry.InnerWidth(), nil
		}
		return r.Geometry.InnerHeight(), 0, nil
	}

	start, err := require(scale.RangeStart, ErrScaleRangeStartNotSpecified)
	if err != nil {
		return 0, 0, err
	}
	end, err := require(scale.RangeEnd, ErrScaleRangeEndNotSpecified)
	if err != nil {
		return 0, 0, err
	}
	return int(start), int(end), nil
}

// SelectHorizontalAxis picks the scale backing the horizontal dimension:
// top when present, otherwise bottom.
func SelectHorizontalAxis(axes *wire.Axes) (*wire.Scale, error) {
	if axes == nil {
		return nil, ErrChartAxesNotSpecified
	}
	switch {
	case axes.Top != nil:
		return axes.Top, nil
	case axes.Bottom != nil:
		return axes.Bottom, nil
	default:
		return nil, ErrHorizontalAxisNotSpecified
	}
}

// SelectVerticalAxis picks the scale backing the vertical dimension: left
// when present, otherwise right.
func SelectVerticalAxis(axes *wire.Axes) (*wire.Scale, error) {
	if axes == nil {
		return nil, ErrChartAxesNotSpecified
	}
	switch {
	case axes.Left != nil:
		return axes.Left, nil
	case axes.Right != nil:
		return axes.Right, nil
	default:
		return nil, ErrVerticalAxisNotSpecified
	}
}

// ResolveLinearScale builds a linear scale. The caller has already checked
// the kind tag. A domain carrying categories as well is not numeric.
func ResolveLinearScale(scale *wire.Scale, ranges Ranges, dimension Dimension) (Scale, error) {
	start, end, err := ranges.bounds(scale, dimension)
	if err != nil {
		return Scale{}, err
	}
	if scale.Domain == nil || scale.Domain.Numeric == nil || scale.Domain.Categories != nil {
		return Scale{}, ErrLinearScaleDomainNotNumeric
	}
	return Scale{
		Kind:       ScaleKindLinear,
		RangeStart: start,
		RangeEnd:   end,
		Linear: &LinearScale{
			DomainStart: scale.Domain.Numeric.Start,
			DomainEnd:   scale.Domain.Numeric.End,
		},
	}, nil
}

// ResolveBandScale builds a band scale. Both paddings are mandatory and the
// domain must hold categories only.
func ResolveBandScale(scale *wire.Scale, ranges Ranges, dimension Dimension) (Scale, error) {
	start, end, err := ranges.bounds(scale, dimension)
	if err != nil {
		return Scale{}, err
	}
	inner, err := require(scale.InnerPadding, ErrBandScaleInnerPaddingNotSpecified)
	if err != nil {
		return Scale{}, err
	}
	outer, err := require(scale.OuterPadding, ErrBandScaleOuterPaddingNotSpecified)
	if err != nil {
		return Scale{}, err
	}
	if scale.Domain == nil || scale.Domain.Categories == nil || scale.Domain.Numeric != nil {
		return Scale{}, ErrBandScaleDomainNotCategories
	}
	return Scale{
		Kind:       ScaleKindBand,
		RangeStart: start,
		RangeEnd:   end,
		Band: &BandScale{
			Categories:         append([]string{}, scale.Domain.Categories.Values...),
			InnerPadding:       inner,
			OuterPadding:       outer,
			NoBoundariesOffset: scale.NoBoundariesOffset,
		},
	}, nil
}

var axisKindErrors = map[AxisPosition]ErrorKind{
	AxisPositionTop:    ErrTopAxisNotBandOrLinear,
	AxisPositionBottom: ErrBottomAxisNotBandOrLinear,
	AxisPositionLeft:   ErrLeftAxisNotBandOrLinear,
	AxisPositionRight:  ErrRightAxisNotBandOrLinear,
}

// ResolveAxis dispatches on the declared kind of the axis in slot position.
// Any tag other than linear or band fails with the slot's error.
func ResolveAxis(position AxisPosition, scale *wire.Scale, ranges Ranges) (Scale, error) {
	dimension := DimensionVertical
	if position.Horizontal() {
		dimension = DimensionHorizontal
	}
	switch scale.Kind {
	case wire.ScaleKindLinear:
		return ResolveLinearScale(scale, ranges, dimension)
	case wire.ScaleKindBand:
		return ResolveBandScale(scale, ranges, dimension)
	default:
		return Scale{}, axisKindErrors[position]
	}
}

// ResolveAxes resolves every present axis slot in top, bottom, left, right
// order.
func ResolveAxes(axes *wire.Axes, ranges Ranges) ([]Axis, error) {
	if axes == nil {
		return nil, ErrChartAxesNotSpecified
	}
	slots := []struct {
		position AxisPosition
		scale    *wire.Scale
		label    string
	}{
		{AxisPositionTop, axes.Top, axes.TopLabel},
		{AxisPositionBottom, axes.Bottom, axes.BottomLabel},
		{AxisPositionLeft, axes.Left, axes.LeftLabel},
		{AxisPositionRight, axes.Right, axes.RightLabel},
	}

	resolved := make([]Axis, 0, len(slots))
	for _, slot := range slots {
		if slot.scale == nil {
			continue
		}
		scale, err := ResolveAxis(slot.position, slot.scale, ranges)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, Axis{
			Position: slot.position,
			Label:    slot.label,
			Scale:    scale,
		})
	}
	return resolved, nil
}
