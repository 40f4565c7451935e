package model

import "github.com/goliatone/go-chartgen/pkg/wire"

// ResolveGeometry requires both sizes and all four margins.
func ResolveGeometry(sizes *wire.Sizes, margins *wire.Margins) (Geometry, error) {
	if sizes == nil {
		return Geometry{}, ErrChartSizesNotSpecified
	}
	width, err := require(sizes.Width, ErrChartWidthNotSpecified)
	if err != nil {
		return Geometry{}, err
	}
	height, err := require(sizes.Height, ErrChartHeightNotSpecified)
	if err != nil {
		return Geometry{}, err
	}

	if margins == nil {
		return Geometry{}, ErrChartMarginsNotSpecified
	}
	top, err := require(margins.Top, ErrChartTopMarginNotSpecified)
	if err != nil {
		return Geometry{}, err
	}
	bottom, err := require(margins.Bottom, ErrChartBottomMarginNotSpecified)
	if err != nil {
		return Geometry{}, err
	}
	left, err := require(margins.Left, ErrChartLeftMarginNotSpecified)
	if err != nil {
		return Geometry{}, err
	}
	right, err := require(margins.Right, ErrChartRightMarginNotSpecified)
	if err != nil {
		return Geometry{}, err
	}

	return Geometry{
		Width:        int(width),
		Height:       int(height),
		MarginTop:    int(top),
		MarginBottom: int(bottom),
		MarginLeft:   int(left),
		MarginRight:  int(right),
	}, nil
}
