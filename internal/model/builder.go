package model

import (
	"context"

	"github.com/goliatone/go-chartgen/pkg/wire"
)

// Options configures the Builder.
type Options struct {
	RangeStrategy RangeStrategy
}

// Builder lowers wire requests into Chart values.
type Builder struct {
	rangeStrategy RangeStrategy
}

// New constructs a Builder. An empty RangeStrategy selects RangeFromRequest.
func New(options Options) *Builder {
	strategy := options.RangeStrategy
	if strategy == "" {
		strategy = RangeFromRequest
	}
	return &Builder{rangeStrategy: strategy}
}

// Build resolves req in a fixed order: axes presence, horizontal and vertical
// axis selection, geometry, each view in request order, then every present
// axis slot. The first failure stops the build. ctx is checked before each
// view.
func (b *Builder) Build(ctx context.Context, req wire.RenderChartRequest) (Chart, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Chart{}, err
	}

	if req.Axes == nil {
		return Chart{}, ErrChartAxesNotSpecified
	}
	horizontal, err := SelectHorizontalAxis(req.Axes)
	if err != nil {
		return Chart{}, err
	}
	vertical, err := SelectVerticalAxis(req.Axes)
	if err != nil {
		return Chart{}, err
	}

	geometry, err := ResolveGeometry(req.Sizes, req.Margins)
	if err != nil {
		return Chart{}, err
	}
	ranges := Ranges{Strategy: b.rangeStrategy, Geometry: geometry}

	views := make([]View, 0, len(req.Views))
	for _, wv := range req.Views {
		if err := ctx.Err(); err != nil {
			return Chart{}, err
		}
		view, err := ResolveView(wv, horizontal, vertical, ranges)
		if err != nil {
			return Chart{}, err
		}
		views = append(views, view)
	}

	axes, err := ResolveAxes(req.Axes, ranges)
	if err != nil {
		return Chart{}, err
	}

	return Assemble(req.RequestID, req.Title, geometry, axes, views), nil
}
