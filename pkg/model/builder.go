package model

import (
	"context"

	internalmodel "github.com/goliatone/go-chartgen/internal/model"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

// Builder converts wire requests into resolved charts.
type Builder interface {
	Build(ctx context.Context, req wire.RenderChartRequest) (Chart, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	rangeStrategy RangeStrategy
}

// WithRangeStrategy selects where scale range bounds come from. The default
// requires them on every wire scale.
func WithRangeStrategy(strategy RangeStrategy) BuilderOption {
	return func(opts *builderOptions) {
		opts.rangeStrategy = strategy
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return internalmodel.New(internalmodel.Options{
		RangeStrategy: cfg.rangeStrategy,
	})
}
