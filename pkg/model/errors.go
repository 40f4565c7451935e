package model

import internalmodel "github.com/goliatone/go-chartgen/internal/model"

// ErrorKind classifies resolution failures; see internal/model for the full
// list of kinds.
type ErrorKind = internalmodel.ErrorKind

// RenderError wraps failures reported by a renderer.
type RenderError = internalmodel.RenderError

// Resolution failures, one per way a request can be rejected.
const (
	ErrChartAxesNotSpecified      = internalmodel.ErrChartAxesNotSpecified
	ErrHorizontalAxisNotSpecified = internalmodel.ErrHorizontalAxisNotSpecified
	ErrVerticalAxisNotSpecified   = internalmodel.ErrVerticalAxisNotSpecified

	ErrChartSizesNotSpecified        = internalmodel.ErrChartSizesNotSpecified
	ErrChartWidthNotSpecified        = internalmodel.ErrChartWidthNotSpecified
	ErrChartHeightNotSpecified       = internalmodel.ErrChartHeightNotSpecified
	ErrChartMarginsNotSpecified      = internalmodel.ErrChartMarginsNotSpecified
	ErrChartTopMarginNotSpecified    = internalmodel.ErrChartTopMarginNotSpecified
	ErrChartBottomMarginNotSpecified = internalmodel.ErrChartBottomMarginNotSpecified
	ErrChartLeftMarginNotSpecified   = internalmodel.ErrChartLeftMarginNotSpecified
	ErrChartRightMarginNotSpecified  = internalmodel.ErrChartRightMarginNotSpecified

	ErrScaleRangeStartNotSpecified       = internalmodel.ErrScaleRangeStartNotSpecified
	ErrScaleRangeEndNotSpecified         = internalmodel.ErrScaleRangeEndNotSpecified
	ErrBandScaleInnerPaddingNotSpecified = internalmodel.ErrBandScaleInnerPaddingNotSpecified
	ErrBandScaleOuterPaddingNotSpecified = internalmodel.ErrBandScaleOuterPaddingNotSpecified
	ErrLinearScaleDomainNotNumeric       = internalmodel.ErrLinearScaleDomainNotNumeric
	ErrBandScaleDomainNotCategories      = internalmodel.ErrBandScaleDomainNotCategories
	ErrTopAxisNotBandOrLinear            = internalmodel.ErrTopAxisNotBandOrLinear
	ErrBottomAxisNotBandOrLinear         = internalmodel.ErrBottomAxisNotBandOrLinear
	ErrLeftAxisNotBandOrLinear           = internalmodel.ErrLeftAxisNotBandOrLinear
	ErrRightAxisNotBandOrLinear          = internalmodel.ErrRightAxisNotBandOrLinear

	ErrViewKindUnknown             = internalmodel.ErrViewKindUnknown
	ErrViewColorsNotSpecified      = internalmodel.ErrViewColorsNotSpecified
	ErrViewValuesNotSpecified      = internalmodel.ErrViewValuesNotSpecified
	ErrExpectedScalarValues        = internalmodel.ErrExpectedScalarValues
	ErrExpectedPointsValues        = internalmodel.ErrExpectedPointsValues
	ErrExpectedBarsValues          = internalmodel.ErrExpectedBarsValues
	ErrBarsColorsNotSpecified      = internalmodel.ErrBarsColorsNotSpecified
	ErrBarsFillColorNotSpecified   = internalmodel.ErrBarsFillColorNotSpecified
	ErrBarsStrokeColorNotSpecified = internalmodel.ErrBarsStrokeColorNotSpecified

	ErrBarLabelVisibleNotSpecified   = internalmodel.ErrBarLabelVisibleNotSpecified
	ErrBarLabelPositionUnknown       = internalmodel.ErrBarLabelPositionUnknown
	ErrPointVisibleNotSpecified      = internalmodel.ErrPointVisibleNotSpecified
	ErrPointLabelVisibleNotSpecified = internalmodel.ErrPointLabelVisibleNotSpecified
	ErrPointTypeUnknown              = internalmodel.ErrPointTypeUnknown
	ErrPointLabelPositionUnknown     = internalmodel.ErrPointLabelPositionUnknown

	ErrAreaFillColorNotSpecified           = internalmodel.ErrAreaFillColorNotSpecified
	ErrAreaStrokeColorNotSpecified         = internalmodel.ErrAreaStrokeColorNotSpecified
	ErrAreaPointFillColorNotSpecified      = internalmodel.ErrAreaPointFillColorNotSpecified
	ErrAreaPointStrokeColorNotSpecified    = internalmodel.ErrAreaPointStrokeColorNotSpecified
	ErrLineStrokeColorNotSpecified         = internalmodel.ErrLineStrokeColorNotSpecified
	ErrLinePointFillColorNotSpecified      = internalmodel.ErrLinePointFillColorNotSpecified
	ErrLinePointStrokeColorNotSpecified    = internalmodel.ErrLinePointStrokeColorNotSpecified
	ErrScatterPointFillColorNotSpecified   = internalmodel.ErrScatterPointFillColorNotSpecified
	ErrScatterPointStrokeColorNotSpecified = internalmodel.ErrScatterPointStrokeColorNotSpecified

	ErrAreaHorizontalAxisNotBand            = internalmodel.ErrAreaHorizontalAxisNotBand
	ErrAreaVerticalAxisNotLinear            = internalmodel.ErrAreaVerticalAxisNotLinear
	ErrLineHorizontalAxisNotBand            = internalmodel.ErrLineHorizontalAxisNotBand
	ErrLineVerticalAxisNotLinear            = internalmodel.ErrLineVerticalAxisNotLinear
	ErrScatterHorizontalAxisNotLinear       = internalmodel.ErrScatterHorizontalAxisNotLinear
	ErrScatterVerticalAxisNotLinear         = internalmodel.ErrScatterVerticalAxisNotLinear
	ErrHorizontalBarHorizontalAxisNotLinear = internalmodel.ErrHorizontalBarHorizontalAxisNotLinear
	ErrHorizontalBarVerticalAxisNotBand     = internalmodel.ErrHorizontalBarVerticalAxisNotBand
	ErrVerticalBarHorizontalAxisNotBand     = internalmodel.ErrVerticalBarHorizontalAxisNotBand
	ErrVerticalBarVerticalAxisNotLinear     = internalmodel.ErrVerticalBarVerticalAxisNotLinear
)

// ErrRenderFailed matches every *RenderError under errors.Is.
const ErrRenderFailed = internalmodel.ErrRenderFailed

// KindOf extracts the ErrorKind carried by err.
func KindOf(err error) (ErrorKind, bool) {
	return internalmodel.KindOf(err)
}

// ErrorKinds lists every defined kind.
func ErrorKinds() []ErrorKind {
	return internalmodel.ErrorKinds()
}

// ParseRangeStrategy maps a configuration value onto a RangeStrategy.
func ParseRangeStrategy(raw string) (RangeStrategy, error) {
	return internalmodel.ParseRangeStrategy(raw)
}
