package model

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates every way a chart request can fail resolution. Each
// kind is itself an error so callers can compare with errors.Is.
type ErrorKind int

const (
	errKindInvalid ErrorKind = iota

	ErrChartAxesNotSpecified
	ErrHorizontalAxisNotSpecified
	ErrVerticalAxisNotSpecified

	ErrChartSizesNotSpecified
	ErrChartWidthNotSpecified
	ErrChartHeightNotSpecified
	ErrChartMarginsNotSpecified
	ErrChartTopMarginNotSpecified
	ErrChartBottomMarginNotSpecified
	ErrChartLeftMarginNotSpecified
	ErrChartRightMarginNotSpecified

	ErrScaleRangeStartNotSpecified
	ErrScaleRangeEndNotSpecified
	ErrBandScaleInnerPaddingNotSpecified
	ErrBandScaleOuterPaddingNotSpecified
	ErrLinearScaleDomainNotNumeric
	ErrBandScaleDomainNotCategories
	ErrTopAxisNotBandOrLinear
	ErrBottomAxisNotBandOrLinear
	ErrLeftAxisNotBandOrLinear
	ErrRightAxisNotBandOrLinear

	ErrViewKindUnknown
	ErrViewColorsNotSpecified
	ErrViewValuesNotSpecified
	ErrExpectedScalarValues
	ErrExpectedPointsValues
	ErrExpectedBarsValues
	ErrBarsColorsNotSpecified
	ErrBarsFillColorNotSpecified
	ErrBarsStrokeColorNotSpecified

	ErrBarLabelVisibleNotSpecified
	ErrBarLabelPositionUnknown
	ErrPointVisibleNotSpecified
	ErrPointLabelVisibleNotSpecified
	ErrPointTypeUnknown
	ErrPointLabelPositionUnknown

	ErrAreaFillColorNotSpecified
	ErrAreaStrokeColorNotSpecified
	ErrAreaPointFillColorNotSpecified
	ErrAreaPointStrokeColorNotSpecified
	ErrLineStrokeColorNotSpecified
	ErrLinePointFillColorNotSpecified
	ErrLinePointStrokeColorNotSpecified
	ErrScatterPointFillColorNotSpecified
	ErrScatterPointStrokeColorNotSpecified

	ErrAreaHorizontalAxisNotBand
	ErrAreaVerticalAxisNotLinear
	ErrLineHorizontalAxisNotBand
	ErrLineVerticalAxisNotLinear
	ErrScatterHorizontalAxisNotLinear
	ErrScatterVerticalAxisNotLinear
	ErrHorizontalBarHorizontalAxisNotLinear
	ErrHorizontalBarVerticalAxisNotBand
	ErrVerticalBarHorizontalAxisNotBand
	ErrVerticalBarVerticalAxisNotLinear

	ErrRenderFailed

	errKindCount
)

type errorDescriptor struct {
	code    string
	message string
}

var errorDescriptors = map[ErrorKind]errorDescriptor{
	ErrChartAxesNotSpecified:      {"CHART_AXES_NOT_SPECIFIED", "chart axes should be specified"},
	ErrHorizontalAxisNotSpecified: {"HORIZONTAL_AXIS_NOT_SPECIFIED", "top or bottom axis must be specified"},
	ErrVerticalAxisNotSpecified:   {"VERTICAL_AXIS_NOT_SPECIFIED", "left or right axis must be specified"},

	ErrChartSizesNotSpecified:        {"CHART_SIZES_NOT_SPECIFIED", "chart sizes should be specified"},
	ErrChartWidthNotSpecified:        {"CHART_WIDTH_NOT_SPECIFIED", "chart width should be specified"},
	ErrChartHeightNotSpecified:       {"CHART_HEIGHT_NOT_SPECIFIED", "chart height should be specified"},
	ErrChartMarginsNotSpecified:      {"CHART_MARGINS_NOT_SPECIFIED", "chart margins should be specified"},
	ErrChartTopMarginNotSpecified:    {"CHART_TOP_MARGIN_NOT_SPECIFIED", "chart top margin should be specified"},
	ErrChartBottomMarginNotSpecified: {"CHART_BOTTOM_MARGIN_NOT_SPECIFIED", "chart bottom margin should be specified"},
	ErrChartLeftMarginNotSpecified:   {"CHART_LEFT_MARGIN_NOT_SPECIFIED", "chart left margin should be specified"},
	ErrChartRightMarginNotSpecified:  {"CHART_RIGHT_MARGIN_NOT_SPECIFIED", "chart right margin should be specified"},

	ErrScaleRangeStartNotSpecified:       {"SCALE_RANGE_START_NOT_SPECIFIED", "scale range start should be specified"},
	ErrScaleRangeEndNotSpecified:         {"SCALE_RANGE_END_NOT_SPECIFIED", "scale range end should be specified"},
	ErrBandScaleInnerPaddingNotSpecified: {"BAND_SCALE_INNER_PADDING_NOT_SPECIFIED", "band scale inner padding should be specified"},
	ErrBandScaleOuterPaddingNotSpecified: {"BAND_SCALE_OUTER_PADDING_NOT_SPECIFIED", "band scale outer padding should be specified"},
	ErrLinearScaleDomainNotNumeric:       {"LINEAR_SCALE_DOMAIN_NOT_NUMERIC", "linear scale domain should be numeric"},
	ErrBandScaleDomainNotCategories:      {"BAND_SCALE_DOMAIN_NOT_CATEGORIES", "band scale domain should be a list of categories"},
	ErrTopAxisNotBandOrLinear:            {"TOP_AXIS_NOT_BAND_OR_LINEAR", "top axis is set but it's not band or linear"},
	ErrBottomAxisNotBandOrLinear:         {"BOTTOM_AXIS_NOT_BAND_OR_LINEAR", "bottom axis is set but it's not band or linear"},
	ErrLeftAxisNotBandOrLinear:           {"LEFT_AXIS_NOT_BAND_OR_LINEAR", "left axis is set but it's not band or linear"},
	ErrRightAxisNotBandOrLinear:          {"RIGHT_AXIS_NOT_BAND_OR_LINEAR", "right axis is set but it's not band or linear"},

	ErrViewKindUnknown:             {"VIEW_KIND_UNKNOWN", "chart view kind is unknown"},
	ErrViewColorsNotSpecified:      {"VIEW_COLORS_NOT_SPECIFIED", "chart view colors should be specified"},
	ErrViewValuesNotSpecified:      {"VIEW_VALUES_NOT_SPECIFIED", "chart view values should be specified"},
	ErrExpectedScalarValues:        {"EXPECTED_SCALAR_VALUES", "expected scalar values"},
	ErrExpectedPointsValues:        {"EXPECTED_POINTS_VALUES", "expected points values"},
	ErrExpectedBarsValues:          {"EXPECTED_BARS_VALUES", "expected bars values"},
	ErrBarsColorsNotSpecified:      {"BARS_COLORS_NOT_SPECIFIED", "colors for bars values should be specified"},
	ErrBarsFillColorNotSpecified:   {"BARS_FILL_COLOR_NOT_SPECIFIED", "fill color for bars values should be specified"},
	ErrBarsStrokeColorNotSpecified: {"BARS_STROKE_COLOR_NOT_SPECIFIED", "stroke color for bars values should be specified"},

	ErrBarLabelVisibleNotSpecified:   {"BAR_LABEL_VISIBLE_NOT_SPECIFIED", "bar label visibility should be specified"},
	ErrBarLabelPositionUnknown:       {"BAR_LABEL_POSITION_UNKNOWN", "bar label position is unknown"},
	ErrPointVisibleNotSpecified:      {"POINT_VISIBLE_NOT_SPECIFIED", "point visibility should be specified"},
	ErrPointLabelVisibleNotSpecified: {"POINT_LABEL_VISIBLE_NOT_SPECIFIED", "point label visibility should be specified"},
	ErrPointTypeUnknown:              {"POINT_TYPE_UNKNOWN", "point type is unknown"},
	ErrPointLabelPositionUnknown:     {"POINT_LABEL_POSITION_UNKNOWN", "point label position is unknown"},

	ErrAreaFillColorNotSpecified:           {"AREA_FILL_COLOR_NOT_SPECIFIED", "expected fill color for area view"},
	ErrAreaStrokeColorNotSpecified:         {"AREA_STROKE_COLOR_NOT_SPECIFIED", "expected stroke color for area view"},
	ErrAreaPointFillColorNotSpecified:      {"AREA_POINT_FILL_COLOR_NOT_SPECIFIED", "expected point fill color for area view"},
	ErrAreaPointStrokeColorNotSpecified:    {"AREA_POINT_STROKE_COLOR_NOT_SPECIFIED", "expected point stroke color for area view"},
	ErrLineStrokeColorNotSpecified:         {"LINE_STROKE_COLOR_NOT_SPECIFIED", "expected stroke color for line view"},
	ErrLinePointFillColorNotSpecified:      {"LINE_POINT_FILL_COLOR_NOT_SPECIFIED", "expected point fill color for line view"},
	ErrLinePointStrokeColorNotSpecified:    {"LINE_POINT_STROKE_COLOR_NOT_SPECIFIED", "expected point stroke color for line view"},
	ErrScatterPointFillColorNotSpecified:   {"SCATTER_POINT_FILL_COLOR_NOT_SPECIFIED", "expected point fill color for scatter view"},
	ErrScatterPointStrokeColorNotSpecified: {"SCATTER_POINT_STROKE_COLOR_NOT_SPECIFIED", "expected point stroke color for scatter view"},

	ErrAreaHorizontalAxisNotBand:            {"AREA_HORIZONTAL_AXIS_NOT_BAND", "area view horizontal axis is set but it's not band"},
	ErrAreaVerticalAxisNotLinear:            {"AREA_VERTICAL_AXIS_NOT_LINEAR", "area view vertical axis is set but it's not linear"},
	ErrLineHorizontalAxisNotBand:            {"LINE_HORIZONTAL_AXIS_NOT_BAND", "line view horizontal axis is set but it's not band"},
	ErrLineVerticalAxisNotLinear:            {"LINE_VERTICAL_AXIS_NOT_LINEAR", "line view vertical axis is set but it's not linear"},
	ErrScatterHorizontalAxisNotLinear:       {"SCATTER_HORIZONTAL_AXIS_NOT_LINEAR", "scatter view horizontal axis is set but it's not linear"},
	ErrScatterVerticalAxisNotLinear:         {"SCATTER_VERTICAL_AXIS_NOT_LINEAR", "scatter view vertical axis is set but it's not linear"},
	ErrHorizontalBarHorizontalAxisNotLinear: {"HORIZONTAL_BAR_HORIZONTAL_AXIS_NOT_LINEAR", "horizontal bar view horizontal axis is set but it's not linear"},
	ErrHorizontalBarVerticalAxisNotBand:     {"HORIZONTAL_BAR_VERTICAL_AXIS_NOT_BAND", "horizontal bar view vertical axis is set but it's not band"},
	ErrVerticalBarHorizontalAxisNotBand:     {"VERTICAL_BAR_HORIZONTAL_AXIS_NOT_BAND", "vertical bar view horizontal axis is set but it's not band"},
	ErrVerticalBarVerticalAxisNotLinear:     {"VERTICAL_BAR_VERTICAL_AXIS_NOT_LINEAR", "vertical bar view vertical axis is set but it's not linear"},

	ErrRenderFailed: {"RENDER_FAILED", "unable to render chart"},
}

// Error returns the caller-facing message for the kind.
func (k ErrorKind) Error() string {
	if d, ok := errorDescriptors[k]; ok {
		return d.message
	}
	return fmt.Sprintf("chart model: unknown error kind %d", int(k))
}

// Code returns a stable upper snake case identifier for the kind, suitable
// for machine-readable error details.
func (k ErrorKind) Code() string {
	if d, ok := errorDescriptors[k]; ok {
		return d.code
	}
	return "UNKNOWN"
}

// ErrorKinds lists every defined kind in declaration order.
func ErrorKinds() []ErrorKind {
	kinds := make([]ErrorKind, 0, int(errKindCount)-1)
	for k := errKindInvalid + 1; k < errKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// RenderError wraps a failure reported by the rendering collaborator. The
// cause is kept as-is and reachable through errors.Unwrap.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	if e.Err == nil {
		return ErrRenderFailed.Error()
	}
	return fmt.Sprintf("%s: %s", ErrRenderFailed.Error(), e.Err.Error())
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is reports ErrRenderFailed as a match so delegated failures classify like
// every other kind.
func (e *RenderError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == ErrRenderFailed
}

// KindOf extracts the ErrorKind carried by err. Delegated failures report
// ErrRenderFailed. The boolean is false for errors outside the taxonomy
// (cancelled contexts, loader failures).
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return errKindInvalid, false
	}
	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		return ErrRenderFailed, true
	}
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return errKindInvalid, false
}
