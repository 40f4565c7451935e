package model

import "github.com/goliatone/go-chartgen/pkg/wire"

// ExtractScalar requires the scalar variant and no other.
func ExtractScalar(values *wire.Values) ([]float64, error) {
	if values == nil {
		return nil, ErrViewValuesNotSpecified
	}
	if values.Scalar == nil || values.Points != nil || values.Bars != nil {
		return nil, ErrExpectedScalarValues
	}
	return append([]float64{}, values.Scalar.Values...), nil
}

// ExtractPoints requires the points variant and no other. Input order is
// kept.
func ExtractPoints(values *wire.Values) ([]Point, error) {
	if values == nil {
		return nil, ErrViewValuesNotSpecified
	}
	if values.Points == nil || values.Scalar != nil || values.Bars != nil {
		return nil, ErrExpectedPointsValues
	}
	points := make([]Point, 0, len(values.Points.Points))
	for _, p := range values.Points.Points {
		points = append(points, Point{X: p.X, Y: p.Y})
	}
	return points, nil
}

// ExtractBars requires the bars variant and no other. Every dataset needs both a fill and
// a stroke color; the first dataset missing either aborts extraction.
func ExtractBars(values *wire.Values) ([]BarsDataset, error) {
	if values == nil {
		return nil, ErrViewValuesNotSpecified
	}
	if values.Bars == nil || values.Scalar != nil || values.Points != nil {
		return nil, ErrExpectedBarsValues
	}

	datasets := make([]BarsDataset, 0, len(values.Bars.Datasets))
	for _, dataset := range values.Bars.Datasets {
		if dataset.Colors == nil {
			return nil, ErrBarsColorsNotSpecified
		}
		fill, ok := ResolveColor(dataset.Colors.Fill)
		if !ok {
			return nil, ErrBarsFillColorNotSpecified
		}
		stroke, ok := ResolveColor(dataset.Colors.Stroke)
		if !ok {
			return nil, ErrBarsStrokeColorNotSpecified
		}
		datasets = append(datasets, BarsDataset{
			Values: append([]float64{}, dataset.Values...),
			Fill:   fill,
			Stroke: stroke,
		})
	}
	return datasets, nil
}
