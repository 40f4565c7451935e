package testsupport

import "github.com/goliatone/go-chartgen/pkg/wire"

// Sizes returns the 1000x800 chart size used across fixtures.
func Sizes() *wire.Sizes {
	return &wire.Sizes{Width: wire.Ptr[int32](1000), Height: wire.Ptr[int32](800)}
}

// Margins returns top 20, bottom 70, left 40, right 30.
func Margins() *wire.Margins {
	return &wire.Margins{
		Top:    wire.Ptr[int32](20),
		Bottom: wire.Ptr[int32](70),
		Left:   wire.Ptr[int32](40),
		Right:  wire.Ptr[int32](30),
	}
}

// BandScale is a band scale over categories with 0.1 paddings spanning the
// inner chart width.
func BandScale(categories ...string) *wire.Scale {
	return &wire.Scale{
		Kind:         wire.ScaleKindBand,
		RangeStart:   wire.Ptr[int32](0),
		RangeEnd:     wire.Ptr[int32](930),
		InnerPadding: wire.Ptr(0.1),
		OuterPadding: wire.Ptr(0.1),
		Domain: &wire.Domain{
			Categories: &wire.CategoryDomain{Values: categories},
		},
	}
}

// LinearScale is a linear scale over [start, end] spanning the inner chart
// height, inverted so larger values sit higher.
func LinearScale(start, end float64) *wire.Scale {
	return &wire.Scale{
		Kind:       wire.ScaleKindLinear,
		RangeStart: wire.Ptr[int32](710),
		RangeEnd:   wire.Ptr[int32](0),
		Domain: &wire.Domain{
			Numeric: &wire.NumericDomain{Start: start, End: end},
		},
	}
}

// PointColors is a full color bundle.
func PointColors() *wire.ViewColors {
	return &wire.ViewColors{
		Fill:        wire.HexColor("#2b4b49"),
		Stroke:      wire.HexColor("#226974"),
		PointFill:   wire.HexColor("#1a888b"),
		PointStroke: wire.HexColor("#50c5b6"),
	}
}

// AreaView is a valid area view over scalar values.
func AreaView() wire.View {
	return wire.View{
		Kind:               wire.ViewKindArea,
		Colors:             PointColors(),
		PointVisible:       wire.Ptr(true),
		PointType:          wire.PointTypeCircle,
		PointLabelVisible:  wire.Ptr(true),
		PointLabelPosition: wire.PointLabelPositionTop,
		Values:             &wire.Values{Scalar: &wire.ScalarValues{Values: []float64{300, 500}}},
	}
}

// LineView is a valid line view over scalar values.
func LineView() wire.View {
	view := AreaView()
	view.Kind = wire.ViewKindLine
	view.Colors = &wire.ViewColors{
		Stroke:      wire.HexColor("#226974"),
		PointFill:   wire.HexColor("#1a888b"),
		PointStroke: wire.HexColor("#50c5b6"),
	}
	view.PointType = wire.PointTypeSquare
	view.PointLabelPosition = wire.PointLabelPositionBottomRight
	return view
}

// ScatterView is a valid scatter view over points.
func ScatterView() wire.View {
	return wire.View{
		Kind: wire.ViewKindScatter,
		Colors: &wire.ViewColors{
			PointFill:   wire.HexColor("#1a888b"),
			PointStroke: wire.HexColor("#50c5b6"),
		},
		PointVisible:       wire.Ptr(true),
		PointType:          wire.PointTypeX,
		PointLabelVisible:  wire.Ptr(false),
		PointLabelPosition: wire.PointLabelPositionLeft,
		Values: &wire.Values{Points: &wire.PointsValues{Points: []wire.Point{
			{X: 250, Y: 300},
			{X: 600, Y: 700},
		}}},
	}
}

// VerticalBarView is a valid vertical bar view with two datasets.
func VerticalBarView() wire.View {
	return wire.View{
		Kind:             wire.ViewKindVerticalBar,
		BarLabelVisible:  wire.Ptr(true),
		BarLabelPosition: wire.BarLabelPositionStartInside,
		Values: &wire.Values{Bars: &wire.BarsValues{Datasets: []wire.BarsDataset{
			{
				Values: []float64{64, 32},
				Colors: &wire.BarsColors{Fill: wire.HexColor("#028c02"), Stroke: wire.HexColor("#02b502")},
			},
			{
				Values: []float64{64, 32},
				Colors: &wire.BarsColors{Fill: wire.HexColor("#028c02"), Stroke: wire.HexColor("#02b502")},
			},
		}}},
	}
}

// HorizontalBarView is a valid horizontal bar view with one dataset.
func HorizontalBarView() wire.View {
	return wire.View{
		Kind:             wire.ViewKindHorizontalBar,
		BarLabelVisible:  wire.Ptr(false),
		BarLabelPosition: wire.BarLabelPositionEndOutside,
		Values: &wire.Values{Bars: &wire.BarsValues{Datasets: []wire.BarsDataset{
			{
				Values: []float64{16, 32},
				Colors: &wire.BarsColors{Fill: wire.HexColor("#a496c4"), Stroke: wire.HexColor("#7d69ac")},
			},
		}}},
	}
}

// VerticalBarRequest is a complete request with a band bottom axis over
// ["a","b"], a linear left axis over [200,800] and one vertical bar view.
func VerticalBarRequest() wire.RenderChartRequest {
	return wire.RenderChartRequest{
		RequestID: "req-vertical-bar",
		Title:     "Vertical bars",
		Sizes:     Sizes(),
		Margins:   Margins(),
		Axes: &wire.Axes{
			Bottom:      BandScale("a", "b"),
			BottomLabel: "Categories",
			Left:        LinearScale(200, 800),
			LeftLabel:   "Values",
		},
		Views: []wire.View{VerticalBarView()},
	}
}

// MixedRequest shares a band horizontal axis and a linear vertical axis
// between an area, a vertical bar and a line view.
func MixedRequest() wire.RenderChartRequest {
	req := VerticalBarRequest()
	req.RequestID = "req-mixed"
	req.Title = "Mixed views"
	req.Views = []wire.View{AreaView(), VerticalBarView(), LineView()}
	return req
}
