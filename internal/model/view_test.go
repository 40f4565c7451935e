package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartgen/internal/model"
	"github.com/goliatone/go-chartgen/pkg/testsupport"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

type viewFixture struct {
	name       string
	view       func() wire.View
	horizontal func() *wire.Scale
	vertical   func() *wire.Scale
}

func band() *wire.Scale   { return testsupport.BandScale("a", "b") }
func linear() *wire.Scale { return testsupport.LinearScale(200, 800) }

var viewFixtures = []viewFixture{
	{name: "area", view: testsupport.AreaView, horizontal: band, vertical: linear},
	{name: "line", view: testsupport.LineView, horizontal: band, vertical: linear},
	{name: "scatter", view: testsupport.ScatterView, horizontal: linear, vertical: linear},
	{name: "horizontal_bar", view: testsupport.HorizontalBarView, horizontal: linear, vertical: band},
	{name: "vertical_bar", view: testsupport.VerticalBarView, horizontal: band, vertical: linear},
}

func resolveFixture(f viewFixture, mutate func(*wire.View)) (model.View, error) {
	view := f.view()
	if mutate != nil {
		mutate(&view)
	}
	return model.ResolveView(view, f.horizontal(), f.vertical(), requestRanges)
}

func TestResolveView_AllKinds(t *testing.T) {
	for _, f := range viewFixtures {
		t.Run(f.name, func(t *testing.T) {
			view, err := resolveFixture(f, nil)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if string(view.Kind) != f.name {
				t.Fatalf("expected kind %q, got %q", f.name, view.Kind)
			}
			if (view.Point != nil) == (view.Bar != nil) {
				t.Fatalf("expected exactly one of point/bar options, got %+v / %+v", view.Point, view.Bar)
			}
		})
	}
}

func TestResolveView_Area(t *testing.T) {
	view, err := resolveFixture(viewFixtures[0], nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := model.View{
		Kind: model.ViewKindArea,
		Horizontal: model.Scale{
			Kind: model.ScaleKindBand, RangeStart: 0, RangeEnd: 930,
			Band: &model.BandScale{Categories: []string{"a", "b"}, InnerPadding: 0.1, OuterPadding: 0.1},
		},
		Vertical: model.Scale{
			Kind: model.ScaleKindLinear, RangeStart: 710, RangeEnd: 0,
			Linear: &model.LinearScale{DomainStart: 200, DomainEnd: 800},
		},
		Colors: model.ViewColors{
			Fill:        &model.Color{Hex: "#2b4b49"},
			Stroke:      &model.Color{Hex: "#226974"},
			PointFill:   &model.Color{Hex: "#1a888b"},
			PointStroke: &model.Color{Hex: "#50c5b6"},
		},
		Point: &model.PointOptions{
			Type:          model.PointTypeCircle,
			LabelPosition: model.PointLabelPositionTop,
			Visible:       true,
			LabelVisible:  true,
		},
		Values: model.Values{Scalar: []float64{300, 500}},
	}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveView_UnknownKind(t *testing.T) {
	for _, kind := range []wire.ViewKind{wire.ViewKindUnspecified, wire.ViewKind(42), wire.ViewKind(-1)} {
		view := testsupport.AreaView()
		view.Kind = kind
		if _, err := model.ResolveView(view, band(), linear(), requestRanges); !errors.Is(err, model.ErrViewKindUnknown) {
			t.Fatalf("%s: expected ErrViewKindUnknown, got %v", kind, err)
		}
	}
}

func TestResolveView_RejectsOtherPayloads(t *testing.T) {
	payloads := map[string]*wire.Values{
		"scalar": {Scalar: &wire.ScalarValues{Values: []float64{1}}},
		"points": {Points: &wire.PointsValues{Points: []wire.Point{{X: 1, Y: 1}}}},
		"bars": {Bars: &wire.BarsValues{Datasets: []wire.BarsDataset{{
			Values: []float64{1},
			Colors: &wire.BarsColors{Fill: wire.HexColor("#fff"), Stroke: wire.HexColor("#000")},
		}}}},
	}
	expected := map[string]struct {
		payload string
		err     error
	}{
		"area":           {"scalar", model.ErrExpectedScalarValues},
		"line":           {"scalar", model.ErrExpectedScalarValues},
		"scatter":        {"points", model.ErrExpectedPointsValues},
		"horizontal_bar": {"bars", model.ErrExpectedBarsValues},
		"vertical_bar":   {"bars", model.ErrExpectedBarsValues},
	}

	for _, f := range viewFixtures {
		for name, payload := range payloads {
			if name == expected[f.name].payload {
				continue
			}
			t.Run(f.name+"/"+name, func(t *testing.T) {
				_, err := resolveFixture(f, func(v *wire.View) { v.Values = payload })
				if !errors.Is(err, expected[f.name].err) {
					t.Fatalf("expected %v, got %v", expected[f.name].err, err)
				}
			})
		}
		t.Run(f.name+"/missing", func(t *testing.T) {
			_, err := resolveFixture(f, func(v *wire.View) { v.Values = nil })
			if !errors.Is(err, model.ErrViewValuesNotSpecified) {
				t.Fatalf("expected ErrViewValuesNotSpecified, got %v", err)
			}
		})
	}
}

func TestResolveView_AxisRoleMismatch(t *testing.T) {
	cases := []struct {
		fixture    viewFixture
		horizontal *wire.Scale
		vertical   *wire.Scale
		want       error
	}{
		{viewFixtures[0], linear(), linear(), model.ErrAreaHorizontalAxisNotBand},
		{viewFixtures[0], band(), band(), model.ErrAreaVerticalAxisNotLinear},
		{viewFixtures[1], linear(), linear(), model.ErrLineHorizontalAxisNotBand},
		{viewFixtures[1], band(), band(), model.ErrLineVerticalAxisNotLinear},
		{viewFixtures[2], band(), linear(), model.ErrScatterHorizontalAxisNotLinear},
		{viewFixtures[2], linear(), band(), model.ErrScatterVerticalAxisNotLinear},
		{viewFixtures[3], band(), band(), model.ErrHorizontalBarHorizontalAxisNotLinear},
		{viewFixtures[3], linear(), linear(), model.ErrHorizontalBarVerticalAxisNotBand},
		{viewFixtures[4], linear(), linear(), model.ErrVerticalBarHorizontalAxisNotBand},
		{viewFixtures[4], band(), band(), model.ErrVerticalBarVerticalAxisNotLinear},
	}

	for _, tc := range cases {
		t.Run(tc.want.(model.ErrorKind).Code(), func(t *testing.T) {
			_, err := model.ResolveView(tc.fixture.view(), tc.horizontal, tc.vertical, requestRanges)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestResolveView_MandatoryColors(t *testing.T) {
	cases := []struct {
		fixture viewFixture
		clear   func(*wire.ViewColors)
		want    error
	}{
		{viewFixtures[0], func(c *wire.ViewColors) { c.Fill = nil }, model.ErrAreaFillColorNotSpecified},
		{viewFixtures[0], func(c *wire.ViewColors) { c.Stroke = nil }, model.ErrAreaStrokeColorNotSpecified},
		{viewFixtures[0], func(c *wire.ViewColors) { c.PointFill = nil }, model.ErrAreaPointFillColorNotSpecified},
		{viewFixtures[0], func(c *wire.ViewColors) { c.PointStroke = nil }, model.ErrAreaPointStrokeColorNotSpecified},
		{viewFixtures[1], func(c *wire.ViewColors) { c.Stroke = nil }, model.ErrLineStrokeColorNotSpecified},
		{viewFixtures[1], func(c *wire.ViewColors) { c.PointFill = nil }, model.ErrLinePointFillColorNotSpecified},
		{viewFixtures[1], func(c *wire.ViewColors) { c.PointStroke = nil }, model.ErrLinePointStrokeColorNotSpecified},
		{viewFixtures[2], func(c *wire.ViewColors) { c.PointFill = nil }, model.ErrScatterPointFillColorNotSpecified},
		{viewFixtures[2], func(c *wire.ViewColors) { c.PointStroke = nil }, model.ErrScatterPointStrokeColorNotSpecified},
	}

	for _, tc := range cases {
		t.Run(tc.want.(model.ErrorKind).Code(), func(t *testing.T) {
			_, err := resolveFixture(tc.fixture, func(v *wire.View) { tc.clear(v.Colors) })
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	for _, f := range viewFixtures[:3] {
		t.Run(f.name+"/bundle", func(t *testing.T) {
			_, err := resolveFixture(f, func(v *wire.View) { v.Colors = nil })
			if !errors.Is(err, model.ErrViewColorsNotSpecified) {
				t.Fatalf("expected ErrViewColorsNotSpecified, got %v", err)
			}
		})
	}
}

func TestResolveView_LineKeepsOptionalFill(t *testing.T) {
	view, err := resolveFixture(viewFixtures[1], func(v *wire.View) { v.Colors.Fill = wire.RGBColor(1, 2, 3) })
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if view.Colors.Fill == nil || view.Colors.Fill.String() != "rgb(1,2,3)" {
		t.Fatalf("expected optional fill to be carried, got %+v", view.Colors.Fill)
	}
}

func TestResolveView_PointOptions(t *testing.T) {
	cases := []struct {
		description string
		mutate      func(*wire.View)
		want        error
	}{
		{"point type unspecified", func(v *wire.View) { v.PointType = wire.PointTypeUnspecified }, model.ErrPointTypeUnknown},
		{"point type out of range", func(v *wire.View) { v.PointType = wire.PointType(9) }, model.ErrPointTypeUnknown},
		{"label position unspecified", func(v *wire.View) { v.PointLabelPosition = wire.PointLabelPositionUnspecified }, model.ErrPointLabelPositionUnknown},
		{"label position out of range", func(v *wire.View) { v.PointLabelPosition = wire.PointLabelPosition(-1) }, model.ErrPointLabelPositionUnknown},
		{"point visible", func(v *wire.View) { v.PointVisible = nil }, model.ErrPointVisibleNotSpecified},
		{"point label visible", func(v *wire.View) { v.PointLabelVisible = nil }, model.ErrPointLabelVisibleNotSpecified},
		{"enums checked before flags", func(v *wire.View) {
			v.PointVisible = nil
			v.PointLabelPosition = wire.PointLabelPositionUnspecified
		}, model.ErrPointLabelPositionUnknown},
	}

	for _, f := range viewFixtures[:3] {
		for _, tc := range cases {
			t.Run(f.name+"/"+tc.description, func(t *testing.T) {
				_, err := resolveFixture(f, tc.mutate)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	}
}

func TestResolveView_BarOptions(t *testing.T) {
	cases := []struct {
		description string
		mutate      func(*wire.View)
		want        error
	}{
		{"label visible", func(v *wire.View) { v.BarLabelVisible = nil }, model.ErrBarLabelVisibleNotSpecified},
		{"label position unspecified", func(v *wire.View) { v.BarLabelPosition = wire.BarLabelPositionUnspecified }, model.ErrBarLabelPositionUnknown},
		{"label position out of range", func(v *wire.View) { v.BarLabelPosition = wire.BarLabelPosition(6) }, model.ErrBarLabelPositionUnknown},
		{"position checked before visibility", func(v *wire.View) {
			v.BarLabelVisible = nil
			v.BarLabelPosition = wire.BarLabelPositionUnspecified
		}, model.ErrBarLabelPositionUnknown},
	}

	for _, f := range viewFixtures[3:] {
		for _, tc := range cases {
			t.Run(f.name+"/"+tc.description, func(t *testing.T) {
				_, err := resolveFixture(f, tc.mutate)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	}
}

func TestResolveView_BarsCarrySuppliedViewColors(t *testing.T) {
	view, err := resolveFixture(viewFixtures[4], func(v *wire.View) {
		v.Colors = &wire.ViewColors{Stroke: wire.HexColor("#226974")}
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff(model.ViewColors{Stroke: &model.Color{Hex: "#226974"}}, view.Colors); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveView_BarsIgnoreMissingViewColors(t *testing.T) {
	view, err := resolveFixture(viewFixtures[4], func(v *wire.View) { v.Colors = nil })
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff(model.ViewColors{}, view.Colors); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveEnumerations(t *testing.T) {
	for tag := wire.PointType(1); tag <= wire.PointTypeX; tag++ {
		if _, err := model.ResolvePointType(tag); err != nil {
			t.Fatalf("point type %s: %v", tag, err)
		}
	}
	for tag := wire.PointLabelPosition(1); tag <= wire.PointLabelPositionBottomRight; tag++ {
		if _, err := model.ResolvePointLabelPosition(tag); err != nil {
			t.Fatalf("point label position %s: %v", tag, err)
		}
	}
	for tag := wire.BarLabelPosition(1); tag <= wire.BarLabelPositionEndOutside; tag++ {
		if _, err := model.ResolveBarLabelPosition(tag); err != nil {
			t.Fatalf("bar label position %s: %v", tag, err)
		}
	}
}
