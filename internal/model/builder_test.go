package model_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartgen/internal/model"
	"github.com/goliatone/go-chartgen/pkg/testsupport"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

func TestBuilder_VerticalBarScenario(t *testing.T) {
	chart, err := model.New(model.Options{}).Build(testsupport.Context(), testsupport.VerticalBarRequest())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(chart.Views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(chart.Views))
	}
	view := chart.Views[0]
	if view.Kind != model.ViewKindVerticalBar {
		t.Fatalf("expected vertical bar, got %q", view.Kind)
	}
	if view.Horizontal.Kind != model.ScaleKindBand || view.Horizontal.Band == nil {
		t.Fatalf("expected band horizontal scale, got %+v", view.Horizontal)
	}
	if diff := cmp.Diff([]string{"a", "b"}, view.Horizontal.Band.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&model.LinearScale{DomainStart: 200, DomainEnd: 800}, view.Vertical.Linear); diff != "" {
		t.Fatalf("vertical domain mismatch (-want +got):\n%s", diff)
	}
	wantBar := &model.BarOptions{LabelVisible: true, LabelPosition: model.BarLabelPositionStartInside}
	if diff := cmp.Diff(wantBar, view.Bar); diff != "" {
		t.Fatalf("bar options mismatch (-want +got):\n%s", diff)
	}
	dataset := model.BarsDataset{Values: []float64{64, 32}, Fill: model.Color{Hex: "#028c02"}, Stroke: model.Color{Hex: "#02b502"}}
	if diff := cmp.Diff([]model.BarsDataset{dataset, dataset}, view.Values.Bars); diff != "" {
		t.Fatalf("datasets mismatch (-want +got):\n%s", diff)
	}

	wantAxes := []model.AxisPosition{model.AxisPositionBottom, model.AxisPositionLeft}
	var gotAxes []model.AxisPosition
	for _, axis := range chart.Axes {
		gotAxes = append(gotAxes, axis.Position)
	}
	if diff := cmp.Diff(wantAxes, gotAxes); diff != "" {
		t.Fatalf("axes mismatch (-want +got):\n%s", diff)
	}
	if chart.RequestID != "req-vertical-bar" || chart.Title != "Vertical bars" {
		t.Fatalf("unexpected header %q / %q", chart.RequestID, chart.Title)
	}
}

func TestBuilder_MissingVerticalAxisFailsBeforeViews(t *testing.T) {
	req := testsupport.VerticalBarRequest()
	req.Axes.Left = nil
	req.Axes.Right = nil
	req.Views = append(req.Views, wire.View{Kind: wire.ViewKindUnspecified})

	_, err := model.New(model.Options{}).Build(testsupport.Context(), req)
	if !errors.Is(err, model.ErrVerticalAxisNotSpecified) {
		t.Fatalf("expected ErrVerticalAxisNotSpecified, got %v", err)
	}
	if err.Error() != "left or right axis must be specified" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestBuilder_OrderOfChecks(t *testing.T) {
	cases := []struct {
		description string
		mutate      func(*wire.RenderChartRequest)
		want        error
	}{
		{"axes", func(r *wire.RenderChartRequest) { r.Axes = nil; r.Sizes = nil }, model.ErrChartAxesNotSpecified},
		{"horizontal before geometry", func(r *wire.RenderChartRequest) { r.Axes.Bottom = nil; r.Sizes = nil }, model.ErrHorizontalAxisNotSpecified},
		{"geometry before views", func(r *wire.RenderChartRequest) {
			r.Margins.Right = nil
			r.Views[0].Kind = wire.ViewKindUnspecified
		}, model.ErrChartRightMarginNotSpecified},
		{"first failing view wins", func(r *wire.RenderChartRequest) {
			r.Views[0].BarLabelVisible = nil
			r.Views = append(r.Views, wire.View{Kind: wire.ViewKind(99)})
		}, model.ErrBarLabelVisibleNotSpecified},
		{"views before unused axis slots", func(r *wire.RenderChartRequest) {
			r.Axes.Right = testsupport.LinearScale(0, 1)
			r.Axes.Right.Kind = wire.ScaleKindUnspecified
			r.Views[0].Values = nil
		}, model.ErrViewValuesNotSpecified},
		{"unused axis slot validated", func(r *wire.RenderChartRequest) {
			r.Axes.Right = testsupport.LinearScale(0, 1)
			r.Axes.Right.Kind = wire.ScaleKindUnspecified
		}, model.ErrRightAxisNotBandOrLinear},
	}

	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			req := testsupport.VerticalBarRequest()
			tc.mutate(&req)
			_, err := model.New(model.Options{}).Build(testsupport.Context(), req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBuilder_TopAndLeftTakePrecedence(t *testing.T) {
	req := testsupport.MixedRequest()
	req.Axes.Top = testsupport.BandScale("x", "y", "z")
	req.Axes.Right = testsupport.LinearScale(0, 10)

	chart, err := model.New(model.Options{}).Build(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i, view := range chart.Views {
		if diff := cmp.Diff([]string{"x", "y", "z"}, view.Horizontal.Band.Categories); diff != "" {
			t.Fatalf("view %d horizontal categories (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(&model.LinearScale{DomainStart: 200, DomainEnd: 800}, view.Vertical.Linear); diff != "" {
			t.Fatalf("view %d vertical domain (-want +got):\n%s", i, diff)
		}
	}
	if len(chart.Axes) != 4 {
		t.Fatalf("expected all four axes, got %d", len(chart.Axes))
	}
}

func TestBuilder_SharedAxisRoleMismatchFailsOneView(t *testing.T) {
	req := testsupport.MixedRequest()
	req.Views = append(req.Views, testsupport.ScatterView())

	_, err := model.New(model.Options{}).Build(testsupport.Context(), req)
	if !errors.Is(err, model.ErrScatterHorizontalAxisNotLinear) {
		t.Fatalf("expected ErrScatterHorizontalAxisNotLinear, got %v", err)
	}
}

func TestBuilder_PreservesViewOrder(t *testing.T) {
	chart, err := model.New(model.Options{}).Build(testsupport.Context(), testsupport.MixedRequest())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var kinds []model.ViewKind
	for _, view := range chart.Views {
		kinds = append(kinds, view.Kind)
	}
	want := []model.ViewKind{model.ViewKindArea, model.ViewKindVerticalBar, model.ViewKindLine}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// Each kind needs a different pairing of axis kinds, so the five-kind round
// trip resolves every view against its own axes and assembles the result.
func TestAssemble_FiveKindsRoundTrip(t *testing.T) {
	geometry, err := model.ResolveGeometry(testsupport.Sizes(), testsupport.Margins())
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}

	order := []int{4, 0, 2, 3, 1}
	views := make([]model.View, 0, len(order))
	for _, i := range order {
		f := viewFixtures[i]
		view, err := model.ResolveView(f.view(), f.horizontal(), f.vertical(), requestRanges)
		if err != nil {
			t.Fatalf("%s: %v", f.name, err)
		}
		views = append(views, view)
	}

	chart := model.Assemble("req-5", "five", geometry, nil, views)
	if len(chart.Views) != 5 {
		t.Fatalf("expected 5 views, got %d", len(chart.Views))
	}
	for pos, i := range order {
		if got := string(chart.Views[pos].Kind); got != viewFixtures[i].name {
			t.Fatalf("position %d: expected %q, got %q", pos, viewFixtures[i].name, got)
		}
	}
}

func TestBuilder_RangeFromGeometry(t *testing.T) {
	req := testsupport.VerticalBarRequest()
	req.Axes.Bottom.RangeStart, req.Axes.Bottom.RangeEnd = nil, nil
	req.Axes.Left.RangeStart, req.Axes.Left.RangeEnd = nil, nil

	if _, err := model.New(model.Options{}).Build(testsupport.Context(), req); !errors.Is(err, model.ErrScaleRangeStartNotSpecified) {
		t.Fatalf("expected ErrScaleRangeStartNotSpecified by default, got %v", err)
	}

	chart, err := model.New(model.Options{RangeStrategy: model.RangeFromGeometry}).Build(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	view := chart.Views[0]
	if view.Horizontal.RangeEnd != 930 || view.Vertical.RangeStart != 710 {
		t.Fatalf("unexpected derived ranges %+v / %+v", view.Horizontal, view.Vertical)
	}
}

func TestBuilder_CancelledBetweenViews(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := model.New(model.Options{}).Build(ctx, testsupport.MixedRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, ok := model.KindOf(err); ok {
		t.Fatalf("cancellation must stay outside the taxonomy")
	}
}

func TestBuilder_NoViews(t *testing.T) {
	req := testsupport.VerticalBarRequest()
	req.Views = nil

	chart, err := model.New(model.Options{}).Build(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(chart.Views) != 0 {
		t.Fatalf("expected no views, got %d", len(chart.Views))
	}
}
