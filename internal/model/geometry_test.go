package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartgen/internal/model"
	"github.com/goliatone/go-chartgen/pkg/testsupport"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

func TestResolveGeometry(t *testing.T) {
	geometry, err := model.ResolveGeometry(testsupport.Sizes(), testsupport.Margins())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := model.Geometry{
		Width: 1000, Height: 800,
		MarginTop: 20, MarginBottom: 70, MarginLeft: 40, MarginRight: 30,
	}
	if diff := cmp.Diff(want, geometry); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if geometry.InnerWidth() != 930 || geometry.InnerHeight() != 710 {
		t.Fatalf("unexpected inner extent %dx%d", geometry.InnerWidth(), geometry.InnerHeight())
	}
}

func TestResolveGeometry_NegativeExtentAllowed(t *testing.T) {
	margins := testsupport.Margins()
	margins.Left = wire.Ptr[int32](2000)

	geometry, err := model.ResolveGeometry(testsupport.Sizes(), margins)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if geometry.InnerWidth() >= 0 {
		t.Fatalf("expected negative inner width, got %d", geometry.InnerWidth())
	}
}

func TestResolveGeometry_EachSlotIndependently(t *testing.T) {
	cases := []struct {
		description string
		mutate      func(*wire.Sizes, *wire.Margins) (*wire.Sizes, *wire.Margins)
		want        error
	}{
		{
			description: "sizes",
			mutate:      func(_ *wire.Sizes, m *wire.Margins) (*wire.Sizes, *wire.Margins) { return nil, m },
			want:        model.ErrChartSizesNotSpecified,
		},
		{
			description: "width",
			mutate: func(s *wire.Sizes, m *wire.Margins) (*wire.Sizes, *wire.Margins) {
				s.Width = nil
				return s, m
			},
			want: model.ErrChartWidthNotSpecified,
		},
		{
			description: "height",
			mutate: func(s *wire.Sizes, m *wire.Margins) (*wire.Sizes, *wire.Margins) {
				s.Height = nil
				return s, m
			},
			want: model.ErrChartHeightNotSpecified,
		},
		{
			description: "margins",
			mutate:      func(s *wire.Sizes, _ *wire.Margins) (*wire.Sizes, *wire.Margins) { return s, nil },
			want:        model.ErrChartMarginsNotSpecified,
		},
		{
			description: "top",
			mutate: func(s *wire.Sizes, m *wire.Margins) (*wire.Sizes, *wire.Margins) {
				m.Top = nil
				return s, m
			},
			want: model.ErrChartTopMarginNotSpecified,
		},
		{
			description: "bottom",
			mutate: func(s *wire.Sizes, m *wire.Margins) (*wire.Sizes, *wire.Margins) {
				m.Bottom = nil
				return s, m
			},
			want: model.ErrChartBottomMarginNotSpecified,
		},
		{
			description: "left",
			mutate: func(s *wire.Sizes, m *wire.Margins) (*wire.Sizes, *wire.Margins) {
				m.Left = nil
				return s, m
			},
			want: model.ErrChartLeftMarginNotSpecified,
		},
		{
			description: "right",
			mutate: func(s *wire.Sizes, m *wire.Margins) (*wire.Sizes, *wire.Margins) {
				m.Right = nil
				return s, m
			},
			want: model.ErrChartRightMarginNotSpecified,
		},
	}

	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			sizes, margins := tc.mutate(testsupport.Sizes(), testsupport.Margins())
			_, err := model.ResolveGeometry(sizes, margins)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
