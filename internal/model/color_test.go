package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartgen/internal/model"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

func TestResolveColor(t *testing.T) {
	cases := []struct {
		description string
		input       *wire.Color
		wantOK      bool
		wantString  string
	}{
		{description: "absent", input: nil},
		{description: "empty one-of", input: &wire.Color{}},
		{description: "hex kept as given", input: wire.HexColor("#0E0C50"), wantOK: true, wantString: "#0E0C50"},
		{description: "hex not validated", input: wire.HexColor("not-a-color"), wantOK: true, wantString: "not-a-color"},
		{description: "rgb", input: wire.RGBColor(14, 12, 80), wantOK: true, wantString: "rgb(14,12,80)"},
		{description: "rgb truncated", input: wire.RGBColor(256+14, 512+12, 80), wantOK: true, wantString: "rgb(14,12,80)"},
		{description: "both variants", input: &wire.Color{Hex: wire.Ptr("#0E0C50"), RGB: &wire.RGB{R: 14, G: 12, B: 80}}},
	}

	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			color, ok := model.ResolveColor(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if got := color.String(); got != tc.wantString {
				t.Fatalf("expected %q, got %q", tc.wantString, got)
			}
		})
	}
}

func TestColor_MarshalsCanonicalString(t *testing.T) {
	hex, _ := model.ResolveColor(wire.HexColor("#0E0C50"))
	rgb, _ := model.ResolveColor(wire.RGBColor(14, 12, 80))

	payload, err := json.Marshal([]model.Color{hex, rgb})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if diff := cmp.Diff(`["#0E0C50","rgb(14,12,80)"]`, string(payload)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveViewColors(t *testing.T) {
	if _, err := model.ResolveViewColors(nil); !errors.Is(err, model.ErrViewColorsNotSpecified) {
		t.Fatalf("expected ErrViewColorsNotSpecified, got %v", err)
	}

	colors, err := model.ResolveViewColors(&wire.ViewColors{
		Stroke:    wire.HexColor("#226974"),
		PointFill: wire.RGBColor(1, 2, 3),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := model.ViewColors{
		Stroke:    &model.Color{Hex: "#226974"},
		PointFill: &model.Color{RGB: &model.RGB{R: 1, G: 2, B: 3}},
	}
	if diff := cmp.Diff(want, colors); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
