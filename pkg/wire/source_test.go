package wire_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartgen/pkg/wire"
)

func TestParseSource(t *testing.T) {
	cases := []struct {
		raw      string
		kind     wire.SourceKind
		location string
	}{
		{raw: "charts/request.yaml", kind: wire.SourceKindFile, location: filepath.Clean("charts/request.yaml")},
		{raw: "  ./charts//request.json ", kind: wire.SourceKindFile, location: filepath.Clean("charts/request.json")},
		{raw: "https://charts.example.com/request.json", kind: wire.SourceKindURL, location: "https://charts.example.com/request.json"},
		{raw: "HTTP://charts.example.com/r.yaml", kind: wire.SourceKindURL, location: "HTTP://charts.example.com/r.yaml"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			src, err := wire.ParseSource(tc.raw)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := [2]string{string(src.Kind()), src.Location()}
			want := [2]string{string(tc.kind), tc.location}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("source mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSource_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "https://", "http:// bad host/"} {
		if _, err := wire.ParseSource(raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestSourceFromURL_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for url without host")
		}
	}()
	wire.SourceFromURL("https://")
}

func TestSourceFromFS_KeepsName(t *testing.T) {
	src := wire.SourceFromFS("charts/request.yaml")
	if src.Kind() != wire.SourceKindFS || src.Location() != "charts/request.yaml" {
		t.Fatalf("unexpected fs source %s %s", src.Kind(), src.Location())
	}
}
