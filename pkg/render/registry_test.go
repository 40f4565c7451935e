package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartgen/pkg/model"
	"github.com/goliatone/go-chartgen/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.Chart, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry_RegisterAndList(t *testing.T) {
	registry := render.NewRegistry(namedRenderer("svg"), namedRenderer("json"))
	if err := registry.Register(namedRenderer("png")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if diff := cmp.Diff([]string{"json", "png", "svg"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("png") || registry.Has("pdf") {
		t.Fatalf("unexpected Has results")
	}

	if err := registry.Register(namedRenderer("svg")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected unnamed renderer to fail")
	}
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate")
		}
	}()
	render.NewRegistry(namedRenderer("svg"), namedRenderer("svg"))
}

func TestRegistry_Resolve(t *testing.T) {
	registry := render.NewRegistry(namedRenderer("svg"), namedRenderer("json"))

	cases := []struct {
		name      string
		requested string
		fallback  string
		want      string
		wantErr   bool
	}{
		{name: "requested", requested: "svg", fallback: "json", want: "svg"},
		{name: "fallback", fallback: "svg", want: "svg"},
		{name: "missing fallback uses first sorted", fallback: "pdf", want: "json"},
		{name: "no preference uses first sorted", want: "json"},
		{name: "unknown requested", requested: "pdf", fallback: "svg", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := registry.Resolve(tc.requested, tc.fallback)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got.Name() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got.Name())
			}
		})
	}

	if _, err := render.NewRegistry().Resolve("", "svg"); !errors.Is(err, render.ErrNoRenderers) {
		t.Fatalf("expected ErrNoRenderers, got %v", err)
	}
}
