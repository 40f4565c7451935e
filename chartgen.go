// Package chartgen compiles chart requests into validated chart models and
// renders them. The root package re-exports the most common entry points.
package chartgen

import (
	"context"

	"github.com/goliatone/go-chartgen/pkg/orchestrator"
	"github.com/goliatone/go-chartgen/pkg/render"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// DefaultRegistry returns a registry holding every built-in renderer.
func DefaultRegistry() (*render.Registry, error) {
	return orchestrator.DefaultRegistry()
}

// Generate loads the request document from source, builds the chart model and
// renders it using the named renderer. An empty rendererName selects svg.
func Generate(ctx context.Context, source wire.Source, rendererName string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFromRequest renders an already decoded request, bypassing the
// loader stage.
func GenerateFromRequest(ctx context.Context, req wire.RenderChartRequest, rendererName string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Chart:    &req,
		Renderer: rendererName,
	})
}
