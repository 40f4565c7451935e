package orchestrator

import (
	"fmt"

	"github.com/goliatone/go-chartgen/pkg/render"
	"github.com/goliatone/go-chartgen/pkg/renderers/gochart"
	"github.com/goliatone/go-chartgen/pkg/renderers/jsonout"
	"github.com/goliatone/go-chartgen/pkg/renderers/page"
	"github.com/goliatone/go-chartgen/pkg/renderers/yamlout"
)

// DefaultRendererName is used when neither the request nor the orchestrator
// options name a renderer.
const DefaultRendererName = "svg"

// DefaultRegistry returns a registry holding every built-in renderer: svg,
// png, html, json and yaml.
func DefaultRegistry() (*render.Registry, error) {
	html, err := page.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: html renderer: %w", err)
	}
	return render.NewRegistry(
		gochart.NewSVG(),
		gochart.NewPNG(),
		html,
		jsonout.New(),
		yamlout.New(),
	), nil
}
