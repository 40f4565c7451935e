// Package yamlout emits the resolved chart model as YAML.
package yamlout

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-chartgen/pkg/model"
	"github.com/goliatone/go-chartgen/pkg/render"
)

// Name is the registry name of the YAML renderer.
const Name = "yaml"

// Renderer implements render.Renderer for application/yaml.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a YAML renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/yaml"
}

func (r *Renderer) Render(ctx context.Context, chart model.Chart, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if chart.RequestID == "" {
		chart.RequestID = options.RequestID
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(chart); err != nil {
		return nil, fmt.Errorf("yamlout: encode chart: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yamlout: flush: %w", err)
	}
	return buf.Bytes(), nil
}
