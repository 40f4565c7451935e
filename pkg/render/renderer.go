package render

import (
	"context"

	"github.com/goliatone/go-chartgen/pkg/model"
)

// Renderer turns a resolved chart into bytes (SVG, PNG, HTML, JSON, ...).
// Renderers own every geometric decision; the chart they receive is already
// validated. Failures are reported as plain errors and wrapped by the caller.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, chart model.Chart, options RenderOptions) ([]byte, error)
}
