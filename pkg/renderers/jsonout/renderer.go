// Package jsonout emits the resolved chart model as JSON so external
// renderers can consume it directly.
package jsonout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-chartgen/pkg/model"
	"github.com/goliatone/go-chartgen/pkg/render"
)

// Name is the registry name of the JSON renderer.
const Name = "json"

// Option customises the JSON renderer.
type Option func(*Renderer)

// WithIndent pretty prints the document using indent for each level.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer implements render.Renderer for application/json.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a JSON renderer. Output is indented with two spaces unless
// WithIndent overrides it.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, chart model.Chart, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if chart.RequestID == "" {
		chart.RequestID = options.RequestID
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(chart); err != nil {
		return nil, fmt.Errorf("jsonout: encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
