// Package page wraps an SVG chart in a standalone HTML document built from a
// pongo2 template.
package page

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-chartgen/pkg/model"
	"github.com/goliatone/go-chartgen/pkg/render"
	"github.com/goliatone/go-chartgen/pkg/renderers/gochart"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const (
	// Name is the registry name of the page renderer.
	Name = "html"

	defaultTemplate = "page.tpl"
)

// Option customises the page renderer.
type Option func(*Renderer)

// WithTemplatesFS replaces the embedded templates. The filesystem must hold a
// file named by WithTemplate, "page.tpl" by default.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.templates = fsys
		}
	}
}

// WithTemplate selects the template file inside the template filesystem.
func WithTemplate(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.template = name
		}
	}
}

// WithChartRenderer sets the renderer that produces the inlined SVG.
func WithChartRenderer(renderer render.Renderer) Option {
	return func(r *Renderer) {
		if renderer != nil {
			r.chart = renderer
		}
	}
}

// Renderer implements render.Renderer producing text/html.
type Renderer struct {
	templates fs.FS
	template  string
	chart     render.Renderer

	once sync.Once
	tmpl *pongo2.Template
	err  error
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a page renderer. Without options it uses the embedded
// template and the go-chart SVG renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		templates: TemplatesFS(),
		template:  defaultTemplate,
		chart:     gochart.NewSVG(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.chart.ContentType() != "image/svg+xml" {
		return nil, fmt.Errorf("page: chart renderer %q does not produce svg", r.chart.Name())
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws the chart as SVG and embeds the sanitised markup in the page.
func (r *Renderer) Render(ctx context.Context, c model.Chart, options render.RenderOptions) ([]byte, error) {
	if r == nil {
		return nil, errors.New("page: renderer is nil")
	}
	tmpl, err := r.load()
	if err != nil {
		return nil, err
	}

	svg, err := r.chart.Render(ctx, c, options)
	if err != nil {
		return nil, fmt.Errorf("page: render svg: %w", err)
	}

	requestID := options.RequestID
	if requestID == "" {
		requestID = c.RequestID
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pageContext(c, requestID, sanitizeSVG(string(svg))), &buf); err != nil {
		return nil, fmt.Errorf("page: execute template %q: %w", r.template, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) load() (*pongo2.Template, error) {
	r.once.Do(func() {
		set := pongo2.NewSet("chartgen", pongo2.NewFSLoader(r.templates))
		r.tmpl, r.err = set.FromFile(r.template)
		if r.err != nil {
			r.err = fmt.Errorf("page: load template %q: %w", r.template, r.err)
		}
	})
	return r.tmpl, r.err
}

func pageContext(c model.Chart, requestID, svg string) pongo2.Context {
	axes := make([]map[string]any, 0, len(c.Axes))
	for _, axis := range c.Axes {
		axes = append(axes, map[string]any{
			"position": string(axis.Position),
			"label":    sanitizeText(axis.Label),
			"scale":    string(axis.Scale.Kind),
		})
	}

	views := make([]map[string]any, 0, len(c.Views))
	for _, view := range c.Views {
		views = append(views, map[string]any{
			"kind":  string(view.Kind),
			"count": valueCount(view.Values),
		})
	}

	return pongo2.Context{
		"title":      sanitizeText(c.Title),
		"request_id": requestID,
		"width":      c.Geometry.Width,
		"svg":        svg,
		"axes":       axes,
		"views":      views,
	}
}

func valueCount(values model.Values) int {
	switch {
	case values.Scalar != nil:
		return len(values.Scalar)
	case values.Points != nil:
		return len(values.Points)
	default:
		total := 0
		for _, dataset := range values.Bars {
			total += len(dataset.Values)
		}
		return total
	}
}

// TemplatesFS exposes the embedded page templates so callers can copy or
// extend them before passing their own set to WithTemplatesFS.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
