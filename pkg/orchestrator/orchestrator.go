package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	internalLoader "github.com/goliatone/go-chartgen/internal/wire/loader"
	"github.com/goliatone/go-chartgen/pkg/model"
	"github.com/goliatone/go-chartgen/pkg/render"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom request document loader.
func WithLoader(loader wire.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithModelBuilder injects a custom chart model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger sets the structured logger used for failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the full pipeline from request document to rendered
// chart. It applies defaults (built-in renderers, svg output) while remaining
// open to dependency injection.
type Orchestrator struct {
	loader          wire.Loader
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: DefaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs of one chart rendering.
type Request struct {
	// Source identifies where the request document lives. Ignored when
	// Document or Chart is supplied.
	Source wire.Source

	// Document bypasses the loader with an already fetched payload.
	Document *wire.Document

	// Chart bypasses loading and decoding entirely.
	Chart *wire.RenderChartRequest

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to its default renderer, then to the first registered one.
	Renderer string
}

// Result is the rendered chart together with its metadata.
type Result struct {
	RequestID   string
	Renderer    string
	ContentType string
	ChartData   []byte
}

// Generate executes the load → decode → build → render sequence. Resolution
// failures are returned wrapped with their model.ErrorKind intact; renderer
// failures are wrapped in *model.RenderError.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	chartReq, err := o.resolveRequest(ctx, req)
	if err != nil {
		return Result{}, err
	}

	chart, err := o.builder.Build(ctx, chartReq)
	if err != nil {
		if kind, ok := model.KindOf(err); ok {
			o.logger.DebugContext(ctx, "Invalid chart request",
				slog.String("request_id", chartReq.RequestID),
				slog.String("code", kind.Code()),
			)
		}
		return Result{}, fmt.Errorf("orchestrator: build chart model: %w", err)
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	data, err := renderer.Render(ctx, chart, render.RenderOptions{RequestID: chartReq.RequestID})
	if err != nil {
		o.logger.ErrorContext(ctx, "Unable to render chart",
			slog.String("request_id", chartReq.RequestID),
			slog.String("renderer", renderer.Name()),
			slog.Any("err", err),
		)
		return Result{}, &model.RenderError{Err: err}
	}

	o.logger.DebugContext(ctx, "Chart rendered",
		slog.String("request_id", chartReq.RequestID),
		slog.String("renderer", renderer.Name()),
		slog.Int("views", len(chart.Views)),
	)

	return Result{
		RequestID:   chartReq.RequestID,
		Renderer:    renderer.Name(),
		ContentType: renderer.ContentType(),
		ChartData:   data,
	}, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

// DefaultRenderer reports the renderer used when requests name none.
func (o *Orchestrator) DefaultRenderer() string {
	return o.defaultRenderer
}

func (o *Orchestrator) resolveRequest(ctx context.Context, req Request) (wire.RenderChartRequest, error) {
	if req.Chart != nil {
		return *req.Chart, nil
	}

	var doc wire.Document
	switch {
	case req.Document != nil:
		doc = *req.Document
	case req.Source != nil:
		loaded, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return wire.RenderChartRequest{}, fmt.Errorf("orchestrator: load document: %w", err)
		}
		doc = loaded
	default:
		return wire.RenderChartRequest{}, errors.New("orchestrator: source, document or chart is required")
	}

	chartReq, err := doc.Request()
	if err != nil {
		return wire.RenderChartRequest{}, fmt.Errorf("orchestrator: %w", err)
	}
	return chartReq, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	renderer, err := o.registry.Resolve(name, o.defaultRenderer)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		loader, err := internalLoader.New(wire.NewLoaderOptions())
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default loader: %w", err)
			return
		}
		o.loader = loader
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.registry = registry
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
}
