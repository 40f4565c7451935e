// Package server exposes the chart service over connect with cleartext
// HTTP/2 support, a health probe and the API description.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const readHeaderTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Addr           string
	Generator      Generator
	Logger         *slog.Logger
	AllowedOrigins []string
}

// Server hosts the chart service.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

// New validates options and assembles the HTTP handler tree.
func New(ctx context.Context, options Options) (*Server, error) {
	if options.Generator == nil {
		return nil, errors.New("server: generator is required")
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	apiDoc, err := OpenAPIDocument(ctx)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	chart := NewChartHandler(options.Generator, logger)
	mux.Handle(RenderChartProcedure, connect.NewUnaryHandler(
		RenderChartProcedure,
		chart.RenderChart,
		connect.WithCodec(jsonCodec{}),
	))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(apiDoc)
	})

	handler := withCORS(mux, options.AllowedOrigins)
	return &Server{
		http: &http.Server{
			Addr:              options.Addr,
			Handler:           h2c.NewHandler(handler, &http2.Server{}),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}, nil
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Serve accepts connections on l until Shutdown is called. A clean shutdown
// returns nil.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("Starting chart server", slog.String("addr", l.Addr().String()))
	if err := s.http.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address and serves.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.http.Addr, err)
	}
	return s.Serve(l)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down chart server")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
