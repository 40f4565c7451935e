package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-chartgen/internal/config"
	"github.com/goliatone/go-chartgen/internal/logging"
	"github.com/goliatone/go-chartgen/internal/server"
	"github.com/goliatone/go-chartgen/pkg/model"
	"github.com/goliatone/go-chartgen/pkg/orchestrator"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Chart server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	options := []orchestrator.Option{
		orchestrator.WithModelBuilder(model.NewBuilder(model.WithRangeStrategy(cfg.RangeStrategy))),
		orchestrator.WithLogger(logger),
	}
	if cfg.Renderer != "" {
		options = append(options, orchestrator.WithDefaultRenderer(cfg.Renderer))
	}
	gen := orchestrator.New(options...)

	srv, err := server.New(ctx, server.Options{
		Addr:           cfg.Addr,
		Generator:      gen,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
