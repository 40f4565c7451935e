package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-chartgen/internal/logging"
	"github.com/goliatone/go-chartgen/internal/prompt"
	"github.com/goliatone/go-chartgen/internal/wire/loader"
	"github.com/goliatone/go-chartgen/pkg/model"
	"github.com/goliatone/go-chartgen/pkg/orchestrator"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

func main() {
	source := flag.String("source", "", "chart request document path or URL (JSON or YAML)")
	renderer := flag.String("renderer", "", "renderer to use (prompted when empty on a terminal)")
	output := flag.String("output", "", "output file (stdout if empty)")
	rangeStrategy := flag.String("range-strategy", "", "scale range source: request or geometry")
	timeout := flag.Duration("timeout", 30*time.Second, "remote fetch timeout")
	verbose := flag.Bool("v", false, "log debug details to stderr")
	flag.Parse()

	ctx := context.Background()

	src, err := wire.ParseSource(*source)
	if err != nil {
		log.Fatalf("Invalid source: %v", err)
	}

	strategy, err := model.ParseRangeStrategy(*rangeStrategy)
	if err != nil {
		log.Fatalf("Invalid range strategy: %v", err)
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger, err := logging.New(os.Stderr, "text", level)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	docLoader, err := loader.New(wire.NewLoaderOptions(wire.WithHTTPFallback(*timeout)))
	if err != nil {
		log.Fatalf("Failed to create loader: %v", err)
	}

	gen := orchestrator.New(
		orchestrator.WithLoader(docLoader),
		orchestrator.WithModelBuilder(model.NewBuilder(model.WithRangeStrategy(strategy))),
		orchestrator.WithLogger(logger),
	)

	interactive := stdinIsTerminal()
	driver := prompt.NewSurveyDriver()

	name := strings.TrimSpace(*renderer)
	if name == "" && interactive {
		name, err = prompt.ChooseRenderer(ctx, driver, gen.Renderers(), gen.DefaultRenderer())
		if err != nil {
			log.Fatalf("Failed to choose renderer: %v", err)
		}
	}

	if *output != "" && interactive {
		if _, statErr := os.Stat(*output); statErr == nil {
			overwrite, err := driver.Confirm(ctx, fmt.Sprintf("Overwrite %s?", *output), false)
			if err != nil {
				log.Fatalf("Failed to confirm overwrite: %v", err)
			}
			if !overwrite {
				fmt.Println("Aborted, output left unchanged")
				return
			}
		}
	}

	result, err := gen.Generate(ctx, orchestrator.Request{
		Source:   src,
		Renderer: name,
	})
	if err != nil {
		log.Fatalf("Failed to generate chart: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result.ChartData, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Chart (%s) written to %s\n", result.ContentType, *output)
		return
	}
	if _, err := os.Stdout.Write(result.ChartData); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
