// Package config resolves runtime settings for the chartgen binaries from
// flags, the environment and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/goliatone/go-chartgen/pkg/model"
)

const (
	defaultAddr            = ":8080"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds the server settings.
type Config struct {
	Addr            string
	Renderer        string
	LogLevel        string
	LogFormat       string
	RangeStrategy   model.RangeStrategy
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// Load parses args (without the program name) and overlays environment
// variables. A missing .env file is ignored. Flags win over the environment,
// which wins over defaults.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()
	return load(args, os.Getenv)
}

func load(args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet("chartgen", flag.ContinueOnError)
	addr := fs.String("addr", "", "listen address (default :8080)")
	renderer := fs.String("renderer", "", "default renderer name")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: parse flags: %w", err)
	}

	env := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}

	strategy, err := model.ParseRangeStrategy(env("CHARTGEN_RANGE_STRATEGY"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	timeout := defaultShutdownTimeout
	if raw := env("CHARTGEN_SHUTDOWN_TIMEOUT"); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: CHARTGEN_SHUTDOWN_TIMEOUT: %w", err)
		}
		if timeout <= 0 {
			return nil, errors.New("config: CHARTGEN_SHUTDOWN_TIMEOUT must be positive")
		}
	}

	return &Config{
		Addr: firstNonEmpty(
			*addr,
			env("CHARTGEN_ADDR"),
			env("LC_RENDERER_ADDR"),
			portAddr(env("PORT")),
			defaultAddr,
		),
		Renderer:        firstNonEmpty(*renderer, env("CHARTGEN_RENDERER")),
		LogLevel:        firstNonEmpty(*logLevel, env("CHARTGEN_LOG_LEVEL"), defaultLogLevel),
		LogFormat:       firstNonEmpty(*logFormat, env("CHARTGEN_LOG_FORMAT"), defaultLogFormat),
		RangeStrategy:   strategy,
		ShutdownTimeout: timeout,
		AllowedOrigins:  splitList(env("CHARTGEN_ALLOWED_ORIGINS")),
	}, nil
}

func portAddr(port string) string {
	if port == "" || strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
