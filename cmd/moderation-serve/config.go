//go:build !js && !wasm

package main

import (
	"flag"
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// serveConfig controls the local development server.
type serveConfig struct {
	ListenAddr string `env:"MODERATION_LISTEN_ADDR" envDefault:"127.0.0.1:4173"`
	StaticDir  string `env:"MODERATION_STATIC_DIR"  envDefault:"ui"`
	BackendURL string `env:"MODERATION_BACKEND_URL" envDefault:"http://127.0.0.1:8000"`
	LogLevel   string `env:"MODERATION_LOG_LEVEL"   envDefault:"info"`
	LogDir     string `env:"MODERATION_LOG_DIR"`
}

// loadConfig reads the environment, then lets command-line flags override it.
func loadConfig(args []string) (serveConfig, error) {
	var cfg serveConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("moderation-serve", flag.ContinueOnError)
	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "address to serve the console on")
	fs.StringVar(&cfg.StaticDir, "dir", cfg.StaticDir, "directory containing index.html and main.wasm")
	fs.StringVar(&cfg.BackendURL, "backend", cfg.BackendURL, "base URL of the moderation backend")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "write rotated log files to this directory")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c serveConfig) backend() (*url.URL, error) {
	target, err := url.Parse(c.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", c.BackendURL, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q: scheme and host required", c.BackendURL)
	}
	return target, nil
}
