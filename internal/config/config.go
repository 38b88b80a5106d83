// Package config provides configuration management for the specdoc CLI.
//
// Sources are layered, later ones winning: built-in defaults, a specdoc.yaml
// config file, SPECDOC_* environment variables, and explicitly set CLI flags.
package config

import (
	"log/slog"
	"os"
)

// Default values applied before any other source.
const (
	DefaultOutput    = "auto"
	DefaultIndexPath = ".specdoc/index.db"
	DefaultServeHost = "127.0.0.1"
	DefaultServePort = 8591
)

// DefaultSpecDirs is where spec files are searched when nothing is configured.
var DefaultSpecDirs = []string{"specs"}

// Config holds all CLI configuration options.
type Config struct {
	// SpecDirs are the directories scanned for spec files.
	SpecDirs []string `koanf:"spec_dirs"`
	// Output selects the render mode: auto, text, markdown or json.
	Output string `koanf:"output"`
	// IndexPath is the SQLite keyword index location.
	IndexPath string `koanf:"index_path"`
	Verbose   bool   `koanf:"verbose"`
	Serve     Serve  `koanf:"serve"`
}

// Serve holds the HTTP API settings.
type Serve struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// Logger builds the process logger according to the verbosity setting.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
