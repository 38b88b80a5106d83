// Package commands implements the specdoc CLI commands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/specdoc-labs/specdoc/internal/config"
	"github.com/specdoc-labs/specdoc/internal/registry"
	"github.com/specdoc-labs/specdoc/internal/render"
)

type ctxKey int

const configCtxKey ctxKey = iota

// WithConfig stores the loaded configuration in the context. Called by the
// root command before any subcommand runs.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configCtxKey, cfg)
}

// ConfigFromContext returns the stored configuration, or defaults when the
// command runs outside the root (mostly in tests).
func ConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configCtxKey).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		SpecDirs:  config.DefaultSpecDirs,
		Output:    config.DefaultOutput,
		IndexPath: config.DefaultIndexPath,
		Serve:     config.Serve{Host: config.DefaultServeHost, Port: config.DefaultServePort},
	}
}

// CommandContext bundles what every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *render.Renderer
}

// NewCommandContext builds the per-command context from the cobra command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := ConfigFromContext(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   cfg.Logger(),
		Renderer: render.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), render.Mode(cfg.Output)),
	}
}

// loadRegistry builds every spec file under the configured directories.
func loadRegistry(ctx context.Context, cc *CommandContext) (*registry.LibraryRegistry, error) {
	reg := registry.NewLibraryRegistry(cc.Logger)
	if err := reg.LoadDirs(ctx, cc.Cfg.SpecDirs); err != nil {
		return nil, err
	}
	return reg, nil
}

// resolveLibrary interprets ref as a spec file path when it points at an
// existing file, and as a library name in the configured spec dirs
// otherwise.
func resolveLibrary(ctx context.Context, cc *CommandContext, ref string) (*registry.Library, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return registry.BuildFile(ref)
	}
	reg, err := loadRegistry(ctx, cc)
	if err != nil {
		return nil, err
	}
	lib, ok := reg.Get(ref)
	if !ok {
		return nil, fmt.Errorf("library %q not found in %v (is it spelled like the spec's name attribute?)", ref, cc.Cfg.SpecDirs)
	}
	return lib, nil
}
