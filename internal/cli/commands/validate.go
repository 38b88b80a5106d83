package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specdoc-labs/specdoc/internal/registry"
	"github.com/specdoc-labs/specdoc/internal/watch"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "validate [spec-file...]",
		Short: "Validate spec files",
		Long: `Build every given spec file (or every spec file under the configured
spec directories) and report files that fail to build.`,
		Example: `  # Validate everything under the configured spec dirs
  specdoc validate

  # Validate specific files
  specdoc validate specs/Remote.json specs/Browser.xml

  # Re-validate on every change
  specdoc validate --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			run := func(ctx context.Context) error {
				return runValidate(ctx, cc, args)
			}
			if err := run(cmd.Context()); err != nil && !watchMode {
				return err
			}
			if !watchMode {
				return nil
			}
			cc.Renderer.Dimf("Watching %v for changes...", cc.Cfg.SpecDirs)
			return watch.Run(cmd.Context(), cc.Cfg.SpecDirs, watch.DefaultDebounce, cc.Logger, run)
		},
	}

	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-validate whenever spec files change")
	return cmd
}

func runValidate(ctx context.Context, cc *CommandContext, args []string) error {
	paths := args
	if len(paths) == 0 {
		var err error
		if paths, err = registry.Discover(cc.Cfg.SpecDirs); err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		cc.Renderer.Dimf("No spec files found in %v", cc.Cfg.SpecDirs)
		return nil
	}

	failures := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		lib, err := registry.BuildFile(path)
		if err != nil {
			failures++
			cc.Renderer.Errorf("FAIL %s: %v", path, err)
			continue
		}
		cc.Renderer.Successf("OK   %s (%s, %d keywords)", path, lib.Doc.Name, len(lib.Doc.Keywords))
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d spec files failed to validate", failures, len(paths))
	}
	return nil
}
