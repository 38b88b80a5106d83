// Package cli provides the command-line interface for specdoc.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/specdoc-labs/specdoc/internal/cli/commands"
	"github.com/specdoc-labs/specdoc/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "specdoc",
		Short: "specdoc - keyword library documentation toolkit",
		Long: `specdoc reads keyword library specification files (JSON and keywordspec
XML encodings), rebuilds the documentation model and lets you validate,
browse, convert, index and serve it.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(commands.WithConfig(cmd.Context(), cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./specdoc.yaml)")
	rootCmd.PersistentFlags().StringSlice("spec-dirs", nil, "Directories scanned for spec files")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output mode: auto, text, markdown, json")
	rootCmd.PersistentFlags().String("index-path", "", "Path to the keyword index database")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		commands.NewValidateCommand(),
		commands.NewListCommand(),
		commands.NewShowCommand(),
		commands.NewConvertCommand(),
		commands.NewIndexCommand(),
		commands.NewSearchCommand(),
		commands.NewServeCommand(),
		commands.NewVersionCommand(Version),
	)
	return rootCmd
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
