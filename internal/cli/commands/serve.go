package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specdoc-labs/specdoc/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the built library documentation over HTTP",
		Long: `Build every spec file under the configured spec directories and expose
the documentation model as a small JSON API.`,
		Example: `  # Serve on the configured address (default 127.0.0.1:8591)
  specdoc serve

  # Bind somewhere else via config or env
  SPECDOC_SERVE__PORT=9000 specdoc serve`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			reg, err := loadRegistry(cmd.Context(), cc)
			if err != nil {
				return err
			}

			addr := fmt.Sprintf("%s:%d", cc.Cfg.Serve.Host, cc.Cfg.Serve.Port)
			cc.Renderer.Successf("Serving %d libraries on http://%s", reg.Count(), addr)
			return server.New(reg, cc.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}
}
