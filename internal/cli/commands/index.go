package commands

import (
	"github.com/spf13/cobra"

	"github.com/specdoc-labs/specdoc/internal/state"
)

// NewIndexCommand creates the index command.
func NewIndexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Rebuild the keyword index from the spec directories",
		Long: `Build every spec file under the configured spec directories and replace
the SQLite keyword index with the result. The index backs the search
command.`,
		Example: `  # Rebuild the index at the configured path
  specdoc index

  # Index a different spec tree
  specdoc index --spec-dirs ./vendor/specs`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			reg, err := loadRegistry(cmd.Context(), cc)
			if err != nil {
				return err
			}

			store := state.NewStore(cc.Logger)
			if err := store.Open(cc.Cfg.IndexPath); err != nil {
				return err
			}
			defer store.Close()
			if err := store.Migrate(); err != nil {
				return err
			}

			libs := reg.List()
			entries := make([]state.Entry, 0, len(libs))
			for _, lib := range libs {
				entries = append(entries, state.Entry{
					Doc:    lib.Doc,
					Path:   lib.Path,
					Format: string(lib.Format),
				})
			}
			snapshot, err := store.ReplaceAll(entries)
			if err != nil {
				return err
			}

			cc.Renderer.Successf("Indexed %d libraries (%d keywords) into %s",
				snapshot.Libraries, snapshot.Keywords, cc.Cfg.IndexPath)
			cc.Renderer.Dimf("Snapshot %s at %s", snapshot.ID, snapshot.CreatedAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}
