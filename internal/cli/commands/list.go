package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/specdoc-labs/specdoc/internal/registry"
	"github.com/specdoc-labs/specdoc/internal/render"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List libraries found in the spec directories",
		Example: `  # List all libraries
  specdoc list

  # List as JSON
  specdoc list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			reg, err := loadRegistry(cmd.Context(), cc)
			if err != nil {
				return err
			}
			return renderList(cc, reg.List())
		},
	}
}

func renderList(cc *CommandContext, libs []*registry.Library) error {
	if cc.Renderer.EffectiveMode() == render.ModeJSON {
		type row struct {
			Name     string `json:"name"`
			Version  string `json:"version"`
			Type     string `json:"type"`
			Scope    string `json:"scope"`
			Keywords int    `json:"keywords"`
			Format   string `json:"format"`
			Path     string `json:"path"`
		}
		rows := make([]row, 0, len(libs))
		for _, lib := range libs {
			rows = append(rows, row{
				Name:     lib.Doc.Name,
				Version:  lib.Doc.Version,
				Type:     lib.Doc.Type,
				Scope:    lib.Doc.Scope,
				Keywords: len(lib.Doc.Keywords),
				Format:   string(lib.Format),
				Path:     lib.Path,
			})
		}
		return cc.Renderer.JSON(rows)
	}

	cc.Renderer.Header(1, fmt.Sprintf("Libraries (%d total)", len(libs)))
	rows := make([][]string, 0, len(libs))
	for _, lib := range libs {
		rows = append(rows, []string{
			lib.Doc.Name,
			lib.Doc.Version,
			lib.Doc.Type,
			lib.Doc.Scope,
			strconv.Itoa(len(lib.Doc.Keywords)),
			string(lib.Format),
		})
	}
	cc.Renderer.Table([]string{"Name", "Version", "Type", "Scope", "Keywords", "Format"}, rows)
	return nil
}
