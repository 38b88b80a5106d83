package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/specdoc-labs/specdoc/internal/render"
	"github.com/specdoc-labs/specdoc/internal/state"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search indexed keywords by name or tag",
		Args:  cobra.ExactArgs(1),
		Example: `  # Find keywords mentioning "click"
  specdoc search click

  # Machine-readable results
  specdoc search click -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)

			store := state.NewStore(cc.Logger)
			if err := store.Open(cc.Cfg.IndexPath); err != nil {
				return err
			}
			defer store.Close()
			if err := store.Migrate(); err != nil {
				return err
			}

			snapshot, err := store.LatestSnapshot()
			if err != nil {
				return err
			}
			if snapshot == nil {
				return fmt.Errorf("keyword index at %s is empty, run 'specdoc index' first", cc.Cfg.IndexPath)
			}

			hits, err := store.SearchKeywords(args[0])
			if err != nil {
				return err
			}
			return renderHits(cc, args[0], hits)
		},
	}
}

func renderHits(cc *CommandContext, term string, hits []state.KeywordHit) error {
	if cc.Renderer.EffectiveMode() == render.ModeJSON {
		type row struct {
			Library  string `json:"library"`
			Name     string `json:"name"`
			Shortdoc string `json:"shortdoc"`
			Tags     string `json:"tags"`
			Args     string `json:"args"`
			Source   string `json:"source"`
			Lineno   int    `json:"lineno"`
		}
		rows := make([]row, 0, len(hits))
		for _, hit := range hits {
			rows = append(rows, row(hit))
		}
		return cc.Renderer.JSON(rows)
	}

	if len(hits) == 0 {
		cc.Renderer.Dimf("No keywords matching %q", term)
		return nil
	}

	cc.Renderer.Header(1, fmt.Sprintf("Keywords matching %q (%d)", term, len(hits)))
	rows := make([][]string, 0, len(hits))
	for _, hit := range hits {
		rows = append(rows, []string{
			hit.Library,
			hit.Name,
			hit.Args,
			hit.Tags,
			hit.Source + ":" + strconv.Itoa(hit.Lineno),
		})
	}
	cc.Renderer.Table([]string{"Library", "Keyword", "Arguments", "Tags", "Source"}, rows)
	return nil
}
