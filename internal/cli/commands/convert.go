package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/specdoc-labs/specdoc/internal/jsonspec"
	"github.com/specdoc-labs/specdoc/internal/xmlspec"
	"github.com/specdoc-labs/specdoc/pkg/model"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var (
		target  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "convert <spec-file>",
		Short: "Convert a spec file between encodings",
		Long: `Build the given spec file and write it back out in the requested
encoding. XML output uses spec version 4.`,
		Args: cobra.ExactArgs(1),
		Example: `  # XML to JSON, on stdout
  specdoc convert specs/Remote.xml --to json

  # JSON to XML, into a file
  specdoc convert specs/Remote.json --to xml --out Remote.xml

  # Quick look at a spec as YAML
  specdoc convert specs/Remote.json --to yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			lib, err := resolveLibrary(cmd.Context(), cc, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := writeConverted(out, lib.Doc, target); err != nil {
				return err
			}
			if outPath != "" {
				cc.Renderer.Successf("Wrote %s spec for %s to %s", target, lib.Doc.Name, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", "json", "Target encoding: json, xml or yaml")
	cmd.Flags().StringVar(&outPath, "out", "", "Write to this file instead of stdout")
	return cmd
}

func writeConverted(w io.Writer, doc *model.LibraryDoc, target string) error {
	switch strings.ToLower(target) {
	case "json":
		return jsonspec.Write(w, doc)
	case "xml":
		return xmlspec.Write(w, doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported target encoding %q (want json, xml or yaml)", target)
	}
}
