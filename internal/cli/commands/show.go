package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specdoc-labs/specdoc/internal/registry"
	"github.com/specdoc-labs/specdoc/internal/render"
	"github.com/specdoc-labs/specdoc/pkg/model"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	var keywordName string

	cmd := &cobra.Command{
		Use:   "show <library-name-or-spec-file>",
		Short: "Show the documentation of a library or a single keyword",
		Args:  cobra.ExactArgs(1),
		Example: `  # Show a library by name
  specdoc show Remote

  # Show a library straight from a spec file
  specdoc show specs/Remote.xml

  # Show one keyword
  specdoc show Remote --keyword "Run Keyword"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			lib, err := resolveLibrary(cmd.Context(), cc, args[0])
			if err != nil {
				return err
			}
			if keywordName != "" {
				return showKeyword(cc, lib, keywordName)
			}
			return showLibrary(cc, lib)
		},
	}

	cmd.Flags().StringVarP(&keywordName, "keyword", "k", "", "Show only the named keyword")
	return cmd
}

func showLibrary(cc *CommandContext, lib *registry.Library) error {
	doc := lib.Doc
	if cc.Renderer.EffectiveMode() == render.ModeJSON {
		return cc.Renderer.JSON(doc)
	}

	cc.Renderer.Header(1, fmt.Sprintf("%s %s", doc.Name, doc.Version))
	cc.Renderer.Dimf("%s scope, %s format, source %s", doc.Scope, doc.DocFormat, doc.Source)
	if doc.Doc != "" {
		cc.Renderer.Textf("")
		cc.Renderer.Textf("%s", render.DocText(doc.Doc, doc.DocFormat))
	}

	if len(doc.Inits) > 0 {
		cc.Renderer.Textf("")
		cc.Renderer.Header(2, "Importing")
		cc.Renderer.Table([]string{"Arguments", "Shortdoc"}, keywordRows(doc.Inits, false))
	}

	cc.Renderer.Textf("")
	cc.Renderer.Header(2, fmt.Sprintf("Keywords (%d)", len(doc.Keywords)))
	cc.Renderer.Table([]string{"Name", "Arguments", "Shortdoc"}, keywordRows(doc.Keywords, true))

	if len(doc.DataTypes) > 0 {
		cc.Renderer.Textf("")
		cc.Renderer.Header(2, "Data types")
		rows := make([][]string, 0, len(doc.DataTypes))
		for _, dt := range doc.DataTypes {
			rows = append(rows, []string{dt.DataTypeName(), dt.DataTypeKind()})
		}
		cc.Renderer.Table([]string{"Name", "Kind"}, rows)
	}
	return nil
}

func keywordRows(kws []model.KeywordDoc, withName bool) [][]string {
	rows := make([][]string, 0, len(kws))
	for _, kw := range kws {
		args := strings.Join(kw.Args.Names(), ", ")
		if withName {
			rows = append(rows, []string{kw.Name, args, kw.Shortdoc})
		} else {
			rows = append(rows, []string{args, kw.Shortdoc})
		}
	}
	return rows
}

func showKeyword(cc *CommandContext, lib *registry.Library, name string) error {
	var kw *model.KeywordDoc
	for i := range lib.Doc.Keywords {
		if strings.EqualFold(lib.Doc.Keywords[i].Name, name) {
			kw = &lib.Doc.Keywords[i]
			break
		}
	}
	if kw == nil {
		return fmt.Errorf("keyword %q not found in library %s", name, lib.Doc.Name)
	}

	if cc.Renderer.EffectiveMode() == render.ModeJSON {
		return cc.Renderer.JSON(kw)
	}

	cc.Renderer.Header(1, kw.Name)
	if len(kw.Tags) > 0 {
		cc.Renderer.Dimf("Tags: %s", strings.Join(kw.Tags, ", "))
	}
	cc.Renderer.Dimf("Source: %s:%d", kw.Source, kw.Lineno)

	if names := kw.Args.Names(); len(names) > 0 {
		cc.Renderer.Textf("")
		rows := make([][]string, 0, len(names))
		for _, arg := range names {
			types := strings.Join(kw.Args.Types[arg], " | ")
			defaultValue := ""
			if v, ok := kw.Args.Defaults[arg]; ok {
				defaultValue = fmt.Sprint(v)
			}
			rows = append(rows, []string{arg, types, defaultValue})
		}
		cc.Renderer.Table([]string{"Argument", "Types", "Default"}, rows)
	}

	if kw.Doc != "" {
		cc.Renderer.Textf("")
		cc.Renderer.Textf("%s", render.DocText(kw.Doc, lib.Doc.DocFormat))
	}
	return nil
}
