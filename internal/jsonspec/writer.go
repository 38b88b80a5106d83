package jsonspec

import (
	"encoding/json"
	"io"

	"github.com/specdoc-labs/specdoc/pkg/model"
)

// Wire shapes for the JSON encoding.
type specDoc struct {
	Name      string        `json:"name"`
	Doc       string        `json:"doc"`
	Version   string        `json:"version"`
	Type      string        `json:"type"`
	Scope     string        `json:"scope"`
	DocFormat string        `json:"docFormat"`
	Source    string        `json:"source"`
	Lineno    int           `json:"lineno"`
	Inits     []specKeyword `json:"inits"`
	Keywords  []specKeyword `json:"keywords"`
	DataTypes specDataTypes `json:"dataTypes"`
}

type specKeyword struct {
	Name     string    `json:"name"`
	Args     []specArg `json:"args"`
	Doc      string    `json:"doc"`
	Shortdoc string    `json:"shortdoc"`
	Tags     []string  `json:"tags"`
	Source   string    `json:"source"`
	Lineno   int       `json:"lineno"`
}

type specArg struct {
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	DefaultValue any      `json:"defaultValue,omitempty"`
	Types        []string `json:"types"`
}

type specDataTypes struct {
	Enums      []model.EnumDoc      `json:"enums"`
	TypedDicts []model.TypedDictDoc `json:"typedDicts"`
	Customs    []model.CustomDoc    `json:"customs"`
}

// Marshal encodes a library document into the JSON spec encoding.
func Marshal(lib *model.LibraryDoc) ([]byte, error) {
	return json.MarshalIndent(toSpecDoc(lib), "", "  ")
}

// Write encodes lib into w in the JSON spec encoding.
func Write(w io.Writer, lib *model.LibraryDoc) error {
	data, err := Marshal(lib)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func toSpecDoc(lib *model.LibraryDoc) specDoc {
	doc := specDoc{
		Name:      lib.Name,
		Doc:       lib.Doc,
		Version:   lib.Version,
		Type:      lib.Type,
		Scope:     lib.Scope,
		DocFormat: lib.DocFormat,
		Source:    lib.Source,
		Lineno:    lib.Lineno,
		Inits:     []specKeyword{},
		Keywords:  []specKeyword{},
		DataTypes: specDataTypes{
			Enums:      []model.EnumDoc{},
			TypedDicts: []model.TypedDictDoc{},
			Customs:    []model.CustomDoc{},
		},
	}
	for _, kw := range lib.Inits {
		doc.Inits = append(doc.Inits, toSpecKeyword(kw))
	}
	for _, kw := range lib.Keywords {
		doc.Keywords = append(doc.Keywords, toSpecKeyword(kw))
	}
	for _, dt := range lib.DataTypes {
		switch t := dt.(type) {
		case model.EnumDoc:
			doc.DataTypes.Enums = append(doc.DataTypes.Enums, t)
		case model.TypedDictDoc:
			doc.DataTypes.TypedDicts = append(doc.DataTypes.TypedDicts, t)
		case model.CustomDoc:
			doc.DataTypes.Customs = append(doc.DataTypes.Customs, t)
		}
	}
	return doc
}

func toSpecKeyword(kw model.KeywordDoc) specKeyword {
	tags := kw.Tags
	if tags == nil {
		tags = []string{}
	}
	return specKeyword{
		Name:     kw.Name,
		Args:     flattenArgs(kw.Args),
		Doc:      kw.Doc,
		Shortdoc: kw.Shortdoc,
		Tags:     tags,
		Source:   kw.Source,
		Lineno:   kw.Lineno,
	}
}

// flattenArgs linearizes the grouped argument model back into kind-tagged
// records. Separator positions are synthesized: positional-only arguments
// are followed by a "/" separator, and named-only arguments without a
// preceding variadic positional get a "*" separator.
func flattenArgs(spec model.ArgumentSpec) []specArg {
	args := []specArg{}
	emit := func(name string, kind model.ArgKind) {
		arg := specArg{Name: name, Kind: kindToken(kind), Types: []string{}}
		if !kind.IsSeparator() {
			if types, ok := spec.Types[name]; ok && types != nil {
				arg.Types = types
			}
			if def, ok := spec.Defaults[name]; ok {
				arg.DefaultValue = def
				if def == nil {
					// A nil default would be indistinguishable from no
					// default on the wire; keep it as an empty string.
					arg.DefaultValue = ""
				}
			}
		}
		args = append(args, arg)
	}

	for _, name := range spec.PositionalOnly {
		emit(name, model.KindPositionalOnly)
	}
	if len(spec.PositionalOnly) > 0 {
		emit("/", model.KindPositionalOnlySeparator)
	}
	for _, name := range spec.PositionalOrNamed {
		emit(name, model.KindPositionalOrNamed)
	}
	if spec.VarPositional != "" {
		emit(spec.VarPositional, model.KindVarPositional)
	} else if len(spec.NamedOnly) > 0 {
		emit("*", model.KindNamedOnlySeparator)
	}
	for _, name := range spec.NamedOnly {
		emit(name, model.KindNamedOnly)
	}
	if spec.VarNamed != "" {
		emit(spec.VarNamed, model.KindVarNamed)
	}
	return args
}

func kindToken(kind model.ArgKind) string {
	// The JSON encoding spells kinds exactly like the canonical set.
	return kind.String()
}
