package xmlspec

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/specdoc-labs/specdoc/pkg/model"
)

// WrittenVersion is the specversion stamped on emitted documents.
const WrittenVersion = "4"

// Marshal encodes a library document into the keywordspec XML encoding.
func Marshal(lib *model.LibraryDoc) ([]byte, error) {
	return xml.MarshalIndent(toXMLSpec(lib), "", "  ")
}

// Write encodes lib into w, including the XML declaration.
func Write(w io.Writer, lib *model.LibraryDoc) error {
	data, err := Marshal(lib)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func toXMLSpec(lib *model.LibraryDoc) *xmlSpec {
	spec := &xmlSpec{
		XMLName:     xml.Name{Local: rootTag},
		SpecVersion: WrittenVersion,
		Name:        lib.Name,
		Type:        lib.Type,
		Scope:       lib.Scope,
		Format:      lib.DocFormat,
		Source:      lib.Source,
		Lineno:      strconv.Itoa(lib.Lineno),
		Version:     lib.Version,
		Doc:         lib.Doc,
	}
	for _, kw := range lib.Inits {
		spec.Inits = append(spec.Inits, toXMLKeyword(kw))
	}
	for _, kw := range lib.Keywords {
		spec.Keywords = append(spec.Keywords, toXMLKeyword(kw))
	}
	for _, dt := range lib.DataTypes {
		switch t := dt.(type) {
		case model.EnumDoc:
			enum := xmlEnum{Name: t.Name, Doc: t.Doc}
			for _, member := range t.Members {
				enum.Members = append(enum.Members, xmlMember{Name: member.Name, Value: member.Value})
			}
			spec.DataTypes.Enums = append(spec.DataTypes.Enums, enum)
		case model.TypedDictDoc:
			dict := xmlTypedDict{Name: t.Name, Doc: t.Doc}
			for _, item := range t.Items {
				entry := xmlItem{Key: item.Key, Type: item.Type}
				if item.Required != nil {
					required := strconv.FormatBool(*item.Required)
					entry.Required = &required
				}
				dict.Items = append(dict.Items, entry)
			}
			spec.DataTypes.TypedDicts = append(spec.DataTypes.TypedDicts, dict)
		case model.CustomDoc:
			spec.DataTypes.Customs = append(spec.DataTypes.Customs, xmlCustom{Name: t.Name, Doc: t.Doc})
		}
	}
	return spec
}

func toXMLKeyword(kw model.KeywordDoc) xmlKeyword {
	elem := xmlKeyword{
		Name:     kw.Name,
		Source:   kw.Source,
		Lineno:   strconv.Itoa(kw.Lineno),
		Doc:      kw.Doc,
		Shortdoc: kw.Shortdoc,
		Tags:     kw.Tags,
	}
	spec := kw.Args
	emit := func(name string, kind model.ArgKind) {
		arg := xmlArg{Kind: xmlKindToken(kind), Name: &xmlText{Text: name}}
		if !kind.IsSeparator() {
			if def, ok := spec.Defaults[name]; ok {
				arg.Default = &xmlText{Text: fmt.Sprint(def)}
			}
			for _, t := range spec.Types[name] {
				arg.Types = append(arg.Types, xmlText{Text: t})
			}
		}
		elem.Args = append(elem.Args, arg)
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
	return elem
}

func xmlKindToken(kind model.ArgKind) string {
	switch kind {
	case model.KindPositionalOnly:
		return "POSITIONAL_ONLY"
	case model.KindPositionalOnlySeparator:
		return "POSITIONAL_ONLY_MARKER"
	case model.KindPositionalOrNamed:
		return "POSITIONAL_OR_NAMED"
	case model.KindVarPositional:
		return "VAR_POSITIONAL"
	case model.KindNamedOnlySeparator:
		return "NAMED_ONLY_MARKER"
	case model.KindNamedOnly:
		return "NAMED_ONLY"
	case model.KindVarNamed:
		return "VAR_NAMED"
	}
	return ""
}
