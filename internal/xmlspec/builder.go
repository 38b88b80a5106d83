// Package xmlspec reads library specification documents in the keywordspec
// XML encoding and maps them onto the canonical model.
//
// Unlike the JSON encoding this one carries an explicit schema version: the
// root element must be <keywordspec> and its specversion attribute must be
// one of the supported tokens, both checked before any field is trusted.
package xmlspec

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/specdoc-labs/specdoc/pkg/model"
)

const (
	rootTag = "keywordspec"

	// DefaultDocFormat is assumed when the format attribute is absent.
	DefaultDocFormat = "ROBOT"
)

// SupportedVersions are the accepted specversion tokens.
var SupportedVersions = []string{"3", "4"}

// kinds maps the XML encoding's kind spellings to the canonical set. The
// spellings differ from the JSON encoding: variadic roles are VAR_* and
// separators are *_MARKER.
var kinds = map[string]model.ArgKind{
	"POSITIONAL_ONLY":        model.KindPositionalOnly,
	"POSITIONAL_ONLY_MARKER": model.KindPositionalOnlySeparator,
	"POSITIONAL_OR_NAMED":    model.KindPositionalOrNamed,
	"VAR_POSITIONAL":         model.KindVarPositional,
	"NAMED_ONLY_MARKER":      model.KindNamedOnlySeparator,
	"NAMED_ONLY":             model.KindNamedOnly,
	"VAR_NAMED":              model.KindVarNamed,
}

// Build reads and maps the XML spec file at path.
func Build(path string) (*model.LibraryDoc, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &model.FileAccessError{Path: path}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.FileAccessError{Path: path}
	}

	var spec xmlSpec
	if err := xml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	if spec.XMLName.Local != rootTag {
		return nil, &model.SchemaError{Path: path}
	}
	if spec.SpecVersion != "3" && spec.SpecVersion != "4" {
		return nil, &model.VersionError{Version: spec.SpecVersion}
	}
	return build(&spec)
}

func build(spec *xmlSpec) (*model.LibraryDoc, error) {
	lineno, err := libraryLineno(spec.Lineno)
	if err != nil {
		return nil, err
	}
	lib := &model.LibraryDoc{
		Name:      spec.Name,
		Doc:       spec.Doc,
		Version:   spec.Version,
		Type:      strings.ToUpper(spec.Type),
		Scope:     spec.Scope,
		DocFormat: docFormat(spec.Format),
		Source:    spec.Source,
		Lineno:    lineno,
	}
	if lib.Inits, err = keywords(spec.Inits, lib.Source); err != nil {
		return nil, err
	}
	if lib.Keywords, err = keywords(spec.Keywords, lib.Source); err != nil {
		return nil, err
	}
	lib.DataTypes = dataTypes(&spec.DataTypes)
	return lib, nil
}

func docFormat(format string) string {
	if format == "" {
		return DefaultDocFormat
	}
	return format
}

// libraryLineno normalizes the integer-or-absent lineno attribute: an absent
// or zero raw value becomes the unknown sentinel, any other value is kept.
func libraryLineno(raw string) (int, error) {
	if raw == "" {
		return model.LinenoUnknown, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return model.LinenoUnknown, nil
	}
	return n, nil
}

func keywordLineno(raw string) (int, error) {
	if raw == "" {
		return model.LinenoUnknown, nil
	}
	return strconv.Atoi(raw)
}

func keywords(elems []xmlKeyword, libSource string) ([]model.KeywordDoc, error) {
	kws := make([]model.KeywordDoc, 0, len(elems))
	for _, elem := range elems {
		kw, err := keyword(&elem, libSource)
		if err != nil {
			return nil, err
		}
		kws = append(kws, kw)
	}
	return kws, nil
}

func keyword(elem *xmlKeyword, libSource string) (model.KeywordDoc, error) {
	args, err := arguments(elem.Args)
	if err != nil {
		return model.KeywordDoc{}, err
	}
	lineno, err := keywordLineno(elem.Lineno)
	if err != nil {
		return model.KeywordDoc{}, err
	}
	source := elem.Source
	if source == "" {
		source = libSource
	}
	tags := elem.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.KeywordDoc{
		Name:     elem.Name,
		Args:     args,
		Doc:      elem.Doc,
		Shortdoc: elem.Shortdoc,
		Tags:     tags,
		Source:   source,
		Lineno:   lineno,
	}, nil
}

func arguments(elems []xmlArg) (model.ArgumentSpec, error) {
	records := make([]model.ArgRecord, 0, len(elems))
	for _, elem := range elems {
		// An <arg> without a <name> child names nothing and is skipped.
		if elem.Name == nil {
			continue
		}
		kind, ok := kinds[elem.Kind]
		if !ok {
			return model.ArgumentSpec{}, &model.UnknownArgKindError{Kind: elem.Kind}
		}
		rec := model.ArgRecord{Name: elem.Name.Text, Kind: kind}
		if elem.Default != nil {
			rec.Default = elem.Default.Text
			rec.HasDefault = true
		}
		rec.Types = make([]string, 0, len(elem.Types))
		for _, t := range elem.Types {
			rec.Types = append(rec.Types, t.Text)
		}
		records = append(records, rec)
	}
	return model.BuildArgumentSpec(records)
}

func dataTypes(elem *xmlDataTypes) []model.DataType {
	var types []model.DataType
	for _, enum := range elem.Enums {
		members := make([]model.EnumMember, 0, len(enum.Members))
		for _, member := range enum.Members {
			members = append(members, model.EnumMember{Name: member.Name, Value: member.Value})
		}
		types = append(types, model.EnumDoc{Name: enum.Name, Doc: enum.Doc, Members: members})
	}
	for _, dict := range elem.TypedDicts {
		items := make([]model.TypedDictItem, 0, len(dict.Items))
		for _, item := range dict.Items {
			entry := model.TypedDictItem{Key: item.Key, Type: item.Type}
			if item.Required != nil {
				// The attribute is textual; anything but "true" means false.
				required := *item.Required == "true"
				entry.Required = &required
			}
			items = append(items, entry)
		}
		types = append(types, model.TypedDictDoc{Name: dict.Name, Doc: dict.Doc, Items: items})
	}
	for _, custom := range elem.Customs {
		types = append(types, model.CustomDoc{Name: custom.Name, Doc: custom.Doc})
	}
	return model.DedupeDataTypes(types)
}
