// Package jsonspec reads library specification documents in the JSON
// tree-of-objects encoding and maps them onto the canonical model.
//
// The package owns only the mapping from a parsed generic tree to the model.
// Malformed JSON surfaces as the decoder's own error and a required field
// missing from a node surfaces as a model.MissingFieldError; neither is
// translated into a user-addressed spec error.
package jsonspec

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/specdoc-labs/specdoc/pkg/model"
)

// kinds maps the JSON encoding's kind spellings to the canonical set.
var kinds = map[string]model.ArgKind{
	"POSITIONAL_ONLY":           model.KindPositionalOnly,
	"POSITIONAL_ONLY_SEPARATOR": model.KindPositionalOnlySeparator,
	"POSITIONAL_OR_NAMED":       model.KindPositionalOrNamed,
	"VARIADIC_POSITIONAL":       model.KindVarPositional,
	"NAMED_ONLY_SEPARATOR":      model.KindNamedOnlySeparator,
	"NAMED_ONLY":                model.KindNamedOnly,
	"VARIADIC_NAMED":            model.KindVarNamed,
}

// Build reads and maps the JSON spec file at path.
func Build(path string) (*model.LibraryDoc, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &model.FileAccessError{Path: path}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.FileAccessError{Path: path}
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return BuildFromMap(tree)
}

// BuildFromMap maps an already-parsed document tree. Useful for callers that
// embed spec documents inside larger payloads.
func BuildFromMap(tree map[string]any) (*model.LibraryDoc, error) {
	name, err := str(tree, "name")
	if err != nil {
		return nil, err
	}
	doc, err := str(tree, "doc")
	if err != nil {
		return nil, err
	}
	version, err := str(tree, "version")
	if err != nil {
		return nil, err
	}
	libType, err := str(tree, "type")
	if err != nil {
		return nil, err
	}
	scope, err := str(tree, "scope")
	if err != nil {
		return nil, err
	}
	docFormat, err := str(tree, "docFormat")
	if err != nil {
		return nil, err
	}
	source, err := str(tree, "source")
	if err != nil {
		return nil, err
	}

	lib := &model.LibraryDoc{
		Name:      name,
		Doc:       doc,
		Version:   version,
		Type:      strings.ToUpper(libType),
		Scope:     scope,
		DocFormat: docFormat,
		Source:    source,
		Lineno:    optInt(tree, "lineno", model.LinenoUnknown),
	}

	if lib.Inits, err = keywords(tree, "inits"); err != nil {
		return nil, err
	}
	if lib.Keywords, err = keywords(tree, "keywords"); err != nil {
		return nil, err
	}
	if lib.DataTypes, err = dataTypes(tree); err != nil {
		return nil, err
	}
	return lib, nil
}

func keywords(tree map[string]any, field string) ([]model.KeywordDoc, error) {
	entries, err := list(tree, field)
	if err != nil {
		return nil, err
	}
	kws := make([]model.KeywordDoc, 0, len(entries))
	for _, entry := range entries {
		kw, err := keyword(entry)
		if err != nil {
			return nil, err
		}
		kws = append(kws, kw)
	}
	return kws, nil
}

// keyword maps one keyword or init entry. Name may be absent in this
// encoding (init entries have none) and falls back to the empty string.
func keyword(node map[string]any) (model.KeywordDoc, error) {
	doc, err := str(node, "doc")
	if err != nil {
		return model.KeywordDoc{}, err
	}
	shortdoc, err := str(node, "shortdoc")
	if err != nil {
		return model.KeywordDoc{}, err
	}
	source, err := str(node, "source")
	if err != nil {
		return model.KeywordDoc{}, err
	}
	tags, err := strList(node, "tags")
	if err != nil {
		return model.KeywordDoc{}, err
	}
	args, err := arguments(node)
	if err != nil {
		return model.KeywordDoc{}, err
	}
	return model.KeywordDoc{
		Name:     optStr(node, "name"),
		Args:     args,
		Doc:      doc,
		Shortdoc: shortdoc,
		Tags:     tags,
		Source:   source,
		Lineno:   optInt(node, "lineno", model.LinenoUnknown),
	}, nil
}

func arguments(node map[string]any) (model.ArgumentSpec, error) {
	entries, err := list(node, "args")
	if err != nil {
		return model.ArgumentSpec{}, err
	}
	records := make([]model.ArgRecord, 0, len(entries))
	for _, entry := range entries {
		name, err := str(entry, "name")
		if err != nil {
			return model.ArgumentSpec{}, err
		}
		kindToken, err := str(entry, "kind")
		if err != nil {
			return model.ArgumentSpec{}, err
		}
		kind, ok := kinds[kindToken]
		if !ok {
			return model.ArgumentSpec{}, &model.UnknownArgKindError{Kind: kindToken}
		}
		rec := model.ArgRecord{Name: name, Kind: kind}
		if def, ok := entry["defaultValue"]; ok && def != nil {
			rec.Default = def
			rec.HasDefault = true
		}
		if rec.Types, err = optStrList(entry, "types"); err != nil {
			return model.ArgumentSpec{}, err
		}
		records = append(records, rec)
	}
	return model.BuildArgumentSpec(records)
}

func dataTypes(tree map[string]any) ([]model.DataType, error) {
	node, err := obj(tree, "dataTypes")
	if err != nil {
		return nil, err
	}
	var types []model.DataType

	enums, err := optList(node, "enums")
	if err != nil {
		return nil, err
	}
	for _, entry := range enums {
		dt, err := enumDoc(entry)
		if err != nil {
			return nil, err
		}
		types = append(types, dt)
	}

	dicts, err := optList(node, "typedDicts")
	if err != nil {
		return nil, err
	}
	for _, entry := range dicts {
		dt, err := typedDictDoc(entry)
		if err != nil {
			return nil, err
		}
		types = append(types, dt)
	}

	customs, err := optList(node, "customs")
	if err != nil {
		return nil, err
	}
	for _, entry := range customs {
		dt, err := customDoc(entry)
		if err != nil {
			return nil, err
		}
		types = append(types, dt)
	}
	return model.DedupeDataTypes(types), nil
}

func enumDoc(node map[string]any) (model.EnumDoc, error) {
	name, err := str(node, "name")
	if err != nil {
		return model.EnumDoc{}, err
	}
	doc, err := str(node, "doc")
	if err != nil {
		return model.EnumDoc{}, err
	}
	entries, err := list(node, "members")
	if err != nil {
		return model.EnumDoc{}, err
	}
	members := make([]model.EnumMember, 0, len(entries))
	for _, entry := range entries {
		mname, err := scalar(entry, "name")
		if err != nil {
			return model.EnumDoc{}, err
		}
		value, err := scalar(entry, "value")
		if err != nil {
			return model.EnumDoc{}, err
		}
		members = append(members, model.EnumMember{Name: mname, Value: value})
	}
	return model.EnumDoc{Name: name, Doc: doc, Members: members}, nil
}

func typedDictDoc(node map[string]any) (model.TypedDictDoc, error) {
	name, err := str(node, "name")
	if err != nil {
		return model.TypedDictDoc{}, err
	}
	doc, err := str(node, "doc")
	if err != nil {
		return model.TypedDictDoc{}, err
	}
	entries, err := list(node, "items")
	if err != nil {
		return model.TypedDictDoc{}, err
	}
	items := make([]model.TypedDictItem, 0, len(entries))
	for _, entry := range entries {
		key, err := str(entry, "key")
		if err != nil {
			return model.TypedDictDoc{}, err
		}
		typ, err := str(entry, "type")
		if err != nil {
			return model.TypedDictDoc{}, err
		}
		item := model.TypedDictItem{Key: key, Type: typ}
		if req, ok := entry["required"].(bool); ok {
			item.Required = &req
		}
		items = append(items, item)
	}
	return model.TypedDictDoc{Name: name, Doc: doc, Items: items}, nil
}

func customDoc(node map[string]any) (model.CustomDoc, error) {
	name, err := str(node, "name")
	if err != nil {
		return model.CustomDoc{}, err
	}
	doc, err := str(node, "doc")
	if err != nil {
		return model.CustomDoc{}, err
	}
	return model.CustomDoc{Name: name, Doc: doc}, nil
}
