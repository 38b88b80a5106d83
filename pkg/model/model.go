// Package model defines the canonical in-memory documentation model for a
// keyword library specification, shared by the JSON and XML spec readers.
//
// A LibraryDoc tree is created fresh by a single build operation and is not
// mutated afterwards; distinct builds share nothing, so concurrent builds of
// different documents need no synchronization.
package model

// Library types as they appear in spec documents, normalized to upper case.
const (
	TypeLibrary  = "LIBRARY"
	TypeResource = "RESOURCE"
	TypeSuite    = "SUITE"
)

// LinenoUnknown is the sentinel for a missing or unusable line number.
const LinenoUnknown = -1

// LibraryDoc is the root documentation model for one library specification.
type LibraryDoc struct {
	Name      string       `json:"name" yaml:"name"`
	Doc       string       `json:"doc" yaml:"doc"`
	Version   string       `json:"version" yaml:"version"`
	Type      string       `json:"type" yaml:"type"`
	Scope     string       `json:"scope" yaml:"scope"`
	DocFormat string       `json:"docFormat" yaml:"docFormat"`
	Source    string       `json:"source" yaml:"source"`
	Lineno    int          `json:"lineno" yaml:"lineno"`
	Inits     []KeywordDoc `json:"inits" yaml:"inits"`
	Keywords  []KeywordDoc `json:"keywords" yaml:"keywords"`
	// DataTypes holds enum, typed-dict and custom type docs in that order,
	// deduplicated by kind and name (first occurrence wins).
	DataTypes []DataType `json:"dataTypes" yaml:"dataTypes"`
}

// KeywordDoc documents one keyword or initializer.
type KeywordDoc struct {
	Name     string       `json:"name" yaml:"name"`
	Args     ArgumentSpec `json:"args" yaml:"args"`
	Doc      string       `json:"doc" yaml:"doc"`
	Shortdoc string       `json:"shortdoc" yaml:"shortdoc"`
	Tags     []string     `json:"tags" yaml:"tags"`
	Source   string       `json:"source" yaml:"source"`
	Lineno   int          `json:"lineno" yaml:"lineno"`
}
