package model

import "fmt"

// FileAccessError is returned when a spec path does not resolve to a
// readable, existing file. Raised by both spec readers before any parsing.
type FileAccessError struct {
	Path string
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("Spec file '%s' does not exist.", e.Path)
}

// SchemaError is returned when a document is not shaped like a spec file at
// all, such as an XML document with the wrong root element.
type SchemaError struct {
	Path string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("Invalid spec file '%s'.", e.Path)
}

// VersionError is returned when a spec document declares a schema version
// outside the supported set.
type VersionError struct {
	Version string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("Invalid spec file version '%s'. Supported versions are 3 and 4.", e.Version)
}

// UnknownArgKindError is returned when an argument record carries a kind
// token outside the recognized set.
type UnknownArgKindError struct {
	Kind string
}

func (e *UnknownArgKindError) Error() string {
	return fmt.Sprintf("unknown argument kind %q", e.Kind)
}

// MissingFieldError is a low-level lookup failure for a required field
// absent from a document node. It is deliberately not translated into one
// of the user-addressed errors above; a document that parses but lacks
// required fields surfaces as-is.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}
