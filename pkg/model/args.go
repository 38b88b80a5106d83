package model

// ArgKind identifies the syntactic role of one argument record in a spec
// document. The set is closed: both spec encodings serialize exactly these
// seven roles, under encoding-specific spellings owned by the readers.
type ArgKind int

const (
	KindPositionalOnly ArgKind = iota
	KindPositionalOnlySeparator
	KindPositionalOrNamed
	KindVarPositional
	KindNamedOnlySeparator
	KindNamedOnly
	KindVarNamed
)

// String returns the canonical spelling of the kind.
func (k ArgKind) String() string {
	switch k {
	case KindPositionalOnly:
		return "POSITIONAL_ONLY"
	case KindPositionalOnlySeparator:
		return "POSITIONAL_ONLY_SEPARATOR"
	case KindPositionalOrNamed:
		return "POSITIONAL_OR_NAMED"
	case KindVarPositional:
		return "VARIADIC_POSITIONAL"
	case KindNamedOnlySeparator:
		return "NAMED_ONLY_SEPARATOR"
	case KindNamedOnly:
		return "NAMED_ONLY"
	case KindVarNamed:
		return "VARIADIC_NAMED"
	}
	return "UNKNOWN"
}

// IsSeparator reports whether the kind marks a grouping boundary rather than
// an actual argument.
func (k ArgKind) IsSeparator() bool {
	return k == KindPositionalOnlySeparator || k == KindNamedOnlySeparator
}

// ArgRecord is one flat, kind-tagged argument record as extracted from a spec
// document, before grouping. HasDefault distinguishes "no default declared"
// from an explicit empty or zero default.
type ArgRecord struct {
	Name       string
	Kind       ArgKind
	Default    any
	HasDefault bool
	Types      []string
}

// ArgumentSpec is the grouped, order-preserving argument model of one
// keyword. Order within each group mirrors the declared argument order of
// the source callable.
type ArgumentSpec struct {
	PositionalOnly    []string `json:"positionalOnly" yaml:"positionalOnly"`
	PositionalOrNamed []string `json:"positionalOrNamed" yaml:"positionalOrNamed"`
	VarPositional     string   `json:"varPositional,omitempty" yaml:"varPositional,omitempty"`
	NamedOnly         []string `json:"namedOnly" yaml:"namedOnly"`
	VarNamed          string   `json:"varNamed,omitempty" yaml:"varNamed,omitempty"`
	// Defaults maps argument name to its declared default. A name is present
	// only when the source record carried an explicit default.
	Defaults map[string]any `json:"defaults" yaml:"defaults"`
	// Types maps every non-separator argument name to its declared type
	// names, an empty slice when the source declared none.
	Types map[string][]string `json:"types" yaml:"types"`
}

// NewArgumentSpec returns an empty spec with allocated groups and maps.
func NewArgumentSpec() ArgumentSpec {
	return ArgumentSpec{
		PositionalOnly:    []string{},
		PositionalOrNamed: []string{},
		NamedOnly:         []string{},
		Defaults:          map[string]any{},
		Types:             map[string][]string{},
	}
}

// BuildArgumentSpec reconstructs the grouped argument model from a flat
// record sequence. Separator records change no state at all. Variadic slots
// follow last-write-wins and no cross-record uniqueness is enforced; both
// behaviors match the spec encodings, which are permissive on purpose.
func BuildArgumentSpec(records []ArgRecord) (ArgumentSpec, error) {
	spec := NewArgumentSpec()
	for _, rec := range records {
		switch rec.Kind {
		case KindPositionalOnlySeparator, KindNamedOnlySeparator:
			continue
		case KindPositionalOnly:
			spec.PositionalOnly = append(spec.PositionalOnly, rec.Name)
		case KindPositionalOrNamed:
			spec.PositionalOrNamed = append(spec.PositionalOrNamed, rec.Name)
		case KindVarPositional:
			spec.VarPositional = rec.Name
		case KindNamedOnly:
			spec.NamedOnly = append(spec.NamedOnly, rec.Name)
		case KindVarNamed:
			spec.VarNamed = rec.Name
		default:
			return ArgumentSpec{}, &UnknownArgKindError{Kind: rec.Kind.String()}
		}
		if rec.HasDefault {
			spec.Defaults[rec.Name] = rec.Default
		}
		types := rec.Types
		if types == nil {
			types = []string{}
		}
		spec.Types[rec.Name] = types
	}
	return spec, nil
}

// Names returns all argument names in declared order: positional-only,
// positional-or-named, variadic positional, named-only, variadic named.
func (s ArgumentSpec) Names() []string {
	names := make([]string, 0, len(s.PositionalOnly)+len(s.PositionalOrNamed)+len(s.NamedOnly)+2)
	names = append(names, s.PositionalOnly...)
	names = append(names, s.PositionalOrNamed...)
	if s.VarPositional != "" {
		names = append(names, s.VarPositional)
	}
	names = append(names, s.NamedOnly...)
	if s.VarNamed != "" {
		names = append(names, s.VarNamed)
	}
	return names
}
