package model

// Data type kinds, used as the dedupe key together with the type name.
const (
	DataTypeEnum      = "Enum"
	DataTypeTypedDict = "TypedDict"
	DataTypeCustom    = "Custom"
)

// DataType is the common face of the three data type documentation variants.
type DataType interface {
	// DataTypeName returns the declared name of the type.
	DataTypeName() string
	// DataTypeKind returns one of DataTypeEnum, DataTypeTypedDict or
	// DataTypeCustom.
	DataTypeKind() string
}

// EnumDoc documents an enumeration type.
type EnumDoc struct {
	Name    string       `json:"name" yaml:"name"`
	Doc     string       `json:"doc" yaml:"doc"`
	Members []EnumMember `json:"members" yaml:"members"`
}

// EnumMember is one enumeration member.
type EnumMember struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

func (d EnumDoc) DataTypeName() string { return d.Name }
func (d EnumDoc) DataTypeKind() string { return DataTypeEnum }

// TypedDictDoc documents a typed dictionary type.
type TypedDictDoc struct {
	Name  string          `json:"name" yaml:"name"`
	Doc   string          `json:"doc" yaml:"doc"`
	Items []TypedDictItem `json:"items" yaml:"items"`
}

// TypedDictItem is one key of a typed dictionary. Required is tri-state:
// nil means the source document did not say either way.
type TypedDictItem struct {
	Key      string `json:"key" yaml:"key"`
	Type     string `json:"type" yaml:"type"`
	Required *bool  `json:"required,omitempty" yaml:"required,omitempty"`
}

func (d TypedDictDoc) DataTypeName() string { return d.Name }
func (d TypedDictDoc) DataTypeKind() string { return DataTypeTypedDict }

// CustomDoc documents a custom type that is neither an enum nor a typed dict.
type CustomDoc struct {
	Name string `json:"name" yaml:"name"`
	Doc  string `json:"doc" yaml:"doc"`
}

func (d CustomDoc) DataTypeName() string { return d.Name }
func (d CustomDoc) DataTypeKind() string { return DataTypeCustom }

// DedupeDataTypes removes duplicates by (kind, name), keeping the first
// occurrence and the given order. The readers pass enums, typed dicts and
// customs concatenated in that order.
func DedupeDataTypes(types []DataType) []DataType {
	seen := make(map[[2]string]struct{}, len(types))
	out := make([]DataType, 0, len(types))
	for _, dt := range types {
		key := [2]string{dt.DataTypeKind(), dt.DataTypeName()}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, dt)
	}
	return out
}
