package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeDataTypes(t *testing.T) {
	types := []DataType{
		EnumDoc{Name: "Color"},
		TypedDictDoc{Name: "Point"},
		EnumDoc{Name: "Color", Doc: "duplicate, dropped"},
		CustomDoc{Name: "Color"}, // different kind, kept
		CustomDoc{Name: "Path"},
	}

	got := DedupeDataTypes(types)

	assert.Len(t, got, 4)
	assert.Equal(t, "Color", got[0].DataTypeName())
	assert.Equal(t, DataTypeEnum, got[0].DataTypeKind())
	assert.Equal(t, "Point", got[1].DataTypeName())
	assert.Equal(t, DataTypeCustom, got[2].DataTypeKind())
	assert.Equal(t, "Path", got[3].DataTypeName())
}

func TestDedupeDataTypes_Empty(t *testing.T) {
	assert.Empty(t, DedupeDataTypes(nil))
}

func TestDataTypeKinds(t *testing.T) {
	assert.Equal(t, DataTypeEnum, EnumDoc{}.DataTypeKind())
	assert.Equal(t, DataTypeTypedDict, TypedDictDoc{}.DataTypeKind())
	assert.Equal(t, DataTypeCustom, CustomDoc{}.DataTypeKind())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Spec file '/tmp/x.json' does not exist.",
		(&FileAccessError{Path: "/tmp/x.json"}).Error())
	assert.Equal(t, "Invalid spec file '/tmp/x.xml'.",
		(&SchemaError{Path: "/tmp/x.xml"}).Error())
	assert.Equal(t, "Invalid spec file version '5'. Supported versions are 3 and 4.",
		(&VersionError{Version: "5"}).Error())
}
