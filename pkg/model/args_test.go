package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArgumentSpec_GroupOrderPreserved(t *testing.T) {
	records := []ArgRecord{
		{Name: "a", Kind: KindPositionalOnly},
		{Name: "b", Kind: KindPositionalOnly},
		{Name: "_", Kind: KindPositionalOnlySeparator},
		{Name: "c", Kind: KindPositionalOrNamed},
		{Name: "d", Kind: KindPositionalOrNamed},
		{Name: "rest", Kind: KindVarPositional},
		{Name: "e", Kind: KindNamedOnly},
		{Name: "f", Kind: KindNamedOnly},
		{Name: "extra", Kind: KindVarNamed},
	}

	spec, err := BuildArgumentSpec(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, spec.PositionalOnly)
	assert.Equal(t, []string{"c", "d"}, spec.PositionalOrNamed)
	assert.Equal(t, "rest", spec.VarPositional)
	assert.Equal(t, []string{"e", "f"}, spec.NamedOnly)
	assert.Equal(t, "extra", spec.VarNamed)
	assert.Equal(t, []string{"a", "b", "c", "d", "rest", "e", "f", "extra"}, spec.Names())
}

func TestBuildArgumentSpec_SeparatorsContributeNothing(t *testing.T) {
	records := []ArgRecord{
		{Name: "/", Kind: KindPositionalOnlySeparator, HasDefault: true, Default: "x", Types: []string{"str"}},
		{Name: "*", Kind: KindNamedOnlySeparator, Types: []string{"int"}},
		{Name: "y", Kind: KindNamedOnly},
	}

	spec, err := BuildArgumentSpec(records)
	require.NoError(t, err)

	assert.Empty(t, spec.PositionalOnly)
	assert.Empty(t, spec.PositionalOrNamed)
	assert.Equal(t, []string{"y"}, spec.NamedOnly)
	assert.NotContains(t, spec.Defaults, "/")
	assert.NotContains(t, spec.Types, "/")
	assert.NotContains(t, spec.Types, "*")
	assert.Equal(t, []string{"y"}, spec.Names())
}

func TestBuildArgumentSpec_DefaultsOnlyWhenDeclared(t *testing.T) {
	records := []ArgRecord{
		{Name: "a", Kind: KindPositionalOrNamed},
		{Name: "b", Kind: KindPositionalOrNamed, HasDefault: true, Default: ""},
		{Name: "c", Kind: KindNamedOnly, HasDefault: true, Default: 5},
	}

	spec, err := BuildArgumentSpec(records)
	require.NoError(t, err)

	assert.NotContains(t, spec.Defaults, "a")
	assert.Equal(t, "", spec.Defaults["b"])
	assert.Equal(t, 5, spec.Defaults["c"])
}

func TestBuildArgumentSpec_TypesAlwaysRecorded(t *testing.T) {
	records := []ArgRecord{
		{Name: "a", Kind: KindPositionalOrNamed},
		{Name: "b", Kind: KindPositionalOrNamed, Types: []string{"int", "str"}},
	}

	spec, err := BuildArgumentSpec(records)
	require.NoError(t, err)

	assert.Equal(t, []string{}, spec.Types["a"])
	assert.Equal(t, []string{"int", "str"}, spec.Types["b"])
}

func TestBuildArgumentSpec_VariadicLastWriteWins(t *testing.T) {
	records := []ArgRecord{
		{Name: "first", Kind: KindVarPositional},
		{Name: "second", Kind: KindVarPositional},
	}

	spec, err := BuildArgumentSpec(records)
	require.NoError(t, err)
	assert.Equal(t, "second", spec.VarPositional)
}

func TestBuildArgumentSpec_UnknownKind(t *testing.T) {
	_, err := BuildArgumentSpec([]ArgRecord{{Name: "x", Kind: ArgKind(42)}})
	var kindErr *UnknownArgKindError
	require.True(t, errors.As(err, &kindErr))
	assert.Equal(t, "UNKNOWN", kindErr.Kind)
}

func TestBuildArgumentSpec_Empty(t *testing.T) {
	spec, err := BuildArgumentSpec(nil)
	require.NoError(t, err)
	assert.Empty(t, spec.Names())
	assert.NotNil(t, spec.Defaults)
	assert.NotNil(t, spec.Types)
}

func TestArgKind_String(t *testing.T) {
	tests := []struct {
		kind ArgKind
		want string
	}{
		{KindPositionalOnly, "POSITIONAL_ONLY"},
		{KindPositionalOnlySeparator, "POSITIONAL_ONLY_SEPARATOR"},
		{KindPositionalOrNamed, "POSITIONAL_OR_NAMED"},
		{KindVarPositional, "VARIADIC_POSITIONAL"},
		{KindNamedOnlySeparator, "NAMED_ONLY_SEPARATOR"},
		{KindNamedOnly, "NAMED_ONLY"},
		{KindVarNamed, "VARIADIC_NAMED"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
	assert.True(t, KindPositionalOnlySeparator.IsSeparator())
	assert.True(t, KindNamedOnlySeparator.IsSeparator())
	assert.False(t, KindVarNamed.IsSeparator())
}
