package xmlspec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specdoc-labs/specdoc/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const emptySpec = `<keywordspec specversion="3" name="Empty" type="library" scope="GLOBAL" source="/libs/Empty.py" lineno="1">
<version>1.0</version>
<doc>Does nothing.</doc>
<inits></inits>
<keywords></keywords>
<datatypes></datatypes>
</keywordspec>`

func TestBuild_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.xml")
	_, err := Build(path)
	var accessErr *model.FileAccessError
	require.True(t, errors.As(err, &accessErr))
	assert.Contains(t, err.Error(), path)
}

func TestBuild_WrongRootTag(t *testing.T) {
	path := writeSpec(t, `<notaspec specversion="3"></notaspec>`)
	_, err := Build(path)
	var schemaErr *model.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, err.Error(), path)
}

func TestBuild_UnsupportedVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"too old", `specversion="2"`},
		{"too new", `specversion="5"`},
		{"absent", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSpec(t, `<keywordspec `+tt.version+`></keywordspec>`)
			_, err := Build(path)
			var versionErr *model.VersionError
			require.True(t, errors.As(err, &versionErr))
			assert.Contains(t, err.Error(), "Supported versions are 3 and 4.")
		})
	}
}

func TestBuild_MalformedXMLPropagates(t *testing.T) {
	path := writeSpec(t, `<keywordspec specversion="3">`)
	_, err := Build(path)
	require.Error(t, err)
	var schemaErr *model.SchemaError
	assert.False(t, errors.As(err, &schemaErr), "decoder error must not be translated")
}

func TestBuild_EmptyDocument(t *testing.T) {
	lib, err := Build(writeSpec(t, emptySpec))
	require.NoError(t, err)

	assert.Equal(t, "Empty", lib.Name)
	assert.Equal(t, model.TypeLibrary, lib.Type, "type is upper-cased")
	assert.Equal(t, "1.0", lib.Version)
	assert.Equal(t, "Does nothing.", lib.Doc)
	assert.Equal(t, "GLOBAL", lib.Scope)
	assert.Equal(t, DefaultDocFormat, lib.DocFormat, "format defaults when absent")
	assert.Equal(t, 1, lib.Lineno)
	assert.Empty(t, lib.Inits)
	assert.Empty(t, lib.Keywords)
	assert.Empty(t, lib.DataTypes)
}

func TestBuild_LibraryLineno(t *testing.T) {
	tests := []struct {
		name   string
		attr   string
		lineno int
	}{
		{"absent", "", model.LinenoUnknown},
		{"zero", `lineno="0"`, model.LinenoUnknown},
		{"positive", `lineno="7"`, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSpec(t, `<keywordspec specversion="4" name="L" type="LIBRARY" `+tt.attr+`>
<version/><doc/><inits/><keywords/><datatypes/>
</keywordspec>`)
			lib, err := Build(path)
			require.NoError(t, err)
			assert.Equal(t, tt.lineno, lib.Lineno)
		})
	}
}

func TestBuild_KeywordSourceFallsBackToLibrary(t *testing.T) {
	path := writeSpec(t, `<keywordspec specversion="4" name="L" type="LIBRARY" source="/libs/L.py">
<version/><doc/>
<inits/>
<keywords>
<kw name="Own Source" source="/libs/other.py" lineno="5"><doc/><shortdoc/><tags/><arguments/></kw>
<kw name="Inherited"><doc/><shortdoc/><tags/><arguments/></kw>
</keywords>
<datatypes/>
</keywordspec>`)

	lib, err := Build(path)
	require.NoError(t, err)
	require.Len(t, lib.Keywords, 2)
	assert.Equal(t, "/libs/other.py", lib.Keywords[0].Source)
	assert.Equal(t, 5, lib.Keywords[0].Lineno)
	assert.Equal(t, "/libs/L.py", lib.Keywords[1].Source)
	assert.Equal(t, model.LinenoUnknown, lib.Keywords[1].Lineno)
}

func TestBuild_Arguments(t *testing.T) {
	path := writeSpec(t, `<keywordspec specversion="4" name="L" type="LIBRARY" source="/libs/L.py">
<version/><doc/>
<inits/>
<keywords>
<kw name="Run" lineno="3">
<doc>Runs things.</doc>
<shortdoc>Runs things.</shortdoc>
<tags><tag>fast</tag><tag>safe</tag></tags>
<arguments>
<arg kind="POSITIONAL_ONLY"><name>a</name></arg>
<arg kind="POSITIONAL_ONLY_MARKER"><name>/</name></arg>
<arg kind="POSITIONAL_OR_NAMED"><name>b</name><default></default><type>int</type><type>str</type></arg>
<arg kind="VAR_POSITIONAL"><name>rest</name></arg>
<arg kind="NAMED_ONLY"><name>c</name><default>10</default></arg>
<arg kind="VAR_NAMED"><name>extra</name></arg>
<arg kind="POSITIONAL_OR_NAMED"></arg>
</arguments>
</kw>
</keywords>
<datatypes/>
</keywordspec>`)

	lib, err := Build(path)
	require.NoError(t, err)
	require.Len(t, lib.Keywords, 1)
	kw := lib.Keywords[0]
	assert.Equal(t, []string{"fast", "safe"}, kw.Tags)

	args := kw.Args
	assert.Equal(t, []string{"a"}, args.PositionalOnly)
	assert.Equal(t, []string{"b"}, args.PositionalOrNamed)
	assert.Equal(t, "rest", args.VarPositional)
	assert.Equal(t, []string{"c"}, args.NamedOnly)
	assert.Equal(t, "extra", args.VarNamed)

	// Empty <default/> is an explicit empty default, not absence.
	assert.Equal(t, "", args.Defaults["b"])
	assert.Equal(t, "10", args.Defaults["c"])
	assert.NotContains(t, args.Defaults, "a")

	assert.Equal(t, []string{"int", "str"}, args.Types["b"])
	assert.Equal(t, []string{}, args.Types["a"])
	assert.NotContains(t, args.Types, "/")

	// The nameless <arg> contributes nothing at all.
	assert.Equal(t, []string{"a", "b", "rest", "c", "extra"}, args.Names())
}

func TestBuild_UnknownArgKind(t *testing.T) {
	path := writeSpec(t, `<keywordspec specversion="4" name="L" type="LIBRARY">
<version/><doc/><inits/>
<keywords>
<kw name="K"><doc/><shortdoc/><tags/>
<arguments><arg kind="BOGUS"><name>x</name></arg></arguments>
</kw>
</keywords>
<datatypes/>
</keywordspec>`)

	_, err := Build(path)
	var kindErr *model.UnknownArgKindError
	require.True(t, errors.As(err, &kindErr))
	assert.Equal(t, "BOGUS", kindErr.Kind)
}

func TestBuild_DataTypes(t *testing.T) {
	path := writeSpec(t, `<keywordspec specversion="4" name="L" type="LIBRARY">
<version/><doc/><inits/><keywords/>
<datatypes>
<enums>
<enum name="Color"><doc>Colors.</doc>
<members><member name="RED" value="0"/><member name="GREEN" value="1"/></members>
</enum>
</enums>
<typeddicts>
<typeddict name="Point"><doc>A point.</doc>
<items>
<item key="x" type="int" required="true"/>
<item key="y" type="int" required="false"/>
<item key="z" type="int"/>
</items>
</typeddict>
</typeddicts>
<customs><custom name="Path"><doc>A path.</doc></custom></customs>
</datatypes>
</keywordspec>`)

	lib, err := Build(path)
	require.NoError(t, err)
	require.Len(t, lib.DataTypes, 3)

	enum, ok := lib.DataTypes[0].(model.EnumDoc)
	require.True(t, ok)
	assert.Equal(t, []model.EnumMember{{Name: "RED", Value: "0"}, {Name: "GREEN", Value: "1"}}, enum.Members)

	dict, ok := lib.DataTypes[1].(model.TypedDictDoc)
	require.True(t, ok)
	require.Len(t, dict.Items, 3)
	require.NotNil(t, dict.Items[0].Required)
	assert.True(t, *dict.Items[0].Required)
	require.NotNil(t, dict.Items[1].Required)
	assert.False(t, *dict.Items[1].Required)
	assert.Nil(t, dict.Items[2].Required)

	custom, ok := lib.DataTypes[2].(model.CustomDoc)
	require.True(t, ok)
	assert.Equal(t, "Path", custom.Name)
}

func TestRoundTrip(t *testing.T) {
	path := writeSpec(t, `<keywordspec specversion="4" name="L" type="LIBRARY" scope="GLOBAL" format="HTML" source="/libs/L.py" lineno="2">
<version>3.1</version><doc>Lib doc.</doc>
<inits/>
<keywords>
<kw name="Go" source="/libs/L.py" lineno="9">
<doc>Goes.</doc><shortdoc>Goes.</shortdoc>
<tags><tag>go</tag></tags>
<arguments>
<arg kind="POSITIONAL_OR_NAMED"><name>a</name><default>1</default><type>int</type></arg>
<arg kind="NAMED_ONLY_MARKER"><name>*</name></arg>
<arg kind="NAMED_ONLY"><name>b</name></arg>
</arguments>
</kw>
</keywords>
<datatypes>
<enums><enum name="E"><doc/><members/></enum></enums>
</datatypes>
</keywordspec>`)

	lib, err := Build(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.xml")
	f, err := os.Create(out)
	require.NoError(t, err)
	require.NoError(t, Write(f, lib))
	require.NoError(t, f.Close())

	again, err := Build(out)
	require.NoError(t, err)
	assert.Equal(t, lib, again)
}
