package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufRenderer(mode Mode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewRenderer(&out, &errOut, mode), &out, &errOut
}

func TestEffectiveMode_AutoFallsBackToMarkdown(t *testing.T) {
	// A bytes.Buffer is not a terminal.
	r, _, _ := newBufRenderer(ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestEffectiveMode_Explicit(t *testing.T) {
	for _, mode := range []Mode{ModeText, ModeMarkdown, ModeJSON} {
		r, _, _ := newBufRenderer(mode)
		assert.Equal(t, mode, r.EffectiveMode())
	}
}

func TestHeader_Markdown(t *testing.T) {
	r, out, _ := newBufRenderer(ModeMarkdown)
	r.Header(2, "Keywords")
	assert.Equal(t, "## Keywords\n\n", out.String())
}

func TestHeader_Text(t *testing.T) {
	r, out, _ := newBufRenderer(ModeText)
	r.Header(1, "Keywords")
	assert.Contains(t, out.String(), "Keywords")
}

func TestErrorf_WritesToErrStream(t *testing.T) {
	r, out, errOut := newBufRenderer(ModeMarkdown)
	r.Errorf("boom: %s", "reason")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "boom: reason")
}

func TestJSON(t *testing.T) {
	r, out, _ := newBufRenderer(ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"n": 1}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 1, decoded["n"])
}

func TestTable_Markdown(t *testing.T) {
	r, out, _ := newBufRenderer(ModeMarkdown)
	r.Table([]string{"Name", "Version"}, [][]string{{"Remote", "1.0"}})

	got := out.String()
	assert.Contains(t, got, "| Name")
	assert.Contains(t, got, "| Remote")
	assert.True(t, strings.Contains(got, "---"), "markdown tables carry a divider row")
}

func TestTable_Text(t *testing.T) {
	r, out, _ := newBufRenderer(ModeText)
	r.Table([]string{"Name"}, [][]string{{"Remote"}})
	assert.Contains(t, out.String(), "Remote")
}

func TestDocText_PassThrough(t *testing.T) {
	assert.Equal(t, "*plain*", DocText("*plain*", "ROBOT"))
}

func TestDocText_HTML(t *testing.T) {
	got := DocText("<p>Hello <b>world</b></p>", "HTML")
	assert.Contains(t, got, "Hello")
	assert.Contains(t, got, "**world**")
	assert.NotContains(t, got, "<p>")
}
