// Package render writes command output in one of three modes: styled text
// for terminals, markdown for pipes and scripts, and JSON for tooling.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes formatted output to a pair of streams.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styled bool

	headerStyle  lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	dimStyle     lipgloss.Style
}

// NewRenderer creates a renderer. ModeAuto resolves to text on a terminal
// and markdown otherwise. Styling follows the terminal's color profile.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	r := &Renderer{out: out, errOut: errOut, mode: mode}
	r.styled = r.EffectiveMode() == ModeText && termenv.EnvColorProfile() != termenv.Ascii
	r.headerStyle = lipgloss.NewStyle().Bold(true)
	r.successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	r.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	r.dimStyle = lipgloss.NewStyle().Faint(true)
	return r
}

// EffectiveMode resolves ModeAuto against the output stream.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Header writes a section header of the given level.
func (r *Renderer) Header(level int, text string) {
	switch r.EffectiveMode() {
	case ModeMarkdown:
		fmt.Fprintf(r.out, "%s %s\n\n", strings.Repeat("#", level), text)
	default:
		if r.styled {
			text = r.headerStyle.Render(text)
		}
		fmt.Fprintf(r.out, "%s\n", text)
	}
}

// Textf writes a plain formatted line.
func (r *Renderer) Textf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Dimf writes a de-emphasized line (plain in markdown mode).
func (r *Renderer) Dimf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if r.styled {
		line = r.dimStyle.Render(line)
	}
	fmt.Fprintf(r.out, "%s\n", line)
}

// Successf writes a success line.
func (r *Renderer) Successf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if r.styled {
		line = r.successStyle.Render(line)
	}
	fmt.Fprintf(r.out, "%s\n", line)
}

// Errorf writes an error line to the error stream.
func (r *Renderer) Errorf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if r.styled {
		line = r.errorStyle.Render(line)
	}
	fmt.Fprintf(r.errOut, "%s\n", line)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table writes a table, as box drawing in text mode and as a markdown table
// otherwise.
func (r *Renderer) Table(headers []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)
	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
