package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	<path>:<line>:<col>: <sev>[<CODE>]: <message>
//	   3 | name = "demo
//	     |        ^~~~~
//
// затем Notes с тем же подчёркиванием. Diagnostics are expected sorted.
func Pretty(w io.Writer, file *source.File, diags []diag.Diagnostic, opts PrettyOpts) {
	st := newStyles(opts.Color)
	path := displayPath(file.Path, opts.PathMode, opts.BaseDir)
	for _, d := range diags {
		pos := file.Position(d.Primary.Start)
		fmt.Fprintf(w, "%s %s%s\n",
			st.bold.Sprintf("%s:%d:%d:", path, pos.Line, pos.Col),
			st.severity(d.Severity).Sprintf("%s[%s]:", d.Severity, d.Code.ID()),
			st.bold.Sprint(" "+d.Message))
		writeSnippet(w, file, d.Primary, opts.Context, st)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			np := file.Position(n.Span.Start)
			fmt.Fprintf(w, "  %s %d:%d: %s\n", st.note.Sprint("note:"), np.Line, np.Col, n.Msg)
			writeSnippet(w, file, n.Span, 0, st)
		}
	}
}

func writeSnippet(w io.Writer, file *source.File, sp source.Span, context int8, st styles) {
	start := file.Position(sp.Start)
	if start.Line == 0 {
		return
	}
	first := start.Line
	if context > 0 && uint32(context) < first {
		first -= uint32(context)
	} else if context > 0 {
		first = 1
	}
	gutter := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		text := expandTabs(file.GetLine(ln))
		fmt.Fprintf(w, " %s %s\n", st.gutter.Sprintf("%*d |", gutter, ln), text)
	}

	line := file.GetLine(start.Line)
	col := int(start.Col) - 1
	col = min(max(col, 0), len(line))
	// ширина в колонках терминала, а не в байтах
	pad := runewidth.StringWidth(expandTabs(line[:col]))
	width := 1
	end := file.Position(sp.End)
	if end.Line == start.Line && sp.End > sp.Start {
		endCol := min(int(end.Col)-1, len(line))
		width = max(runewidth.StringWidth(expandTabs(line[col:endCol])), 1)
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, " %s %s%s\n", st.gutter.Sprintf("%*s |", gutter, ""), strings.Repeat(" ", pad), st.caret.Sprint(marker))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

type styles struct {
	bold, note, gutter, caret *color.Color
	err, warn, info           *color.Color
}

func newStyles(enabled bool) styles {
	st := styles{
		bold:   color.New(color.Bold),
		note:   color.New(color.FgCyan, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{st.bold, st.note, st.gutter, st.caret, st.err, st.warn, st.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return st
}

func (st styles) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return st.err
	case diag.SevWarning:
		return st.warn
	default:
		return st.info
	}
}
