package diag

import (
	"fmt"
	"strings"

	"pyprojectfmt/internal/source"
)

// Render formats one diagnostic as "path:line:col: severity[ID]: message".
func Render(f *source.File, d Diagnostic) string {
	pos := f.Position(d.Primary.Start)
	return fmt.Sprintf("%s:%d:%d: %s[%s]: %s", f.Path, pos.Line, pos.Col, d.Severity, d.Code.ID(), d.Message)
}

// RenderAll renders every diagnostic on its own line, notes indented below.
func RenderAll(f *source.File, diags []Diagnostic) string {
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(Render(f, d))
		for _, n := range d.Notes {
			pos := f.Position(n.Span.Start)
			fmt.Fprintf(&sb, "\n  note: %d:%d: %s", pos.Line, pos.Col, n.Msg)
		}
	}
	return sb.String()
}
