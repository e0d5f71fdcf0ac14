package parser

import (
	"fmt"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/source"
)

// ParseError reports that the input is not valid TOML.
type ParseError struct {
	File        *source.File
	Diagnostics []diag.Diagnostic
}

func (e *ParseError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "invalid TOML"
	}
	if len(e.Diagnostics) == 1 {
		return "invalid TOML: " + diag.Render(e.File, e.Diagnostics[0])
	}
	return fmt.Sprintf("invalid TOML (%d errors):\n%s", len(e.Diagnostics), diag.RenderAll(e.File, e.Diagnostics))
}
