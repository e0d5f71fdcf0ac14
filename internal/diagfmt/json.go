package diagfmt

import (
	"encoding/json"
	"errors"
	"io"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/parser"
	"pyprojectfmt/internal/source"
)

// FileReport collects what went wrong with one input file. Parse failures
// carry positioned diagnostics, everything else only Err.
type FileReport struct {
	Path        string
	File        *source.File
	Diagnostics []diag.Diagnostic
	Err         error
}

// FromError unpacks a formatting error for path into a report.
func FromError(path string, err error) FileReport {
	var perr *parser.ParseError
	if errors.As(err, &perr) && perr.File != nil && len(perr.Diagnostics) > 0 {
		return FileReport{Path: path, File: perr.File, Diagnostics: perr.Diagnostics}
	}
	return FileReport{Path: path, Err: err}
}

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	File     string        `json:"file"`
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
	Notes    []NoteJSON    `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, f *source.File, includePositions bool) LocationJSON {
	loc := LocationJSON{StartByte: span.Start, EndByte: span.End}
	if includePositions {
		start, end := f.Position(span.Start), f.Position(span.End)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(reports []FileReport, opts JSONOpts) DiagnosticsOutput {
	diagnostics := make([]DiagnosticJSON, 0, len(reports))
	full := func() bool { return opts.Max > 0 && len(diagnostics) >= opts.Max }

	for _, r := range reports {
		if full() {
			break
		}
		path := displayPath(r.Path, opts.PathMode, opts.BaseDir)
		if r.File == nil {
			msg := "unknown error"
			if r.Err != nil {
				msg = r.Err.Error()
			}
			diagnostics = append(diagnostics, DiagnosticJSON{
				File:     path,
				Severity: diag.SevError.String(),
				Code:     diag.UnknownCode.ID(),
				Message:  msg,
			})
			continue
		}
		for _, d := range r.Diagnostics {
			if full() {
				break
			}
			loc := makeLocation(d.Primary, r.File, opts.IncludePositions)
			dj := DiagnosticJSON{
				File:     path,
				Severity: d.Severity.String(),
				Code:     d.Code.ID(),
				Message:  d.Message,
				Location: &loc,
			}
			if opts.IncludeNotes {
				for _, n := range d.Notes {
					dj.Notes = append(dj.Notes, NoteJSON{
						Message:  n.Msg,
						Location: makeLocation(n.Span, r.File, opts.IncludePositions),
					})
				}
			}
			diagnostics = append(diagnostics, dj)
		}
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON форматирует диагностики всех отчётов одним JSON документом.
func JSON(w io.Writer, reports []FileReport, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(reports, opts))
}
