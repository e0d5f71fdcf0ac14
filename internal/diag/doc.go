// Package diag defines the diagnostic model shared by the lexer and the parser.
//
// Diagnostic is the central record: Severity, a stable numeric Code (see
// codes.go, rendered as LEX/SYN/IO identifiers), a short Message, the Primary
// span and optional Notes. Producers emit through a Reporter; BagReporter
// collects into a Bag which supports limits, sorting and deduplication.
//
// Package diag does no IO. Render/RenderAll produce the one-line textual form
// used by parse errors and the CLI.
package diag
