package format

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Writer accumulates formatted output and keeps track of indentation and
// the current line.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new formatting writer.
func NewWriter(opt Options, sizeHint int) *Writer {
	return &Writer{
		opt: opt.withDefaults(),
		buf: make([]byte, 0, sizeHint),
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Empty reports whether nothing has been written yet.
func (w *Writer) Empty() bool {
	return len(w.buf) == 0
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for range w.indentLevel {
		w.buf = append(w.buf, w.opt.IndentString...)
	}
	w.atLineStart = false
}

// WriteString writes a string to the output, handling indentation.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Space writes a single space if the output doesn't already end with whitespace.
func (w *Writer) Space() {
	if len(w.buf) == 0 || w.atLineStart {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\t' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline writes a newline if the output doesn't already end with one.
func (w *Writer) Newline() {
	if len(w.buf) != 0 && w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// BlankLines ends the current line and adds n empty lines.
func (w *Writer) BlankLines(n int) {
	w.Newline()
	if len(w.buf) == 0 {
		return
	}
	for range n {
		w.buf = append(w.buf, '\n')
	}
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// Column returns the display width of the current line, counting the
// indentation that would be written before the next text.
func (w *Writer) Column() int {
	if w.atLineStart {
		return w.indentLevel * runewidth.StringWidth(w.opt.IndentString)
	}
	line := w.buf
	if i := bytes.LastIndexByte(line, '\n'); i >= 0 {
		line = line[i+1:]
	}
	return runewidth.StringWidth(string(line))
}

// Finish applies the trailing newline and line ending options.
func (w *Writer) Finish() string {
	out := strings.TrimRight(string(w.buf), "\n")
	if w.opt.TrailingNewline {
		out += "\n"
	}
	if w.opt.CRLF {
		out = strings.ReplaceAll(out, "\n", "\r\n")
	}
	return out
}
