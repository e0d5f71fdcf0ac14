package lexer

import (
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/token"
)

// Mode selects how the bytes after the trivia are interpreted.
// TOML keys and values overlap ("true", "1979", "inf" are valid bare keys),
// so the parser tells the lexer what it expects.
type Mode uint8

const (
	ModeKey Mode = iota
	ModeValue
)

type pendingDiag struct {
	code diag.Code
	span source.Span
	msg  string
}

type lookahead struct {
	tok   token.Token
	mode  Mode
	start Mark
	diags []pendingDiag
}

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *lookahead     // 1 элементный буфер для токена
	hold    []token.Trivia // накопленные leading trivia
	pending []pendingDiag
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// После EOF всегда возвращает EOF; trivia перед концом файла приклеиваются к EOF.
func (lx *Lexer) Next(mode Mode) token.Token {
	if lx.look != nil {
		look := lx.look
		lx.look = nil
		if look.mode == mode {
			lx.flush(look.diags)
			return look.tok
		}
		// режим поменялся: пересканируем с того же места
		lx.cursor.Reset(look.start)
	}
	tok := lx.scan(mode)
	lx.flush(lx.pending)
	lx.pending = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek(mode Mode) token.Token {
	if lx.look != nil {
		if lx.look.mode == mode {
			return lx.look.tok
		}
		lx.cursor.Reset(lx.look.start)
		lx.look = nil
	}
	start := lx.cursor.Mark()
	tok := lx.scan(mode)
	lx.look = &lookahead{tok: tok, mode: mode, start: start, diags: lx.pending}
	lx.pending = nil
	return tok
}

func (lx *Lexer) scan(mode Mode) token.Token {
	lx.collectLeadingTrivia()
	leading := lx.hold
	lx.hold = nil

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: leading}
	}

	var tok token.Token
	ch := lx.cursor.Peek()
	switch {
	case ch == '"':
		tok = lx.scanBasicString(mode == ModeValue)
	case ch == '\'':
		tok = lx.scanLiteralString(mode == ModeValue)
	case isPunct(ch):
		tok = lx.scanPunct()
	case mode == ModeKey:
		tok = lx.scanBareKey()
	default:
		tok = lx.scanScalar()
	}
	tok.Leading = leading
	return tok
}

func (lx *Lexer) flush(diags []pendingDiag) {
	if lx.opts.Reporter == nil {
		return
	}
	for _, d := range diags {
		lx.opts.Reporter.Report(d.code, diag.SevError, d.span, d.msg)
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) tokenFrom(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
