package lexer

import (
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/token"
)

// scanBasicString: "..." или, в режиме значения, """...""".
// Escape-последовательности только валидируются; декодирование делает потребитель.
func (lx *Lexer) scanBasicString(allowMultiline bool) token.Token {
	start := lx.cursor.Mark()
	if allowMultiline && lx.cursor.HasPrefix(`"""`) {
		return lx.scanMultiline(start, '"', token.MultiLineBasicString)
	}
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			return lx.tokenFrom(token.BasicString, start)
		case b == '\\':
			lx.scanEscape(false)
		case b == '\n':
			return lx.unterminated(start, "newline in string literal")
		case isControl(b) && b != '\t':
			lx.controlChar()
		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminated(start, "unterminated string literal")
}

// scanLiteralString: literal string, в режиме значения также многострочный вариант.
func (lx *Lexer) scanLiteralString(allowMultiline bool) token.Token {
	start := lx.cursor.Mark()
	if allowMultiline && lx.cursor.HasPrefix("'''") {
		return lx.scanMultiline(start, '\'', token.MultiLineLiteralString)
	}
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\'':
			lx.cursor.Bump()
			return lx.tokenFrom(token.LiteralString, start)
		case b == '\n':
			return lx.unterminated(start, "newline in string literal")
		case isControl(b) && b != '\t':
			lx.controlChar()
		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminated(start, "unterminated string literal")
}

// scanMultiline handles both triple-quoted forms. Up to two extra quote
// characters directly before the closing delimiter belong to the content.
func (lx *Lexer) scanMultiline(start Mark, quote byte, kind token.Kind) token.Token {
	lx.cursor.BumpN(3)
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == quote:
			var n uint32
			for lx.cursor.PeekAt(n) == quote {
				n++
			}
			if n < 3 {
				lx.cursor.BumpN(n)
				continue
			}
			if n > 5 {
				at := lx.cursor.Mark()
				lx.cursor.BumpN(n)
				lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(at), "too many quotes at the end of a multi-line string")
				return lx.tokenFrom(token.Invalid, start)
			}
			lx.cursor.BumpN(n)
			return lx.tokenFrom(kind, start)
		case b == '\\' && quote == '"':
			lx.scanEscape(true)
		case b == '\n':
			lx.cursor.Bump()
		case isControl(b) && b != '\t':
			lx.controlChar()
		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminated(start, "unterminated multi-line string literal")
}

func (lx *Lexer) scanEscape(multiline bool) {
	at := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	b := lx.cursor.Peek()
	switch b {
	case 'b', 't', 'n', 'f', 'r', '"', '\\', 'e':
		lx.cursor.Bump()
	case 'u':
		lx.cursor.Bump()
		lx.scanHexDigits(at, 4)
	case 'U':
		lx.cursor.Bump()
		lx.scanHexDigits(at, 8)
	case ' ', '\t', '\n':
		// line ending backslash: "\" + optional spaces + newline
		if multiline {
			var n uint32
			for c := lx.cursor.PeekAt(n); c == ' ' || c == '\t'; c = lx.cursor.PeekAt(n) {
				n++
			}
			if lx.cursor.PeekAt(n) == '\n' {
				lx.cursor.BumpN(n + 1)
				return
			}
		}
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(at), "invalid escape sequence")
	default:
		if !lx.cursor.EOF() && b != '\n' {
			lx.cursor.Bump()
		}
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(at), "invalid escape sequence")
	}
}

func (lx *Lexer) scanHexDigits(at Mark, n int) {
	for range n {
		if !isHex(lx.cursor.Peek()) {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(at), "invalid unicode escape")
			return
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) controlChar() {
	at := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.errLex(diag.LexControlChar, lx.cursor.SpanFrom(at), "control character in string")
}

func (lx *Lexer) unterminated(start Mark, msg string) token.Token {
	tok := lx.tokenFrom(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, msg)
	return tok
}
