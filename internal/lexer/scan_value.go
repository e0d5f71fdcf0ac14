package lexer

import (
	"regexp"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/token"
)

var (
	reDecInt   = regexp.MustCompile(`^[+-]?(0|[1-9](_?[0-9])*)$`)
	reHexInt   = regexp.MustCompile(`^0x[0-9A-Fa-f](_?[0-9A-Fa-f])*$`)
	reOctInt   = regexp.MustCompile(`^0o[0-7](_?[0-7])*$`)
	reBinInt   = regexp.MustCompile(`^0b[01](_?[01])*$`)
	reFloat    = regexp.MustCompile(`^[+-]?(0|[1-9](_?[0-9])*)(\.[0-9](_?[0-9])*)?([eE][+-]?[0-9](_?[0-9])*)?$`)
	reSpecial  = regexp.MustCompile(`^[+-]?(inf|nan)$`)
	reDateTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}([Tt ]\d{2}:\d{2}(:\d{2}(\.\d+)?)?([Zz]|[+-]\d{2}:\d{2})?)?|\d{2}:\d{2}(:\d{2}(\.\d+)?)?)$`)
	reDate     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// scanScalar читает непрерывную последовательность символов значения
// (числа, bool, даты) и классифицирует её целиком.
func (lx *Lexer) scanScalar() token.Token {
	start := lx.cursor.Mark()
	for isScalarByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Off == uint32(start) {
		return lx.unknownChar(start)
	}
	// "1979-05-27 07:32:00": пробел между датой и временем
	text := string(lx.file.Content[start:lx.cursor.Off])
	if reDate.MatchString(text) && lx.cursor.Peek() == ' ' &&
		isDec(lx.cursor.PeekAt(1)) && isDec(lx.cursor.PeekAt(2)) && lx.cursor.PeekAt(3) == ':' {
		lx.cursor.Bump()
		for isScalarByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	tok := lx.tokenFrom(token.Invalid, start)
	tok.Kind = classifyScalar(tok.Text)
	if tok.Kind == token.Invalid {
		code, msg := diag.LexBadNumber, "invalid number literal"
		switch {
		case reDate.MatchString(firstN(tok.Text, 10)) || containsByte(tok.Text, ':'):
			code, msg = diag.LexBadDateTime, "invalid date-time literal"
		case !isDec(tok.Text[0]) && tok.Text[0] != '+' && tok.Text[0] != '-':
			code, msg = diag.LexUnknownChar, "invalid value"
		}
		lx.errLex(code, tok.Span, msg)
	}
	return tok
}

func classifyScalar(text string) token.Kind {
	switch {
	case text == "true" || text == "false":
		return token.Bool
	case reDecInt.MatchString(text), reHexInt.MatchString(text), reOctInt.MatchString(text), reBinInt.MatchString(text):
		return token.Integer
	case reSpecial.MatchString(text), reFloat.MatchString(text):
		return token.Float
	case reDateTime.MatchString(text):
		return token.DateTime
	default:
		return token.Invalid
	}
}

func (lx *Lexer) scanBareKey() token.Token {
	start := lx.cursor.Mark()
	for isBareKeyByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Off == uint32(start) {
		return lx.unknownChar(start)
	}
	return lx.tokenFrom(token.BareKey, start)
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	var kind token.Kind
	switch lx.cursor.Bump() {
	case '=':
		kind = token.Eq
	case '.':
		kind = token.Dot
	case ',':
		kind = token.Comma
	case '[':
		kind = token.BracketStart
	case ']':
		kind = token.BracketEnd
	case '{':
		kind = token.BraceStart
	case '}':
		kind = token.BraceEnd
	}
	return lx.tokenFrom(kind, start)
}

func (lx *Lexer) unknownChar(start Mark) token.Token {
	lx.bumpRune()
	tok := lx.tokenFrom(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected character "+quoteChar(tok.Text))
	return tok
}
