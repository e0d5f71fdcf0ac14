package parser

import (
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/lexer"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/syntax"
	"pyprojectfmt/internal/token"
)

// countingReporter считает ошибки, чтобы парсер знал, когда нужен resync.
type countingReporter struct {
	next   diag.Reporter
	errors int
}

func (r *countingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string) {
	if sev == diag.SevError {
		r.errors++
	}
	r.next.Report(code, sev, primary, msg)
}

// advance - съедает следующий токен; его leading trivia становятся
// узлами в dst (trivia принадлежат тому родителю, который их видит).
func (p *Parser) advance(mode lexer.Mode, dst *[]syntax.NodeID) token.Token {
	tok := p.lx.Next(mode)
	*dst = append(*dst, p.triviaNodes(tok.Leading)...)
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) triviaNodes(trivia []token.Trivia) []syntax.NodeID {
	if len(trivia) == 0 {
		return nil
	}
	out := make([]syntax.NodeID, 0, len(trivia))
	for _, tv := range trivia {
		var kind syntax.Kind
		switch tv.Kind {
		case token.TriviaSpace:
			kind = syntax.Whitespace
		case token.TriviaNewline:
			kind = syntax.Newline
		case token.TriviaComment:
			kind = syntax.Comment
		}
		out = append(out, p.tree.NewToken(kind, tv.Text))
	}
	return out
}

// tokenNode converts a lexer token into a detached syntax token.
// Invalid tokens keep their text so that the tree stays lossless.
func (p *Parser) tokenNode(tok token.Token) syntax.NodeID {
	return p.tree.NewToken(syntaxKind(tok.Kind), tok.Text)
}

func syntaxKind(k token.Kind) syntax.Kind {
	switch k {
	case token.BareKey:
		return syntax.BareKey
	case token.BasicString:
		return syntax.BasicString
	case token.LiteralString:
		return syntax.LiteralString
	case token.MultiLineBasicString:
		return syntax.MultiLineBasicString
	case token.MultiLineLiteralString:
		return syntax.MultiLineLiteralString
	case token.Integer:
		return syntax.Integer
	case token.Float:
		return syntax.Float
	case token.Bool:
		return syntax.Bool
	case token.DateTime:
		return syntax.DateTime
	case token.Eq:
		return syntax.Eq
	case token.Dot:
		return syntax.Dot
	case token.Comma:
		return syntax.Comma
	case token.BracketStart:
		return syntax.BracketStart
	case token.BracketEnd:
		return syntax.BracketEnd
	case token.BraceStart:
		return syntax.BraceStart
	case token.BraceEnd:
		return syntax.BraceEnd
	default:
		return syntax.BareKey
	}
}

// expectSpan - лучший span для диагностики: у EOF нулевая длина, тогда
// указываем на конец последнего съеденного токена.
func (p *Parser) expectSpan(tok token.Token) source.Span {
	if tok.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	p.rep.Report(code, diag.SevError, sp, msg)
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Invalid:
		return "invalid token"
	default:
		return "'" + tok.Text + "'"
	}
}

func hasComment(tok token.Token) bool {
	for _, tv := range tok.Leading {
		if tv.Kind == token.TriviaComment {
			return true
		}
	}
	return false
}
