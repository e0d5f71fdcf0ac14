package parser

import (
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/lexer"
	"pyprojectfmt/internal/syntax"
	"pyprojectfmt/internal/token"
)

// parseValue оборачивает скаляр, массив или inline-таблицу в Value;
// первый токен уже съеден.
func (p *Parser) parseValue(first token.Token) syntax.NodeID {
	switch {
	case first.IsScalar():
		return p.tree.NewValue(p.tokenNode(first))
	case first.Kind == token.BracketStart:
		return p.tree.NewValue(p.parseArray(first))
	case first.Kind == token.BraceStart:
		return p.tree.NewValue(p.parseInlineTable(first))
	case first.Kind == token.Invalid:
		// лексер уже сообщил об ошибке
		return p.tree.NewValue(p.tokenNode(first))
	default:
		p.errAt(diag.SynExpectValue, p.expectSpan(first), "expected a value, got "+describe(first))
		return p.tree.NewValue(p.tokenNode(first))
	}
}

// parseArray: элементы, запятые и все trivia (включая переводы строк и
// комментарии) становятся детьми Array.
func (p *Parser) parseArray(open token.Token) syntax.NodeID {
	children := []syntax.NodeID{p.tokenNode(open)}
	expectValue := true
	for {
		tok := p.advance(lexer.ModeValue, &children)
		switch {
		case tok.Kind == token.BracketEnd:
			children = append(children, p.tokenNode(tok))
			return p.tree.NewNode(syntax.Array, children...)
		case tok.Kind == token.EOF:
			p.errAt(diag.SynUnclosedBracket, p.expectSpan(tok), "unclosed array, expected ']'")
			return p.tree.NewNode(syntax.Array, children...)
		case expectValue:
			if tok.Kind == token.Comma {
				p.errAt(diag.SynExpectValue, tok.Span, "expected a value before ','")
				children = append(children, p.tokenNode(tok))
				continue
			}
			children = append(children, p.parseValue(tok))
			expectValue = false
		case tok.Kind == token.Comma:
			children = append(children, p.tokenNode(tok))
			expectValue = true
		default:
			p.errAt(diag.SynExpectComma, tok.Span, "expected ',' or ']' after array element, got "+describe(tok))
			children = append(children, p.tokenNode(tok))
			return p.tree.NewNode(syntax.Array, children...)
		}
	}
}

// parseInlineTable: { k = v, ... } на одной строке, без завершающей запятой.
func (p *Parser) parseInlineTable(open token.Token) syntax.NodeID {
	children := []syntax.NodeID{p.tokenNode(open)}
	expectEntry := false
	empty := true
	for {
		tok := p.advance(lexer.ModeKey, &children)
		if tok.HasNewline() || hasComment(tok) {
			p.errAt(diag.SynNewlineInInline, tok.Span, "inline tables must stay on a single line")
			return p.tree.NewNode(syntax.InlineTable, children...)
		}
		switch {
		case tok.Kind == token.BraceEnd && !expectEntry:
			children = append(children, p.tokenNode(tok))
			return p.tree.NewNode(syntax.InlineTable, children...)
		case tok.Kind == token.EOF:
			p.errAt(diag.SynUnclosedBrace, p.expectSpan(tok), "unclosed inline table, expected '}'")
			return p.tree.NewNode(syntax.InlineTable, children...)
		case (expectEntry || empty) && tok.IsKeySegment():
			children = append(children, p.parseEntry(tok))
			expectEntry, empty = false, false
		case !expectEntry && !empty && tok.Kind == token.Comma:
			children = append(children, p.tokenNode(tok))
			expectEntry = true
		case expectEntry:
			p.errAt(diag.SynExpectKey, tok.Span, "expected a key in inline table, got "+describe(tok))
			children = append(children, p.tokenNode(tok))
			return p.tree.NewNode(syntax.InlineTable, children...)
		default:
			p.errAt(diag.SynExpectComma, tok.Span, "expected ',' or '}' in inline table, got "+describe(tok))
			children = append(children, p.tokenNode(tok))
			return p.tree.NewNode(syntax.InlineTable, children...)
		}
	}
}
