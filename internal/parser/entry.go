package parser

import (
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/lexer"
	"pyprojectfmt/internal/syntax"
	"pyprojectfmt/internal/token"
)

// parseKey читает dotted key, первый сегмент уже съеден.
func (p *Parser) parseKey(first token.Token) syntax.NodeID {
	children := []syntax.NodeID{p.tokenNode(first)}
	for {
		dot := p.lx.Peek(lexer.ModeKey)
		if dot.Kind != token.Dot || dot.HasNewline() || hasComment(dot) {
			break
		}
		dot = p.advance(lexer.ModeKey, &children)
		children = append(children, p.tokenNode(dot))

		seg := p.advance(lexer.ModeKey, &children)
		if !seg.IsKeySegment() || seg.HasNewline() {
			p.errAt(diag.SynExpectKey, p.expectSpan(seg), "expected a key after '.', got "+describe(seg))
			break
		}
		children = append(children, p.tokenNode(seg))
	}
	return p.tree.NewNode(syntax.Key, children...)
}

// parseEntry: key = value. Trivia внутри записи могут быть только пробелами.
func (p *Parser) parseEntry(first token.Token) syntax.NodeID {
	children := []syntax.NodeID{p.parseKey(first)}

	eq := p.advance(lexer.ModeKey, &children)
	if eq.Kind != token.Eq || eq.HasNewline() || hasComment(eq) {
		p.errAt(diag.SynExpectEquals, p.expectSpan(eq), "expected '=' after key, got "+describe(eq))
		if eq.Kind != token.EOF {
			children = append(children, p.tokenNode(eq))
		}
		return p.tree.NewNode(syntax.Entry, children...)
	}
	children = append(children, p.tokenNode(eq))

	v := p.advance(lexer.ModeValue, &children)
	if v.HasNewline() || hasComment(v) || v.Kind == token.EOF {
		p.errAt(diag.SynExpectValue, p.expectSpan(v), "expected a value after '='")
		if v.Kind != token.EOF {
			children = append(children, p.tokenNode(v))
		}
		return p.tree.NewNode(syntax.Entry, children...)
	}
	children = append(children, p.parseValue(v))
	return p.tree.NewNode(syntax.Entry, children...)
}

// parseHeader: [a.b] или [[a.b]], открывающая скобка уже съедена.
func (p *Parser) parseHeader(open token.Token) syntax.NodeID {
	kind := syntax.TableHeader
	children := []syntax.NodeID{p.tokenNode(open)}
	if second := p.lx.Peek(lexer.ModeKey); second.Kind == token.BracketStart && len(second.Leading) == 0 {
		second = p.advance(lexer.ModeKey, &children)
		children = append(children, p.tokenNode(second))
		kind = syntax.TableArrayHeader
	}

	first := p.advance(lexer.ModeKey, &children)
	if !first.IsKeySegment() || first.HasNewline() || hasComment(first) {
		p.errAt(diag.SynExpectKey, p.expectSpan(first), "expected a table name, got "+describe(first))
		return p.tree.NewNode(kind, children...)
	}
	children = append(children, p.parseKey(first))

	closing := p.advance(lexer.ModeKey, &children)
	if closing.Kind != token.BracketEnd || closing.HasNewline() || hasComment(closing) {
		p.errAt(diag.SynUnclosedBracket, p.expectSpan(closing), "expected ']' to close the table header, got "+describe(closing))
		return p.tree.NewNode(kind, children...)
	}
	children = append(children, p.tokenNode(closing))

	if kind == syntax.TableArrayHeader {
		second := p.lx.Peek(lexer.ModeKey)
		if second.Kind != token.BracketEnd || len(second.Leading) != 0 {
			p.errAt(diag.SynBadTableArrayClose, p.expectSpan(second), "expected ']]' to close the array of tables header")
			return p.tree.NewNode(kind, children...)
		}
		second = p.advance(lexer.ModeKey, &children)
		children = append(children, p.tokenNode(second))
	}
	return p.tree.NewNode(kind, children...)
}
