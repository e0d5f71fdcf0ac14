package lexer

import (
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ' и '\t' коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - #... до \n -> TriviaComment
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch lx.cursor.Peek() {
		case ' ', '\t':
			for b := lx.cursor.Peek(); b == ' ' || b == '\t'; b = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
		case '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
		case '#':
			lx.scanComment(start)
		default:
			return
		}
	}
}

func (lx *Lexer) scanComment(start Mark) {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		b := lx.cursor.Peek()
		if isControl(b) && b != '\t' {
			at := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.errLex(diag.LexControlChar, lx.cursor.SpanFrom(at), "control character in comment")
			continue
		}
		lx.cursor.Bump()
	}
	lx.pushTrivia(token.TriviaComment, start)
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
