package lexer

import (
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil - тогда ошибки игнорируем (но продолжаем лексить)
}

// errLex откладывает диагностику до момента, когда токен будет потреблён.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.pending = append(lx.pending, pendingDiag{code: code, span: sp, msg: msg})
}
