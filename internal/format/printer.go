package format

import (
	"pyprojectfmt/internal/syntax"
)

type printer struct {
	tree   *syntax.Tree
	writer *Writer
	opt    Options
}

// Print renders the whole tree. Token texts (values, comments, quoted keys)
// are emitted verbatim; all whitespace is recomputed.
func Print(tree *syntax.Tree, opt Options) string {
	opt = opt.withDefaults()
	pr := printer{
		tree:   tree,
		writer: NewWriter(opt, tree.Len()*8),
		opt:    opt,
	}
	pr.printRoot()
	return pr.writer.Finish()
}

// printRoot выводит записи, заголовки и комментарии верхнего уровня.
// Каждая запись и заголовок начинают новую строку; пустые строки
// ограничены AllowedBlankLines.
func (p *printer) printRoot() {
	w := p.writer
	newlines := 0
	for _, c := range p.tree.Children(p.tree.Root()) {
		kind := p.tree.Kind(c)
		switch {
		case kind == syntax.Whitespace:
			continue
		case kind == syntax.Newline:
			newlines += p.tree.NewlineCount(c)
			continue
		case kind == syntax.Comment && newlines == 0 && !w.Empty():
			w.Space()
			w.WriteString(p.tree.TokenText(c))
			continue
		}

		blank := 0
		if newlines > 1 {
			blank = newlines - 1
		}
		if !w.Empty() {
			w.BlankLines(min(blank, p.opt.AllowedBlankLines))
		}
		newlines = 0

		switch kind {
		case syntax.Comment:
			w.WriteString(p.tree.TokenText(c))
		case syntax.TableHeader:
			w.WriteString("[" + p.tree.HeaderName(c) + "]")
		case syntax.TableArrayHeader:
			w.WriteString("[[" + p.tree.HeaderName(c) + "]]")
		case syntax.Entry:
			p.printEntry(c)
		default:
			// остатки после ошибок разбора печатаем как есть
			w.WriteString(p.tree.Text(c))
		}
	}
}

func (p *printer) printEntry(entry syntax.NodeID) {
	p.writer.WriteString(p.tree.EntryName(entry))
	if p.opt.CompactEntries {
		p.writer.WriteString("=")
	} else {
		p.writer.WriteString(" = ")
	}
	if value := p.tree.EntryValue(entry); value != syntax.NoNodeID {
		p.printValue(value)
	}
}
