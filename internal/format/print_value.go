package format

import (
	"strings"

	"pyprojectfmt/internal/syntax"

	"github.com/mattn/go-runewidth"
)

func (p *printer) printValue(value syntax.NodeID) {
	inner := p.tree.Inner(value)
	if inner == syntax.NoNodeID {
		return
	}
	switch p.tree.Kind(inner) {
	case syntax.Array:
		p.printArray(inner)
	case syntax.InlineTable:
		p.writer.WriteString(p.inlineTable(inner))
	default:
		p.writer.WriteString(p.tree.TokenText(inner))
	}
}

// arrayItem - элемент массива вместе с комментариями вокруг него.
type arrayItem struct {
	value    syntax.NodeID // NoNodeID для отдельной строки-комментария
	comment  string        // комментарий на той же строке
	standing string        // самостоятельный комментарий
}

// arrayItems раскладывает детей массива на элементы и комментарии.
// Комментарий, стоящий на строке элемента, остаётся на этой строке.
func (p *printer) arrayItems(array syntax.NodeID) ([]arrayItem, bool) {
	var items []arrayItem
	hasNewline := false
	sameLine := false // последний элемент ещё на текущей строке
	for _, c := range p.tree.Children(array) {
		switch p.tree.Kind(c) {
		case syntax.Value:
			items = append(items, arrayItem{value: c})
			sameLine = true
		case syntax.Newline:
			hasNewline = true
			sameLine = false
		case syntax.Comment:
			text := p.tree.TokenText(c)
			last := len(items) - 1
			if sameLine && last >= 0 && items[last].value != syntax.NoNodeID && items[last].comment == "" {
				items[last].comment = text
			} else {
				items = append(items, arrayItem{standing: text})
			}
		}
	}
	return items, hasNewline
}

func (p *printer) printArray(array syntax.NodeID) {
	w := p.writer
	items, hasNewline := p.arrayItems(array)
	values, hasComment := 0, false
	for _, it := range items {
		if it.value != syntax.NoNodeID {
			values++
		}
		if it.comment != "" || it.standing != "" {
			hasComment = true
		}
	}
	if values == 0 && !hasComment {
		w.WriteString("[]")
		return
	}

	single, ok := p.inlineArray(array)
	multiline := hasComment || !ok ||
		(hasNewline && !p.opt.ArrayAutoCollapse) ||
		(p.opt.ArrayAutoExpand && w.Column()+runewidth.StringWidth(single) > p.opt.ColumnWidth)
	if !multiline {
		w.WriteString(single)
		return
	}

	w.WriteString("[")
	w.IndentPush()
	seen := 0
	for _, it := range items {
		w.Newline()
		if it.value == syntax.NoNodeID {
			w.WriteString(it.standing)
			continue
		}
		seen++
		p.printValue(it.value)
		if seen < values || p.opt.ArrayTrailingComma {
			w.WriteString(",")
		}
		if it.comment != "" {
			w.Space()
			w.WriteString(it.comment)
		}
	}
	w.IndentPop()
	w.Newline()
	w.WriteString("]")
}

// inlineArray renders the one-line form; ok is false when an element cannot
// be written on one line (comments, multi-line strings).
func (p *printer) inlineArray(array syntax.NodeID) (string, bool) {
	values := p.tree.ArrayValues(array)
	if len(values) == 0 {
		return "[]", true
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := p.inlineValue(v)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	if p.tree.FirstChild(array, syntax.Comment) != syntax.NoNodeID {
		return "", false
	}
	if p.opt.CompactArrays {
		return "[" + strings.Join(parts, ", ") + "]", true
	}
	return "[ " + strings.Join(parts, ", ") + " ]", true
}

func (p *printer) inlineValue(value syntax.NodeID) (string, bool) {
	inner := p.tree.Inner(value)
	if inner == syntax.NoNodeID {
		return "", true
	}
	switch p.tree.Kind(inner) {
	case syntax.Array:
		return p.inlineArray(inner)
	case syntax.InlineTable:
		s := p.inlineTable(inner)
		return s, !strings.Contains(s, "\n")
	default:
		text := p.tree.TokenText(inner)
		return text, !strings.Contains(text, "\n")
	}
}

// inlineTable всегда однострочная; вложенные массивы тоже печатаются в строку.
func (p *printer) inlineTable(table syntax.NodeID) string {
	var parts []string
	for _, c := range p.tree.Children(table) {
		if p.tree.Kind(c) != syntax.Entry {
			continue
		}
		var sb strings.Builder
		sb.WriteString(p.tree.EntryName(c))
		if p.opt.CompactEntries {
			sb.WriteString("=")
		} else {
			sb.WriteString(" = ")
		}
		if v := p.tree.EntryValue(c); v != syntax.NoNodeID {
			s, ok := p.inlineValue(v)
			if !ok {
				s = p.tree.Text(p.tree.Inner(v))
			}
			sb.WriteString(s)
		}
		parts = append(parts, sb.String())
	}
	if len(parts) == 0 {
		return "{}"
	}
	if p.opt.CompactInlineTables {
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
