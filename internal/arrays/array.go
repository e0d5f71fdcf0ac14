// Package arrays normalizes array values of the syntax tree: string
// elements are rewritten, sorted, filtered or appended while comments and
// blank lines stay attached to the element they describe.
package arrays

import (
	"slices"

	"pyprojectfmt/internal/syntax"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// group - элемент массива вместе с прилегающими trivia: комментарии
// строкой выше, сам Value, запятая, комментарий на той же строке и
// завершающий перевод строки.
type group struct {
	nodes []syntax.NodeID
	value syntax.NodeID
	text  string
}

type layout struct {
	array         syntax.NodeID
	groups        []group
	tail          []syntax.NodeID // trivia after the last element
	trailingComma bool
	multiline     bool
}

// array returns the Array inside a Value node.
func array(tree *syntax.Tree, value syntax.NodeID) (syntax.NodeID, bool) {
	if value == syntax.NoNodeID {
		return syntax.NoNodeID, false
	}
	inner := value
	if tree.Kind(value) == syntax.Value {
		inner = tree.Inner(value)
	}
	if inner == syntax.NoNodeID || tree.Kind(inner) != syntax.Array {
		return syntax.NoNodeID, false
	}
	return inner, true
}

// split breaks an array into element groups. ok is false when an element
// is not a string; the tree is not modified in that case.
func split(tree *syntax.Tree, arr syntax.NodeID) (layout, bool) {
	l := layout{array: arr}
	children := tree.Children(arr)
	for _, c := range children {
		switch tree.Kind(c) {
		case syntax.Comma:
			l.trailingComma = true
		case syntax.Value:
			l.trailingComma = false
		case syntax.Newline:
			l.multiline = true
		}
	}

	var cur []syntax.NodeID
	var curValue syntax.NodeID
	var curText string
	hasValue := false
	afterOpen := false
	flush := func() {
		l.groups = append(l.groups, group{nodes: cur, value: curValue, text: curText})
		cur = nil
		hasValue = false
	}
	for _, c := range children {
		kind := tree.Kind(c)
		if afterOpen {
			if kind == syntax.Newline || kind == syntax.Whitespace {
				continue
			}
			afterOpen = false
		}
		switch kind {
		case syntax.BracketStart:
			afterOpen = true
		case syntax.BracketEnd:
			if hasValue {
				flush()
			}
		case syntax.Value:
			text, ok := StringValue(tree, c)
			if !ok {
				return layout{}, false
			}
			if hasValue {
				// два элемента на одной строке: разносим по строкам
				cur = append(cur, tree.NewNewline(1))
				flush()
			}
			cur = append(cur, c, tree.NewToken(syntax.Comma, ","))
			curValue, curText, hasValue = c, text, true
		case syntax.Newline:
			cur = append(cur, c)
			if hasValue {
				flush()
			}
		case syntax.Comma:
		default:
			cur = append(cur, c)
		}
	}
	l.tail = cur
	return l, true
}

// join writes the groups back. A multi-line array becomes "[", newline,
// one group per line, tail, "]"; a single-line array stays on one line so
// that the printer keeps its shape.
func (l layout) join(tree *syntax.Tree) {
	out := []syntax.NodeID{tree.NewToken(syntax.BracketStart, "[")}
	if l.multiline {
		out = append(out, tree.NewNewline(1))
	}
	for _, g := range l.groups {
		for _, n := range g.nodes {
			if l.multiline || tree.Kind(n) != syntax.Newline {
				out = append(out, n)
			}
		}
		if n := len(g.nodes); l.multiline && (n == 0 || tree.Kind(g.nodes[n-1]) != syntax.Newline) {
			out = append(out, tree.NewNewline(1))
		}
	}
	out = append(out, l.tail...)
	out = append(out, tree.NewToken(syntax.BracketEnd, "]"))
	if !l.trailingComma {
		for i := len(out) - 1; i >= 0; i-- {
			if tree.Kind(out[i]) == syntax.Comma {
				out = slices.Delete(out, i, i+1)
				break
			}
		}
	}
	tree.SetChildren(l.array, out...)
}

// Strings returns the decoded string elements of an array value; ok is
// false when value is not an array or holds a non-string element.
func Strings(tree *syntax.Tree, value syntax.NodeID) ([]string, bool) {
	arr, ok := array(tree, value)
	if !ok {
		return nil, false
	}
	var out []string
	for _, v := range tree.ArrayValues(arr) {
		s, ok := StringValue(tree, v)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Transform rewrites every string element through fn; other elements are
// left untouched and the order does not change.
func Transform(tree *syntax.Tree, value syntax.NodeID, fn func(string) (string, error)) error {
	arr, ok := array(tree, value)
	if !ok {
		return nil
	}
	for _, v := range tree.ArrayValues(arr) {
		if err := UpdateString(tree, v, fn); err != nil {
			return err
		}
	}
	return nil
}

// NewCollator returns the comparison used by Sort: natural numbers,
// case-insensitive, root locale.
func NewCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
}

// Sort orders the elements of a string array by key(element). It returns
// false and leaves the array unchanged when an element is not a string.
// Equal keys keep their relative order.
func Sort(tree *syntax.Tree, value syntax.NodeID, key func(string) string) bool {
	arr, ok := array(tree, value)
	if !ok {
		return true
	}
	l, ok := split(tree, arr)
	if !ok {
		return false
	}
	keys := make(map[syntax.NodeID]string, len(l.groups))
	for _, g := range l.groups {
		keys[g.value] = key(g.text)
	}
	col := NewCollator()
	slices.SortStableFunc(l.groups, func(a, b group) int {
		return col.CompareString(keys[a.value], keys[b.value])
	})
	l.join(tree)
	return true
}

// Retain drops every element (with its comments) for which keep is false.
// Arrays with non-string elements are left unchanged.
func Retain(tree *syntax.Tree, value syntax.NodeID, keep func(string) bool) bool {
	arr, ok := array(tree, value)
	if !ok {
		return true
	}
	l, ok := split(tree, arr)
	if !ok {
		return false
	}
	l.groups = slices.DeleteFunc(l.groups, func(g group) bool { return !keep(g.text) })
	l.join(tree)
	return true
}

// Append adds string elements after the last existing element.
func Append(tree *syntax.Tree, value syntax.NodeID, values ...string) bool {
	arr, ok := array(tree, value)
	if !ok {
		return false
	}
	l, ok := split(tree, arr)
	if !ok {
		return false
	}
	if len(l.groups) == 0 {
		l.trailingComma = true
	}
	for _, s := range values {
		v := NewString(tree, s)
		l.groups = append(l.groups, group{
			nodes: []syntax.NodeID{v, tree.NewToken(syntax.Comma, ","), tree.NewNewline(1)},
			value: v,
			text:  s,
		})
	}
	l.join(tree)
	return true
}

// NewMultiline builds a Value holding an array with one element per line.
func NewMultiline(tree *syntax.Tree, values ...string) syntax.NodeID {
	children := []syntax.NodeID{tree.NewToken(syntax.BracketStart, "["), tree.NewNewline(1)}
	for _, s := range values {
		children = append(children, NewString(tree, s), tree.NewToken(syntax.Comma, ","), tree.NewNewline(1))
	}
	children = append(children, tree.NewToken(syntax.BracketEnd, "]"))
	return tree.NewValue(tree.NewNode(syntax.Array, children...))
}
