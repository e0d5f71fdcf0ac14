package tables

import (
	"cmp"
	"slices"
	"strings"

	"pyprojectfmt/internal/syntax"
)

// chunk - запись вместе с комментариями и пустыми строками перед ней и
// переводом строки после неё.
type chunk struct {
	key   string
	nodes []syntax.NodeID
}

// chunks splits table nodes at the newline that ends each entry or header.
// The header chunk has key "". Trivia after the last entry come back as tail.
func chunks(tree *syntax.Tree, nodes []syntax.NodeID) (out []chunk, tail []syntax.NodeID) {
	var cur []syntax.NodeID
	key := ""
	open := false // запись или заголовок ждут перевода строки
	for _, n := range nodes {
		kind := tree.Kind(n)
		if kind == syntax.Entry {
			if open {
				out = append(out, chunk{key: key, nodes: cur})
				cur = nil
			}
			key = tree.EntryName(n)
		}
		if kind == syntax.Entry || kind.IsHeader() {
			open = true
		}
		cur = append(cur, n)
		if open && kind == syntax.Newline {
			out = append(out, chunk{key: key, nodes: cur})
			cur, open = nil, false
		}
	}
	if open {
		out = append(out, chunk{key: key, nodes: cur})
		cur = nil
	}
	return out, cur
}

// matches: exact name or a dotted descendant of it.
func matches(key, name string) bool {
	return key == name || (strings.HasPrefix(key, name) && len(key) > len(name) && key[len(name)] == '.')
}

func sortKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, `"`, ""))
}

// ReorderEntries orders the entries of t: for every priority name the
// matching entries (exact or dotted descendants, alphabetised), then the
// rest in their original order. Comments and blank lines move with the
// entry below them.
func ReorderEntries(tree *syntax.Tree, t *Table, priority []string) {
	list, tail := chunks(tree, t.nodes)
	if len(list) == 0 {
		return
	}
	placed := make([]bool, len(list))
	ordered := make([]chunk, 0, len(list))

	// заголовок всегда первым
	for i, c := range list {
		if c.key == "" {
			ordered = append(ordered, c)
			placed[i] = true
		}
	}
	for _, name := range priority {
		if name == "" {
			continue
		}
		start := len(ordered)
		for i, c := range list {
			if !placed[i] && matches(c.key, name) {
				ordered = append(ordered, c)
				placed[i] = true
			}
		}
		slices.SortStableFunc(ordered[start:], func(a, b chunk) int {
			return cmp.Compare(sortKey(a.key), sortKey(b.key))
		})
	}
	for i, c := range list {
		if !placed[i] {
			ordered = append(ordered, c)
		}
	}

	nodes := make([]syntax.NodeID, 0, len(t.nodes)+1)
	for i, c := range ordered {
		nodes = append(nodes, c.nodes...)
		last := c.nodes[len(c.nodes)-1]
		if (i < len(ordered)-1 || len(tail) > 0) && !tree.IsNewline(last) {
			nodes = append(nodes, tree.NewNewline(1))
		}
	}
	t.nodes = append(nodes, tail...)
}

// PriorityKey maps a table name to its ordering key: "tool.x..." becomes
// "tool.x", any other name its first segment.
func PriorityKey(name string) string {
	parts := strings.SplitN(name, ".", 3)
	if parts[0] == "tool" && len(parts) >= 2 {
		return parts[0] + "." + parts[1]
	}
	return parts[0]
}

// tableOrder sorts the names of non-empty tables: known priority keys by
// their position (an exact name before its sub tables), unknown after all
// known ones, ties by the first position of the name in the file, empty
// buckets included.
func tableOrder(ix *Index, priority []string) []string {
	rank := make(map[string]int, len(priority))
	for i, name := range priority {
		if _, dup := rank[name]; !dup {
			rank[name] = i * 2
		}
	}
	type named struct {
		name string
		pos  int
		rank int
	}
	first := make(map[string]int)
	for pos, t := range ix.tables {
		if _, ok := first[t.name]; !ok {
			first[t.name] = pos
		}
	}
	var names []named
	seen := make(map[string]bool)
	for _, t := range ix.tables {
		if seen[t.name] || t.Empty() {
			continue
		}
		seen[t.name] = true
		pos := first[t.name]
		key := PriorityKey(t.name)
		r, ok := rank[key]
		switch {
		case !ok:
			r = len(priority) * 2
		case key != t.name:
			r++
		}
		names = append(names, named{name: t.name, pos: pos, rank: r})
	}
	slices.SortStableFunc(names, func(a, b named) int {
		if c := cmp.Compare(a.rank, b.rank); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.name
	}
	return out
}

// ReorderTables rewrites the root of the tree from the buckets of ix in
// priority order. Empty buckets are dropped; one blank line separates
// tables whose priority keys differ.
func ReorderTables(tree *syntax.Tree, ix *Index, priority []string) {
	order := tableOrder(ix, priority)
	var root []syntax.NodeID
	for i, name := range order {
		next := ""
		if i+1 < len(order) {
			next = order[i+1]
		}
		separate := PriorityKey(name) != PriorityKey(next)
		for _, t := range ix.byName[name] {
			if t.Empty() {
				continue
			}
			nodes := t.nodes
			last := nodes[len(nodes)-1]
			if name == "" && len(nodes) == 1 && tree.IsNewline(last) {
				continue
			}
			if separate {
				if tree.IsNewline(last) {
					nodes = nodes[:len(nodes)-1]
				}
				nodes = append(slices.Clip(nodes), tree.NewNewline(2))
			} else if !tree.IsNewline(last) {
				nodes = append(slices.Clip(nodes), tree.NewNewline(1))
			}
			root = append(root, nodes...)
		}
	}
	tree.SetChildren(tree.Root(), root...)
}
