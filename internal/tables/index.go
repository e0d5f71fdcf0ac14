// Package tables groups the root-level nodes of a document into named
// table buckets and reorders entries and tables by priority lists.
package tables

import (
	"slices"
	"strings"

	"pyprojectfmt/internal/syntax"
)

// Table is one bucket of root-level nodes: a header (except for the root
// table "") followed by its entries and trivia.
type Table struct {
	name  string
	array bool
	nodes []syntax.NodeID
}

func (t *Table) Name() string { return t.name }

// IsArray reports whether the bucket was opened by a [[name]] header.
func (t *Table) IsArray() bool { return t.array }

// Nodes returns the bucket content. The slice must not be modified.
func (t *Table) Nodes() []syntax.NodeID { return t.nodes }

func (t *Table) Empty() bool { return len(t.nodes) == 0 }

// SetNodes replaces the bucket content.
func (t *Table) SetNodes(nodes []syntax.NodeID) { t.nodes = nodes }

// Index maps canonical table names to their buckets.
type Index struct {
	tree   *syntax.Tree
	byName map[string][]*Table
	tables []*Table // порядок создания = позиция в файле
}

// Build scans the root children once. A header closes the current run;
// duplicate plain tables are merged into the first occurrence, every
// [[name]] header opens a new bucket.
func Build(tree *syntax.Tree) *Index {
	ix := &Index{tree: tree, byName: make(map[string][]*Table)}
	var run []syntax.NodeID
	runKind := syntax.TableHeader
	for _, c := range tree.Children(tree.Root()) {
		if kind := tree.Kind(c); kind.IsHeader() {
			ix.close(runKind, run)
			run = nil
			runKind = kind
		}
		run = append(run, c)
	}
	ix.close(runKind, run)
	return ix
}

func (ix *Index) close(kind syntax.Kind, run []syntax.NodeID) {
	if len(run) == 0 {
		return
	}
	name := ""
	if ix.tree.Kind(run[0]).IsHeader() {
		name = ix.tree.HeaderName(run[0])
	}
	existing := ix.byName[name]
	if kind == syntax.TableArrayHeader || len(existing) == 0 {
		ix.add(&Table{name: name, array: kind == syntax.TableArrayHeader, nodes: run})
		return
	}

	// повторная [name]: дописываем в первую таблицу с этим именем
	first := existing[0]
	end := len(run)
	for end > 0 && ix.tree.IsNewline(run[end-1]) {
		end--
	}
	start := 0
	for start < end && (ix.tree.IsNewline(run[start]) || ix.tree.Kind(run[start]) == syntax.TableHeader) {
		start++
	}
	ix.ensureNewline(first)
	first.nodes = append(first.nodes, run[start:end]...)
}

func (ix *Index) add(t *Table) {
	ix.tables = append(ix.tables, t)
	ix.byName[t.name] = append(ix.byName[t.name], t)
}

// ensureNewline terminates the last line of t.
func (ix *Index) ensureNewline(t *Table) {
	if n := len(t.nodes); n > 0 && !ix.tree.IsNewline(t.nodes[n-1]) {
		t.nodes = append(t.nodes, ix.tree.NewNewline(1))
	}
}

// Tree returns the tree the index was built from.
func (ix *Index) Tree() *syntax.Tree { return ix.tree }

// Lookup returns every bucket named name, nil when there is none.
func (ix *Index) Lookup(name string) []*Table { return ix.byName[name] }

// Tables returns all buckets in creation order.
func (ix *Index) Tables() []*Table { return ix.tables }

// Collapse folds every [parent.sub] table into [parent] as dotted entries
// sub.key = value. A missing parent is created first. Nothing happens when
// the parent occurs more than once; a sub table that occurs more than once
// or is an array of tables is skipped.
func (ix *Index) Collapse(parent string) {
	prefix := parent + "."
	var subs []*Table
	seen := make(map[string]bool)
	for _, t := range ix.tables {
		if strings.HasPrefix(t.name, prefix) && !seen[t.name] {
			seen[t.name] = true
			subs = append(subs, t)
		}
	}
	if len(subs) == 0 {
		return
	}
	if len(ix.byName[parent]) == 0 {
		ix.add(&Table{name: parent, nodes: []syntax.NodeID{
			ix.tree.NewTableHeader(splitName(parent)...),
			ix.tree.NewNewline(1),
		}})
	}
	mains := ix.byName[parent]
	if len(mains) != 1 {
		return
	}
	main := mains[0]
	depth := len(ix.tree.KeySegments(ix.tree.HeaderKey(main.nodes[0])))
	for _, sub := range subs {
		if len(ix.byName[sub.name]) != 1 || sub.array || sub.Empty() {
			continue
		}
		header := sub.nodes[0]
		rel := ix.tree.KeySegments(ix.tree.HeaderKey(header))[depth:]

		// заголовок выбрасываем, комментарий с его строки переносим
		// на отдельную строку перед записями
		var moved []syntax.NodeID
		rest := sub.nodes[1:]
		for i, n := range rest {
			if ix.tree.IsNewline(n) {
				rest = rest[i+1:]
				break
			}
			if ix.tree.Kind(n) == syntax.Comment {
				moved = append(moved, n, ix.tree.NewNewline(1))
			}
			if i == len(rest)-1 {
				rest = nil
			}
		}
		moved = append(moved, rest...)
		if len(moved) > 0 {
			ix.ensureNewline(main)
		}
		for _, n := range moved {
			if ix.tree.Kind(n) == syntax.Entry {
				ix.rekey(n, rel)
			}
			main.nodes = append(main.nodes, n)
		}
		sub.nodes = nil
	}
}

// rekey prefixes the key of entry with the given segments.
func (ix *Index) rekey(entry syntax.NodeID, prefix []string) {
	for i, c := range ix.tree.Children(entry) {
		if ix.tree.Kind(c) == syntax.Key {
			segs := append(slices.Clone(prefix), ix.tree.KeySegments(c)...)
			ix.tree.Splice(entry, i, i+1, ix.tree.NewKey(segs...))
			return
		}
	}
}

// splitName splits a canonical dotted name, keeping quoted segments whole.
func splitName(name string) []string {
	var out []string
	var quote byte
	start := 0
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '.':
			out = append(out, name[start:i])
			start = i + 1
		}
	}
	return append(out, name[start:])
}

// Entry is a root-level entry of a table.
type Entry struct {
	Key   string // canonical dotted key
	Node  syntax.NodeID
	Value syntax.NodeID
}

// Entries lists the entries of t in order.
func (t *Table) Entries(tree *syntax.Tree) []Entry {
	var out []Entry
	for _, n := range t.nodes {
		if tree.Kind(n) == syntax.Entry {
			out = append(out, Entry{Key: tree.EntryName(n), Node: n, Value: tree.EntryValue(n)})
		}
	}
	return out
}

// Lookup returns the entry with the given key.
func (t *Table) Lookup(tree *syntax.Tree, key string) (Entry, bool) {
	for _, e := range t.Entries(tree) {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// AppendEntry adds entry on its own line before a trailing blank-line run.
func (t *Table) AppendEntry(tree *syntax.Tree, entry syntax.NodeID) {
	n := len(t.nodes)
	if n > 0 && tree.IsNewline(t.nodes[n-1]) {
		trailing := t.nodes[n-1]
		t.nodes = append(t.nodes[:n-1:n-1], tree.NewNewline(1), entry, trailing)
		return
	}
	if n > 0 {
		t.nodes = append(t.nodes, tree.NewNewline(1))
	}
	t.nodes = append(t.nodes, entry, tree.NewNewline(1))
}
