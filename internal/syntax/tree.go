package syntax

import (
	"fmt"
	"strings"
)

// NodeID addresses a node inside its Tree. IDs are stable: a node removed by
// Splice keeps its ID and may be inserted elsewhere later.
type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }

type node struct {
	kind     Kind
	text     string   // только для токенов
	children []NodeID // только для узлов
}

// Tree is an arena of nodes with a single Root.
type Tree struct {
	nodes *Arena[node]
	root  NodeID
}

// New creates a tree holding an empty Root node.
func New() *Tree {
	t := &Tree{nodes: NewArena[node](64)}
	t.root = t.alloc(node{kind: Root})
	return t
}

func (t *Tree) alloc(n node) NodeID {
	return NodeID(t.nodes.Allocate(n))
}

func (t *Tree) get(id NodeID) *node {
	n := t.nodes.Get(uint32(id))
	if n == nil {
		panic(fmt.Sprintf("syntax: invalid node id %d", id))
	}
	return n
}

func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of allocated nodes, detached ones included.
func (t *Tree) Len() int { return int(t.nodes.Len()) }

func (t *Tree) Kind(id NodeID) Kind { return t.get(id).kind }

// TokenText returns the text of a token; nodes have none.
func (t *Tree) TokenText(id NodeID) string { return t.get(id).text }

// Children returns the child list of a node. The slice must not be modified;
// use Splice instead.
func (t *Tree) Children(id NodeID) []NodeID { return t.get(id).children }

// Text is the lossless concatenation of all token texts under id.
func (t *Tree) Text(id NodeID) string {
	var sb strings.Builder
	t.writeText(&sb, id)
	return sb.String()
}

func (t *Tree) writeText(sb *strings.Builder, id NodeID) {
	n := t.get(id)
	if n.kind.IsToken() {
		sb.WriteString(n.text)
		return
	}
	for _, c := range n.children {
		t.writeText(sb, c)
	}
}

// NewToken allocates a detached token.
func (t *Tree) NewToken(kind Kind, text string) NodeID {
	if !kind.IsToken() {
		panic(fmt.Sprintf("syntax: %s is not a token kind", kind))
	}
	return t.alloc(node{kind: kind, text: text})
}

// NewNode allocates a detached node with the given children.
func (t *Tree) NewNode(kind Kind, children ...NodeID) NodeID {
	if kind.IsToken() || kind == Root {
		panic(fmt.Sprintf("syntax: %s is not a composite kind", kind))
	}
	return t.alloc(node{kind: kind, children: append([]NodeID(nil), children...)})
}

// NewNewline allocates a Newline token holding n line breaks.
func (t *Tree) NewNewline(n int) NodeID {
	return t.NewToken(Newline, strings.Repeat("\n", max(n, 1)))
}

// NewKey builds a dotted Key from raw segments (bare or already quoted).
func (t *Tree) NewKey(segments ...string) NodeID {
	children := make([]NodeID, 0, len(segments)*2)
	for i, seg := range segments {
		if i > 0 {
			children = append(children, t.NewToken(Dot, "."))
		}
		children = append(children, t.NewToken(segmentKind(seg), seg))
	}
	return t.NewNode(Key, children...)
}

func segmentKind(seg string) Kind {
	switch {
	case strings.HasPrefix(seg, `"`):
		return BasicString
	case strings.HasPrefix(seg, "'"):
		return LiteralString
	default:
		return BareKey
	}
}

// NewValue wraps a scalar token, Array or InlineTable into a Value node.
func (t *Tree) NewValue(inner NodeID) NodeID {
	return t.NewNode(Value, inner)
}

// NewEntry builds "key = value".
func (t *Tree) NewEntry(key, value NodeID) NodeID {
	return t.NewNode(Entry,
		key,
		t.NewToken(Whitespace, " "),
		t.NewToken(Eq, "="),
		t.NewToken(Whitespace, " "),
		value,
	)
}

// NewTableHeader builds "[name]" from raw key segments.
func (t *Tree) NewTableHeader(segments ...string) NodeID {
	return t.NewNode(TableHeader,
		t.NewToken(BracketStart, "["),
		t.NewKey(segments...),
		t.NewToken(BracketEnd, "]"),
	)
}

// Splice replaces the half-open child range [start,end) of parent with
// replacement. It is the only operation that changes tree structure.
func (t *Tree) Splice(parent NodeID, start, end int, replacement ...NodeID) {
	n := t.get(parent)
	if n.kind.IsToken() {
		panic(fmt.Sprintf("syntax: cannot splice into token %s", n.kind))
	}
	if start < 0 || end < start || end > len(n.children) {
		panic(fmt.Sprintf("syntax: splice range [%d,%d) out of bounds for %d children", start, end, len(n.children)))
	}
	out := make([]NodeID, 0, len(n.children)-(end-start)+len(replacement))
	out = append(out, n.children[:start]...)
	out = append(out, replacement...)
	out = append(out, n.children[end:]...)
	n.children = out
}

// SetChildren replaces every child of parent.
func (t *Tree) SetChildren(parent NodeID, children ...NodeID) {
	t.Splice(parent, 0, len(t.Children(parent)), children...)
}

// AppendChildren adds children at the end of parent.
func (t *Tree) AppendChildren(parent NodeID, children ...NodeID) {
	n := len(t.Children(parent))
	t.Splice(parent, n, n, children...)
}

// SetTokenText rewrites the text of a token in place.
func (t *Tree) SetTokenText(id NodeID, text string) {
	n := t.get(id)
	if !n.kind.IsToken() {
		panic(fmt.Sprintf("syntax: %s has no text", n.kind))
	}
	n.text = text
}
