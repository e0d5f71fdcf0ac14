package syntax

import (
	"fmt"
	"strings"
)

// Dump renders the subtree as an indented kind listing, tokens with their text.
func (t *Tree) Dump(id NodeID) string {
	var sb strings.Builder
	t.dump(&sb, id, 0)
	return sb.String()
}

func (t *Tree) dump(sb *strings.Builder, id NodeID, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	kind := t.Kind(id)
	if kind.IsToken() {
		fmt.Fprintf(sb, "%s %q\n", kind, t.TokenText(id))
		return
	}
	sb.WriteString(kind.String())
	sb.WriteByte('\n')
	for _, c := range t.Children(id) {
		t.dump(sb, c, depth+1)
	}
}
