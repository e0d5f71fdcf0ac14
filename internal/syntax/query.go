package syntax

import (
	"strings"
)

// FirstChild returns the first direct child of the given kind.
func (t *Tree) FirstChild(id NodeID, kind Kind) NodeID {
	for _, c := range t.Children(id) {
		if t.Kind(c) == kind {
			return c
		}
	}
	return NoNodeID
}

// EntryKey returns the Key of an Entry.
func (t *Tree) EntryKey(entry NodeID) NodeID { return t.FirstChild(entry, Key) }

// EntryValue returns the Value of an Entry.
func (t *Tree) EntryValue(entry NodeID) NodeID { return t.FirstChild(entry, Value) }

// HeaderKey returns the Key of a table or array-of-tables header.
func (t *Tree) HeaderKey(header NodeID) NodeID { return t.FirstChild(header, Key) }

// Inner returns the payload of a Value: scalar token, Array or InlineTable.
func (t *Tree) Inner(value NodeID) NodeID {
	for _, c := range t.Children(value) {
		if !t.Kind(c).IsTrivia() {
			return c
		}
	}
	return NoNodeID
}

// KeySegments returns the raw text of each key segment, quotes included.
func (t *Tree) KeySegments(key NodeID) []string {
	var out []string
	for _, c := range t.Children(key) {
		switch t.Kind(c) {
		case BareKey, BasicString, LiteralString:
			out = append(out, t.TokenText(c))
		}
	}
	return out
}

// KeyName returns the canonical dotted name of a key: segments joined with
// "." and whitespace removed; quotes are kept.
func (t *Tree) KeyName(key NodeID) string {
	return strings.Join(t.KeySegments(key), ".")
}

// HeaderName returns the canonical name of a table header.
func (t *Tree) HeaderName(header NodeID) string {
	return t.KeyName(t.HeaderKey(header))
}

// EntryName returns the canonical key name of an entry.
func (t *Tree) EntryName(entry NodeID) string {
	return t.KeyName(t.EntryKey(entry))
}

// IsNewline reports whether id is a Newline token.
func (t *Tree) IsNewline(id NodeID) bool { return t.Kind(id) == Newline }

// NewlineCount returns the number of line breaks a Newline token holds.
func (t *Tree) NewlineCount(id NodeID) int {
	if t.Kind(id) != Newline {
		return 0
	}
	return strings.Count(t.TokenText(id), "\n")
}

// ArrayValues returns the Value children of an Array.
func (t *Tree) ArrayValues(array NodeID) []NodeID {
	var out []NodeID
	for _, c := range t.Children(array) {
		if t.Kind(c) == Value {
			out = append(out, c)
		}
	}
	return out
}
