// Package testkit holds structural checks shared by parser, formatter and
// fuzz tests.
package testkit

import (
	"fmt"

	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/syntax"
)

// CheckTreeInvariants runs a minimal set of invariants on an accepted tree:
// 1) every node reachable from Root is reached exactly once
// 2) tokens carry non-empty text, composite nodes carry no text
// 3) an Entry has exactly one Key, one '=' and one Value
// 4) a Value wraps exactly one scalar token, Array or InlineTable
// 5) Root only holds headers, entries and trivia
func CheckTreeInvariants(tree *syntax.Tree) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	seen := make(map[syntax.NodeID]bool)
	var walk func(id syntax.NodeID) error
	walk = func(id syntax.NodeID) error {
		if seen[id] {
			return fmt.Errorf("node %d (%s) reachable twice", id, tree.Kind(id))
		}
		seen[id] = true

		kind := tree.Kind(id)
		if kind.IsToken() {
			if tree.TokenText(id) == "" {
				return fmt.Errorf("token %d (%s) has empty text", id, kind)
			}
			if len(tree.Children(id)) != 0 {
				return fmt.Errorf("token %d (%s) has children", id, kind)
			}
			return nil
		}
		if err := checkShape(tree, id); err != nil {
			return err
		}
		for _, c := range tree.Children(id) {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(tree.Root())
}

func checkShape(tree *syntax.Tree, id syntax.NodeID) error {
	kind := tree.Kind(id)
	counts := make(map[syntax.Kind]int)
	payload := 0
	for _, c := range tree.Children(id) {
		ck := tree.Kind(c)
		counts[ck]++
		if !isTrivia(ck) {
			payload++
		}
	}

	switch kind {
	case syntax.Root:
		for ck := range counts {
			if !isTrivia(ck) && ck != syntax.Entry && ck != syntax.TableHeader && ck != syntax.TableArrayHeader {
				return fmt.Errorf("root holds %s", ck)
			}
		}
	case syntax.Entry:
		if counts[syntax.Key] != 1 || counts[syntax.Eq] != 1 || counts[syntax.Value] != 1 {
			return fmt.Errorf("entry %d: want one key, '=' and value, got %v", id, counts)
		}
	case syntax.Value:
		if payload != 1 {
			return fmt.Errorf("value %d wraps %d items", id, payload)
		}
	case syntax.TableHeader, syntax.TableArrayHeader:
		if counts[syntax.Key] != 1 {
			return fmt.Errorf("%s %d: want one key, got %d", kind, id, counts[syntax.Key])
		}
	}
	return nil
}

func isTrivia(k syntax.Kind) bool {
	return k == syntax.Whitespace || k == syntax.Newline || k == syntax.Comment
}

// CheckLossless verifies that the tree prints back the normalized file content.
func CheckLossless(tree *syntax.Tree, file *source.File) error {
	got := tree.Text(tree.Root())
	if got == string(file.Content) {
		return nil
	}
	// первая расходящаяся позиция для читаемого сообщения
	want := string(file.Content)
	i := 0
	for i < len(got) && i < len(want) && got[i] == want[i] {
		i++
	}
	return fmt.Errorf("tree text diverges from source at byte %d: got %q, want %q",
		i, snippet(got, i), snippet(want, i))
}

func snippet(s string, at int) string {
	end := min(at+20, len(s))
	return s[at:end]
}
