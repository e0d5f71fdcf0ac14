package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildAndText(t *testing.T) {
	tree := New()
	key := tree.NewKey("project", `"name"`)
	value := tree.NewValue(tree.NewToken(BasicString, `"demo"`))
	entry := tree.NewEntry(key, value)
	tree.AppendChildren(tree.Root(), tree.NewTableHeader("tool", "ruff"), tree.NewNewline(1), entry, tree.NewNewline(1))

	if got, want := tree.Text(tree.Root()), "[tool.ruff]\nproject.\"name\" = \"demo\"\n"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	if got := tree.EntryName(entry); got != `project."name"` {
		t.Fatalf("EntryName() = %q", got)
	}
	if got := tree.HeaderName(tree.Children(tree.Root())[0]); got != "tool.ruff" {
		t.Fatalf("HeaderName() = %q", got)
	}
	if tree.Inner(value) == NoNodeID || tree.Kind(tree.Inner(value)) != BasicString {
		t.Fatalf("Inner() must return the string token")
	}
}

func TestSplice(t *testing.T) {
	tree := New()
	a := tree.NewToken(BareKey, "a")
	b := tree.NewToken(BareKey, "b")
	c := tree.NewToken(BareKey, "c")
	d := tree.NewToken(BareKey, "d")
	root := tree.Root()
	tree.AppendChildren(root, a, b, c)

	tree.Splice(root, 1, 2, d, d)
	if diff := cmp.Diff([]NodeID{a, d, d, c}, tree.Children(root)); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	tree.Splice(root, 0, 4)
	if len(tree.Children(root)) != 0 {
		t.Fatalf("expected empty root")
	}
	tree.SetChildren(root, c, b)
	if tree.Text(root) != "cb" {
		t.Fatalf("unexpected text %q", tree.Text(root))
	}
	// removed nodes keep their identity
	if tree.TokenText(a) != "a" {
		t.Fatalf("detached node lost its text")
	}
}

func TestSplicePanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	tree := New()
	tree.Splice(tree.Root(), 0, 1)
}

func TestNewlineCount(t *testing.T) {
	tree := New()
	nl := tree.NewNewline(3)
	if tree.NewlineCount(nl) != 3 || !tree.IsNewline(nl) {
		t.Fatalf("unexpected newline token %q", tree.TokenText(nl))
	}
	if tree.NewlineCount(tree.NewToken(Comment, "# x")) != 0 {
		t.Fatalf("comment has no newlines")
	}
	if tree.TokenText(tree.NewNewline(0)) != "\n" {
		t.Fatalf("NewNewline must produce at least one line break")
	}
}

func TestDump(t *testing.T) {
	tree := New()
	tree.AppendChildren(tree.Root(), tree.NewEntry(tree.NewKey("a"), tree.NewValue(tree.NewToken(Integer, "1"))))
	want := "Root\n  Entry\n    Key\n      BareKey \"a\"\n    Whitespace \" \"\n    Eq \"=\"\n    Whitespace \" \"\n    Value\n      Integer \"1\"\n"
	if got := tree.Dump(tree.Root()); got != want {
		t.Fatalf("Dump mismatch:\n%s", cmp.Diff(want, got))
	}
}
