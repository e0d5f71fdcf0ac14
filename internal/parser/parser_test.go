package parser

import (
	"errors"
	"strings"
	"testing"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/syntax"
)

func TestRoundTripLossless(t *testing.T) {
	inputs := []string{
		"",
		"\n\n",
		"# only a comment",
		"a = 1\n",
		"a=1",
		"[build-system]\nrequires = [\"hatchling\"]\nbuild-backend = \"hatchling.build\"\n",
		"[project]\nname = 'x'  # trailing\n\n\n[tool.ruff]\nline-length = 120\n",
		"[[tool.mypy.overrides]]\nmodule = [ \"a\" , 'b', ]\n[[ tool.mypy.overrides ]]\n",
		"a = [\n  # leading\n  \"x\", # same line\n\n  \"y\"\n  # dangling\n]\n",
		"t = { a = 1, b.c = \"d\" , e = [1,2] }\n",
		"t = {}\nu = []\n",
		"s = \"\"\"\nmulti\n  line\\\n  joined\"\"\"\nl = '''raw ''\n'''\n",
		"d1 = 1979-05-27T07:32:00Z\nd2 = 1979-05-27 07:32:00\nf = -inf\n",
		"\"quoted key\".'lit' . bare = true\n",
		"[ a . \"b\" ]  # header comment\nx = 0x1F\n",
	}
	for _, in := range inputs {
		tree, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		if got := tree.Text(tree.Root()); got != in {
			t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, in)
		}
	}
}

func TestTreeShape(t *testing.T) {
	tree, err := Parse("[tool.ruff]\nlint.select = [\"E\", # pycodestyle\n]\n[[x]]\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root := tree.Children(tree.Root())
	var kinds []syntax.Kind
	for _, c := range root {
		kinds = append(kinds, tree.Kind(c))
	}
	want := []syntax.Kind{syntax.TableHeader, syntax.Newline, syntax.Entry, syntax.Newline, syntax.TableArrayHeader, syntax.Newline}
	if len(kinds) != len(want) {
		t.Fatalf("root kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("root kinds = %v, want %v", kinds, want)
		}
	}
	if got := tree.HeaderName(root[0]); got != "tool.ruff" {
		t.Fatalf("header name %q", got)
	}
	if got := tree.EntryName(root[2]); got != "lint.select" {
		t.Fatalf("entry name %q", got)
	}
	if got := tree.HeaderName(root[4]); got != "x" {
		t.Fatalf("array header name %q", got)
	}
	array := tree.Inner(tree.EntryValue(root[2]))
	if tree.Kind(array) != syntax.Array {
		t.Fatalf("expected array, got %s", tree.Kind(array))
	}
	if n := len(tree.ArrayValues(array)); n != 1 {
		t.Fatalf("expected 1 value, got %d", n)
	}
	if tree.FirstChild(array, syntax.Comment) == syntax.NoNodeID {
		t.Fatalf("comment must live inside the array:\n%s", tree.Dump(array))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"a = ", diag.SynExpectValue},
		{"a 1", diag.SynExpectEquals},
		{"a = 1 b = 2", diag.SynExpectNewline},
		{"[a\n", diag.SynUnclosedBracket},
		{"[[a]\n", diag.SynBadTableArrayClose},
		{"a = [1 2]", diag.SynExpectComma},
		{"a = [1,", diag.SynUnclosedBracket},
		{"a = {b = 1,\n}", diag.SynNewlineInInline},
		{"a = {b = 1,}", diag.SynExpectKey},
		{"a = {b = 1", diag.SynUnclosedBrace},
		{"= 1", diag.SynUnexpectedToken},
		{"a = 01", diag.LexBadNumber},
		{"a.= 1", diag.SynExpectKey},
		{"a = \"open\n", diag.LexUnterminatedString},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := ParseFile(source.Virtual("pyproject.toml", tt.input), Options{})
			if !res.Bag.HasErrors() {
				t.Fatalf("expected errors for %q", tt.input)
			}
			found := false
			for _, d := range res.Bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %s among %+v", tt.code.ID(), res.Bag.Items())
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("[project]\nname = \n")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if !strings.Contains(err.Error(), "pyproject.toml:2:") {
		t.Fatalf("error must carry a position: %v", err)
	}
}

func TestRecoveryCollectsSeveralErrors(t *testing.T) {
	res := ParseFile(source.Virtual("pyproject.toml", "a = \nb = [1 2]\nc = 3\n"), Options{})
	if res.Bag.Len() < 2 {
		t.Fatalf("expected errors on two lines, got %+v", res.Bag.Items())
	}
}
