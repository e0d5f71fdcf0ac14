package format_test

import (
	"testing"

	"pyprojectfmt/internal/format"
	"pyprojectfmt/internal/parser"

	"github.com/google/go-cmp/cmp"
)

func pyprojectOptions(width int) format.Options {
	return format.Options{
		ColumnWidth:        width,
		IndentString:       "  ",
		ArrayTrailingComma: true,
		ArrayAutoExpand:    true,
		AllowedBlankLines:  1,
		TrailingNewline:    true,
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"empty", "", 80, "\n"},
		{"blank lines only", "\n\n\n", 80, "\n"},
		{
			"entries and spacing",
			"\n\n# head\na=1\nb   =   'x'   # note\n\n\n\n[ tool . ruff ]\nc.d=true\n",
			80,
			"# head\na = 1\nb = 'x' # note\n\n[tool.ruff]\nc.d = true\n",
		},
		{
			"single line array kept",
			"a = [\"x\",'y' , 1]\n",
			80,
			"a = [ \"x\", 'y', 1 ]\n",
		},
		{
			"too wide array expands",
			"requires = [\"c>=1.5\", \"d==2\"]\n",
			20,
			"requires = [\n  \"c>=1.5\",\n  \"d==2\",\n]\n",
		},
		{
			"multi line array stays multi line",
			"a = [\n\"x\"]\n",
			80,
			"a = [\n  \"x\",\n]\n",
		},
		{
			"comments in arrays",
			"a = [ # first\n  \"x\", # on x\n\n  # standalone\n  \"y\"\n  # dangling\n]\n",
			80,
			"a = [\n  # first\n  \"x\", # on x\n  # standalone\n  \"y\",\n  # dangling\n]\n",
		},
		{
			"nested arrays",
			"a = [[1, 2], [3]]\n",
			12,
			"a = [\n  [ 1, 2 ],\n  [ 3 ],\n]\n",
		},
		{
			"empty containers",
			"a = [ ]\nb = {   }\nc = [\n]\n",
			80,
			"a = []\nb = {}\nc = []\n",
		},
		{
			"inline table",
			"a = {x=1,y.z=[1,2]}\n",
			80,
			"a = { x = 1, y.z = [ 1, 2 ] }\n",
		},
		{
			"array of tables kept tight",
			"[[q]]\na = 1\n[[q]]  # empty\n[[q]]\na = 2\n",
			80,
			"[[q]]\na = 1\n[[q]] # empty\n[[q]]\na = 2\n",
		},
		{
			"multi line strings verbatim",
			"a = \"\"\"\n  keep\n\"\"\"\nb = ['''x\ny''']\n",
			80,
			"a = \"\"\"\n  keep\n\"\"\"\nb = [\n  '''x\ny''',\n]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := format.Print(tree, pyprojectOptions(tt.width))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Print mismatch (-want +got):\n%s", diff)
			}
			again, err := parser.Parse(got)
			if err != nil {
				t.Fatalf("reparse: %v", err)
			}
			if second := format.Print(again, pyprojectOptions(tt.width)); second != got {
				t.Fatalf("not idempotent:\n%s", cmp.Diff(got, second))
			}
		})
	}
}

func TestPrintOptions(t *testing.T) {
	tree, err := parser.Parse("a = [1, 2]\nb = {c = 1}\n\n\n\nd = 1\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	opt := format.DefaultOptions()
	opt.CompactArrays = true
	opt.CompactInlineTables = true
	opt.CompactEntries = true
	opt.AllowedBlankLines = 0
	opt.CRLF = true
	got := format.Print(tree, opt)
	want := "a=[1, 2]\r\nb={c=1}\r\nd=1\r\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintWideCharacters(t *testing.T) {
	tree, err := parser.Parse("a = [\"日本語\", \"x\"]\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// 21 columns but 24 bytes
	got := format.Print(tree, pyprojectOptions(22))
	if got != "a = [ \"日本語\", \"x\" ]\n" {
		t.Fatalf("display width must be measured in columns, got %q", got)
	}
}
