package rules_test

import (
	"errors"
	"testing"

	"pyprojectfmt/internal/arrays"
	"pyprojectfmt/internal/format"
	"pyprojectfmt/internal/parser"
	"pyprojectfmt/internal/pep508"
	"pyprojectfmt/internal/rules"
	"pyprojectfmt/internal/syntax"
	"pyprojectfmt/internal/tables"

	"github.com/google/go-cmp/cmp"
)

type setup struct {
	keep  bool
	width int
}

func apply(t *testing.T, input string, rs rules.RuleSet, keep bool) (*syntax.Tree, *tables.Index, error) {
	t.Helper()
	tree, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ix := tables.Build(tree)
	ctx := &rules.Context{
		Tree:            tree,
		KeepFullVersion: keep,
		MinPython:       rules.Python{Major: 3, Minor: 7},
		MaxPython:       rules.Python{Major: 3, Minor: 12},
	}
	return tree, ix, rules.Apply(ctx, ix, rs)
}

// evaluate applies rs and prints all buckets in creation order.
func evaluate(t *testing.T, input string, rs rules.RuleSet, s setup) string {
	t.Helper()
	tree, ix, err := apply(t, input, rs, s.keep)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	var root []syntax.NodeID
	for _, tbl := range ix.Tables() {
		root = append(root, tbl.Nodes()...)
	}
	tree.SetChildren(tree.Root(), root...)
	return format.Print(tree, format.Options{
		ColumnWidth:        s.width,
		IndentString:       "  ",
		ArrayTrailingComma: true,
		ArrayAutoExpand:    true,
		AllowedBlankLines:  1,
		TrailingNewline:    true,
	})
}

func check(t *testing.T, want, got string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSystem(t *testing.T) {
	tests := []struct {
		name  string
		input string
		keep  bool
		want  string
	}{
		{"no build system", "", false, "\n"},
		{
			"requires stripped",
			"[build-system]\nrequires=[\"a>=1.0.0\", \"b.c>=1.5.0\"]\n",
			false,
			"[build-system]\nrequires = [\n  \"a>=1\",\n  \"b-c>=1.5\",\n]\n",
		},
		{
			"requires kept",
			"[build-system]\nrequires=[\"a>=1.0.0\", \"b.c>=1.5.0\"]\n",
			true,
			"[build-system]\nrequires = [\n  \"a>=1.0.0\",\n  \"b-c>=1.5.0\",\n]\n",
		},
		{
			"sorted by package name",
			"[build-system]\nrequires=[\"setuptools_scm[toml]>=8\", \"Hatchling\", \"hatch-vcs\"]\n",
			false,
			"[build-system]\nrequires = [\n  \"hatch-vcs\",\n  \"hatchling\",\n  \"setuptools-scm[toml]>=8\",\n]\n",
		},
		{
			"join",
			"[build-system]\nrequires=[\"a\"]\n[build-system]\nbuild-backend = \"hatchling.build\"\n" +
				"[[build-system.a]]\nname = \"Hammer\"\n[[build-system.a]]  # empty table within the array\n[[build-system.a]]\nname = \"Nail\"\n",
			false,
			"[build-system]\nbuild-backend = \"hatchling.build\"\nrequires = [\n  \"a\",\n]\n" +
				"[[build-system.a]]\nname = \"Hammer\"\n[[build-system.a]] # empty table within the array\n[[build-system.a]]\nname = \"Nail\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check(t, tt.want, evaluate(t, tt.input, rules.BuildSystem, setup{keep: tt.keep, width: 1}))
		})
	}
}

func TestProjectFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"name dashes", "[project]\nname='a-b'\ndynamic=[\"classifiers\"]\n", "[project]\nname = \"a-b\"\ndynamic = [ \"classifiers\" ]\n"},
		{"name case", "[project]\nname='A_B'\ndynamic=[\"classifiers\"]\n", "[project]\nname = \"a-b\"\ndynamic = [ \"classifiers\" ]\n"},
		{"name separators", "[project]\nname='a.-..-__B'\ndynamic=[\"classifiers\"]\n", "[project]\nname = \"a-b\"\ndynamic = [ \"classifiers\" ]\n"},
		{
			"description",
			"[project]\ndescription=\" Magical stuff\\t\"\ndynamic=[\"classifiers\"]\n",
			"[project]\ndescription = \"Magical stuff\"\ndynamic = [ \"classifiers\" ]\n",
		},
		{
			"multi line description",
			"[project]\ndescription=\"\"\"A multi-line\n               description.\"\"\"\ndynamic=[\"classifiers\"]\n",
			"[project]\ndescription = \"A multi-line description.\"\ndynamic = [ \"classifiers\" ]\n",
		},
		{
			"dependencies and extras",
			"[project]\ndynamic=[\"version\", \"classifiers\"]\ndependencies=[\"pytest-cov\",\"Pytest\",]\n" +
				"[project.optional-dependencies]\ntest = [\"B\", \"A\"]\ndocs = [ \"C\",\n\"D\"]\n",
			"[project]\ndynamic = [ \"classifiers\", \"version\" ]\ndependencies = [ \"pytest\", \"pytest-cov\" ]\n" +
				"optional-dependencies.docs = [\n  \"c\",\n  \"d\",\n]\noptional-dependencies.test = [ \"a\", \"b\" ]\n",
		},
		{
			"scripts collapse and sort",
			"[project.scripts]\nc = 'd'\na = \"b\"\n[project]\ndynamic=[\"classifiers\"]\n",
			"[project]\ndynamic = [ \"classifiers\" ]\nscripts.a = \"b\"\nscripts.c = \"d\"\n",
		},
		{
			"double quoted markers become single quoted",
			"[project]\ndynamic=[\"classifiers\"]\ndependencies = [\n  'packaging>=20.0;python_version>\"3.4\"',\n  \"appdirs\"\n]\n",
			"[project]\ndynamic = [ \"classifiers\" ]\ndependencies = [\n  \"appdirs\",\n  \"packaging>=20; python_version>'3.4'\",\n]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check(t, tt.want, evaluate(t, tt.input, rules.Project, setup{width: 120}))
		})
	}
}

func TestProjectRequirementError(t *testing.T) {
	_, _, err := apply(t, "[project]\ndependencies = [\"ok\", \"-bad\"]\n", rules.Project, false)
	var perr *pep508.RequirementParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected RequirementParseError, got %v", err)
	}
	if perr.Input != "-bad" {
		t.Fatalf("error input = %q", perr.Input)
	}
}

func classifiers(minors ...string) []string {
	out := []string{"Programming Language :: Python :: 3 :: Only"}
	for _, m := range minors {
		out = append(out, "Programming Language :: Python :: 3."+m)
	}
	return out
}

func TestClassifierRange(t *testing.T) {
	tests := []struct {
		requires string
		want     []string
	}{
		{"", classifiers("7", "8", "9", "10", "11", "12")},
		{"<3.7", classifiers()},
		{">3.6", classifiers("7", "8", "9", "10", "11", "12")},
		{">=3.6", classifiers("6", "7", "8", "9", "10", "11", "12")},
		{"==3.12", classifiers("12")},
		{"!=3.9", classifiers("7", "8", "10", "11", "12")},
		{">=3.7,<3.13", classifiers("7", "8", "9", "10", "11", "12")},
		{"<=3.12,!=3.9,>=3.8", classifiers("8", "10", "11", "12")},
		{"<=3.13,>3.10", classifiers("11", "12", "13")},
		{"<3.8,<=3.10", classifiers("7")},
		{"~=3.9.1", classifiers("9")},
		{">3.8.1", classifiers("8", "9", "10", "11", "12")},
		{"<3.9.2", classifiers("7", "8", "9")},
		{"not a specifier", classifiers("7", "8", "9", "10", "11", "12")},
	}
	for _, tt := range tests {
		t.Run(tt.requires, func(t *testing.T) {
			input := "[project]\n"
			if tt.requires != "" {
				input += "requires-python = \"" + tt.requires + "\"\n"
			}
			tree, ix, err := apply(t, input, rules.Project, false)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			entry, ok := ix.Lookup("project")[0].Lookup(tree, "classifiers")
			if !ok {
				t.Fatalf("classifiers not synthesized")
			}
			got, _ := arrays.Strings(tree, entry.Value)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifierExistingKept(t *testing.T) {
	input := "[project]\nrequires-python = \"<3.8\"\nclassifiers = [\n" +
		"  \"Programming Language :: Python :: 3.5\",\n" +
		"  # license\n  \"License :: OSI Approved :: MIT License\",\n" +
		"  \"Programming Language :: Python :: 3.7\", # oldest\n" +
		"  \"Programming Language :: Python :: 3.8\",\n]\n"
	want := "[project]\nrequires-python = \"<3.8\"\nclassifiers = [\n" +
		"  # license\n  \"License :: OSI Approved :: MIT License\",\n" +
		"  \"Programming Language :: Python :: 3 :: Only\",\n" +
		"  \"Programming Language :: Python :: 3.7\", # oldest\n]\n"
	check(t, want, evaluate(t, input, rules.Project, setup{width: 120}))
}

func TestClassifierDynamic(t *testing.T) {
	input := "[project]\ndynamic = [\"classifiers\"]\n"
	check(t, "[project]\ndynamic = [ \"classifiers\" ]\n", evaluate(t, input, rules.Project, setup{width: 120}))
}

func TestRuff(t *testing.T) {
	input := "[tool.ruff]\nlint.select = [\"E\", \"A\"]\nline-length = 120\n" +
		"[tool.ruff.lint.isort]\nsection-order = [\"b\", \"a\"]\nknown-first-party = 'pkg'\n" +
		"[tool.ruff.lint.per-file-ignores]\n\"tests/*.py\" = [\"S101\", \"D\"]\n"
	want := "[tool.ruff]\nline-length = 120\nlint.select = [ \"A\", \"E\" ]\n" +
		"lint.per-file-ignores.\"tests/*.py\" = [ \"D\", \"S101\" ]\n" +
		"lint.isort.known-first-party = \"pkg\"\nlint.isort.section-order = [ \"b\", \"a\" ]\n"
	check(t, want, evaluate(t, input, rules.Ruff, setup{width: 120}))
}

func TestUnknownFieldsPassThrough(t *testing.T) {
	input := "[build-system]\nzzz = ['b', 'a']\nrequires = []\n"
	want := "[build-system]\nrequires = []\nzzz = [ 'b', 'a' ]\n"
	check(t, want, evaluate(t, input, rules.BuildSystem, setup{width: 120}))
}
