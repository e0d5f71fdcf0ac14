// Package pyproject wires the formatting pipeline together:
// parse, index tables, run the rule sets, reorder tables and print.
package pyproject

import (
	"context"
	"strings"

	"pyprojectfmt/internal/format"
	"pyprojectfmt/internal/parser"
	"pyprojectfmt/internal/rules"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/syntax"
	"pyprojectfmt/internal/tables"
	"pyprojectfmt/internal/trace"
)

// Format returns the canonical form of a pyproject.toml document.
// Invalid TOML yields *parser.ParseError, a malformed dependency string
// *pep508.RequirementParseError; in both cases nothing is returned.
func Format(ctx context.Context, content string, s Settings) (string, error) {
	return FormatSource(ctx, source.Virtual("pyproject.toml", content), s)
}

// FormatSource is Format for a loaded file, so diagnostics carry its path.
func FormatSource(ctx context.Context, file *source.File, s Settings) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	var tree *syntax.Tree
	err := pass(ctx, "parse", func() (err error) {
		tree, err = parser.ParseSource(file)
		return err
	})
	if err != nil {
		return "", err
	}

	var ix *tables.Index
	_ = pass(ctx, "tables", func() error {
		ix = tables.Build(tree)
		return nil
	})

	rctx := &rules.Context{
		Tree:            tree,
		KeepFullVersion: s.KeepFullVersion,
		MinPython:       s.MinSupportedPython.python(),
		MaxPython:       s.MaxSupportedPython.python(),
	}
	for _, rs := range rules.Sequence {
		if err := pass(ctx, rs.Table, func() error { return rules.Apply(rctx, ix, rs) }); err != nil {
			return "", err
		}
	}

	_ = pass(ctx, "reorder", func() error {
		tables.ReorderTables(tree, ix, rules.TableOrder)
		return nil
	})

	var out string
	_ = pass(ctx, "print", func() error {
		out = format.Print(tree, Options(s))
		return nil
	})
	return out, nil
}

// Options is the fixed printer layout with the width and indent of s.
func Options(s Settings) format.Options {
	return format.Options{
		ColumnWidth:        s.ColumnWidth,
		IndentString:       strings.Repeat(" ", s.Indent),
		ArrayTrailingComma: true,
		ArrayAutoExpand:    true,
		ArrayAutoCollapse:  false,
		AllowedBlankLines:  1,
		TrailingNewline:    true,
	}
}

func pass(ctx context.Context, name string, fn func() error) error {
	_, span := trace.Start(ctx, trace.ScopePass, name)
	err := fn()
	if err != nil {
		span.End(err.Error())
		return err
	}
	span.End("")
	return nil
}
