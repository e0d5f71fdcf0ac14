// Package rules holds the per-table normalisation rules as data and the
// interpreter that applies them to a table index.
package rules

import (
	"fmt"
	"strings"

	"pyprojectfmt/internal/arrays"
	"pyprojectfmt/internal/pep508"
	"pyprojectfmt/internal/syntax"
	"pyprojectfmt/internal/tables"
)

// Action is a set of operations applied to one field.
type Action uint16

const (
	ActQuote           Action = 1 << iota // re-render a string value
	ActQuoteItems                         // re-render every string item of an array
	ActRequirement                        // canonicalize array items as requirements
	ActSortLower                          // natural sort by lowercase text
	ActSortRequirement                    // natural sort by canonical package name
	ActCanonicalName                      // normalize a package name value
	ActCollapseSpaces                     // collapse whitespace runs into one space
)

// Field binds an action to a key. With Prefix set, Name (ending with ".")
// matches every key below it.
type Field struct {
	Name   string
	Prefix bool
	Action Action
}

// RuleSet describes how one table is normalized.
type RuleSet struct {
	Table      string
	Collapse   bool
	Fields     []Field
	Order      []string
	Synthesize func(*Context, *tables.Table) error
}

// Python is a major.minor language version.
type Python struct {
	Major, Minor int
}

func (p Python) String() string { return fmt.Sprintf("%d.%d", p.Major, p.Minor) }

// Context carries the tree and the settings the actions depend on.
type Context struct {
	Tree            *syntax.Tree
	KeepFullVersion bool
	MinPython       Python
	MaxPython       Python
}

func (rs RuleSet) field(key string) (Field, bool) {
	for _, f := range rs.Fields {
		if !f.Prefix && f.Name == key {
			return f, true
		}
	}
	for _, f := range rs.Fields {
		if f.Prefix && strings.HasPrefix(key, f.Name) {
			return f, true
		}
	}
	return Field{}, false
}

// Apply runs rs against the first table named rs.Table: optional collapse of
// sub tables, synthesis, field actions and the entry reorder. Unknown keys
// are left untouched.
func Apply(ctx *Context, ix *tables.Index, rs RuleSet) error {
	if rs.Collapse {
		ix.Collapse(rs.Table)
	}
	found := ix.Lookup(rs.Table)
	if len(found) == 0 {
		return nil
	}
	t := found[0]
	if rs.Synthesize != nil {
		if err := rs.Synthesize(ctx, t); err != nil {
			return fmt.Errorf("%s: %w", rs.Table, err)
		}
	}
	for _, e := range t.Entries(ctx.Tree) {
		f, ok := rs.field(e.Key)
		if !ok || e.Value == syntax.NoNodeID {
			continue
		}
		if err := ctx.apply(f.Action, e.Value); err != nil {
			return fmt.Errorf("%s.%s: %w", rs.Table, e.Key, err)
		}
	}
	tables.ReorderEntries(ctx.Tree, t, rs.Order)
	return nil
}

func (ctx *Context) apply(act Action, value syntax.NodeID) error {
	tree := ctx.Tree
	var err error
	switch {
	case act&ActCanonicalName != 0:
		err = arrays.UpdateString(tree, value, func(s string) (string, error) {
			return pep508.NormalizeName(strings.TrimSpace(s)), nil
		})
	case act&ActCollapseSpaces != 0:
		err = arrays.UpdateString(tree, value, func(s string) (string, error) {
			return strings.Join(strings.Fields(s), " "), nil
		})
	case act&ActQuote != 0:
		err = arrays.UpdateString(tree, value, identity)
	}
	if err != nil {
		return err
	}

	switch {
	case act&ActRequirement != 0:
		err = arrays.Transform(tree, value, func(s string) (string, error) {
			return pep508.Canonicalize(s, ctx.KeepFullVersion)
		})
	case act&ActQuoteItems != 0:
		err = arrays.Transform(tree, value, identity)
	}
	if err != nil {
		return err
	}

	switch {
	case act&ActSortRequirement != 0:
		arrays.Sort(tree, value, requirementKey)
	case act&ActSortLower != 0:
		arrays.Sort(tree, value, strings.ToLower)
	}
	return nil
}

func identity(s string) (string, error) { return s, nil }

// requirementKey: canonical package name, or the lowercase text when the
// item does not parse.
func requirementKey(s string) string {
	if name, err := pep508.CanonicalName(s); err == nil {
		return name
	}
	return strings.ToLower(s)
}

// field list helpers

func exact(act Action, names ...string) []Field {
	out := make([]Field, len(names))
	for i, n := range names {
		out[i] = Field{Name: n, Action: act}
	}
	return out
}

func prefix(act Action, names ...string) []Field {
	out := make([]Field, len(names))
	for i, n := range names {
		out[i] = Field{Name: n, Prefix: true, Action: act}
	}
	return out
}

func concat(groups ...[]Field) []Field {
	var out []Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
