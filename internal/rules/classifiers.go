package rules

import (
	"regexp"
	"slices"
	"strconv"

	"pyprojectfmt/internal/arrays"
	"pyprojectfmt/internal/pep508"
	"pyprojectfmt/internal/tables"
)

const (
	classifierPrefix = "Programming Language :: Python :: "
	classifierOnly   = classifierPrefix + "3 :: Only"
)

var rePythonClassifier = regexp.MustCompile(`^Programming Language :: Python :: 3(\.[0-9]+| :: Only)$`)

// pythonRange is the inclusive range of 3.x minor versions to advertise.
type pythonRange struct {
	lower, upper int
	excluded     map[int]bool
}

// supportedRange starts from the configured bounds; bounds found in
// requires-python replace them.
func supportedRange(ctx *Context, requiresPython string, ok bool) pythonRange {
	r := pythonRange{lower: ctx.MinPython.Minor, upper: ctx.MaxPython.Minor, excluded: map[int]bool{}}
	if !ok {
		return r
	}
	specs, err := pep508.ParseSpecifiers(requiresPython)
	if err != nil {
		return r
	}
	lower, upper := r.lower, r.upper
	hasLower, hasUpper := false, false
	raise := func(m int) {
		if !hasLower || m > lower {
			lower, hasLower = m, true
		}
	}
	limit := func(m int) {
		if !hasUpper || m < upper {
			upper, hasUpper = m, true
		}
	}
	for _, spec := range specs {
		v, err := spec.ReleaseVersion()
		if err != nil || len(v.Release) == 0 || v.Release[0] != "3" {
			continue
		}
		minor := 0
		if len(v.Release) > 1 {
			if minor, err = strconv.Atoi(v.Release[1]); err != nil {
				continue
			}
		}
		patched := len(v.Release) > 2 && !allZero(v.Release[2:])
		switch spec.Op {
		case ">=":
			raise(minor)
		case ">":
			if patched {
				raise(minor)
			} else {
				raise(minor + 1)
			}
		case "~=":
			raise(minor)
			if len(v.Release) > 2 {
				limit(minor)
			}
		case "<=":
			limit(minor)
		case "<":
			if patched {
				limit(minor)
			} else {
				limit(minor - 1)
			}
		case "==":
			if !v.Wildcard || len(v.Release) > 1 {
				raise(minor)
				limit(minor)
			}
		case "!=":
			if len(v.Release) == 2 {
				r.excluded[minor] = true
			}
		}
	}
	r.lower, r.upper = lower, upper
	return r
}

func allZero(parts []string) bool {
	for _, p := range parts {
		if p != "0" {
			return false
		}
	}
	return true
}

func (r pythonRange) classifiers() []string {
	out := []string{classifierOnly}
	for m := r.lower; m <= r.upper; m++ {
		if !r.excluded[m] {
			out = append(out, classifierPrefix+"3."+strconv.Itoa(m))
		}
	}
	return out
}

// synthesizeClassifiers makes the Python version classifiers of [project]
// match the supported range. Other classifiers and their comments stay.
// Nothing is done when classifiers are declared dynamic.
func synthesizeClassifiers(ctx *Context, t *tables.Table) error {
	tree := ctx.Tree
	if e, ok := t.Lookup(tree, "dynamic"); ok {
		if dynamic, ok := arrays.Strings(tree, e.Value); ok && slices.Contains(dynamic, "classifiers") {
			return nil
		}
	}
	var requires string
	e, hasRequires := t.Lookup(tree, "requires-python")
	if hasRequires {
		requires, hasRequires = arrays.StringValue(tree, e.Value)
	}
	want := supportedRange(ctx, requires, hasRequires).classifiers()

	existing, ok := t.Lookup(tree, "classifiers")
	if !ok {
		t.AppendEntry(tree, tree.NewEntry(tree.NewKey("classifiers"), arrays.NewMultiline(tree, want...)))
		return nil
	}
	have, ok := arrays.Strings(tree, existing.Value)
	if !ok {
		return nil
	}
	arrays.Retain(tree, existing.Value, func(s string) bool {
		return !rePythonClassifier.MatchString(s) || slices.Contains(want, s)
	})
	var missing []string
	for _, c := range want {
		if !slices.Contains(have, c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		arrays.Append(tree, existing.Value, missing...)
	}
	return nil
}
