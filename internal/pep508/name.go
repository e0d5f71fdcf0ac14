package pep508

import (
	"regexp"
	"strings"
)

var (
	reNameSeparators = regexp.MustCompile(`[-_.]+`)
	reValidName      = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)
)

// NormalizeName lowercases a project or extra name and collapses runs of
// "-", "_" and "." into a single "-".
func NormalizeName(name string) string {
	return strings.ToLower(reNameSeparators.ReplaceAllString(name, "-"))
}

// ValidName reports whether name is a syntactically valid project name.
func ValidName(name string) bool {
	return reValidName.MatchString(name)
}
