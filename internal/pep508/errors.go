package pep508

import "fmt"

// RequirementParseError is returned for text that is not a valid
// dependency specifier.
type RequirementParseError struct {
	Input  string
	Offset int
	Reason string
}

func (e *RequirementParseError) Error() string {
	return fmt.Sprintf("invalid requirement %q at offset %d: %s", e.Input, e.Offset, e.Reason)
}
