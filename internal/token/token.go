package token

import (
	"pyprojectfmt/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsScalar reports whether the token is a complete scalar value.
func (t Token) IsScalar() bool {
	switch t.Kind {
	case Integer, Float, Bool, DateTime:
		return true
	default:
		return t.Kind.IsString()
	}
}

// IsKeySegment reports whether the token may start or continue a dotted key.
func (t Token) IsKeySegment() bool {
	return t.Kind == BareKey || t.Kind == BasicString || t.Kind == LiteralString
}

// HasNewline reports whether a line break precedes the token.
func (t Token) HasNewline() bool {
	for _, tv := range t.Leading {
		if tv.Kind == TriviaNewline {
			return true
		}
	}
	return false
}
