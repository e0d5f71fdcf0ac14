package token

import "pyprojectfmt/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	// TriviaNewline holds a run of consecutive line breaks.
	TriviaNewline
	// TriviaComment is "# ..." up to (not including) the line break.
	TriviaComment
)

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
