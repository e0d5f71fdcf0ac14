// Package token defines lexical token kinds and trivia for TOML documents.
// Invariants:
//   - Token.Text is the exact source text of the token (escapes are not decoded).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace, newline runs and comments never appear in the main token
//     stream; they are attached to the following token as Leading trivia.
//   - The lexer does not know whether "true" is a key or a value: the parser
//     picks the scanning mode and the same bytes may yield BareKey or Bool.
package token
