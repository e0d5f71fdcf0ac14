package pep508

import (
	"fmt"
	"strings"
)

type scanner struct {
	input string
	pos   int
}

func (s *scanner) eof() bool { return s.pos >= len(s.input) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) rest() string { return s.input[s.pos:] }

func (s *scanner) skipSpace() {
	for !s.eof() && (s.input[s.pos] == ' ' || s.input[s.pos] == '\t') {
		s.pos++
	}
}

func (s *scanner) hasPrefix(p string) bool { return strings.HasPrefix(s.rest(), p) }

func (s *scanner) errorf(format string, args ...any) *RequirementParseError {
	return &RequirementParseError{Input: s.input, Offset: s.pos, Reason: fmt.Sprintf(format, args...)}
}

// takeWhile consumes bytes while ok holds and returns them.
func (s *scanner) takeWhile(ok func(byte) bool) string {
	start := s.pos
	for !s.eof() && ok(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

func isNameByte(b byte) bool {
	return b == '-' || b == '_' || b == '.' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isVersionByte(b byte) bool {
	return isNameByte(b) || b == '*' || b == '+' || b == '!'
}

// specifiers parses "op version (, op version)*". Inside parentheses the
// closing ")" ends the list.
func (s *scanner) specifiers(parenthesized bool) ([]Specifier, error) {
	var out []Specifier
	for {
		s.skipSpace()
		op := ""
		for _, candidate := range operators {
			if s.hasPrefix(candidate) {
				op = candidate
				break
			}
		}
		if op == "" {
			return nil, s.errorf("expected a version operator")
		}
		s.pos += len(op)
		s.skipSpace()
		start := s.pos
		raw := s.takeWhile(isVersionByte)
		if raw == "" {
			return nil, s.errorf("expected a version after %q", op)
		}
		spec := Specifier{Op: op, Version: raw}
		if op != "===" {
			v, err := ParseVersion(raw)
			if err != nil {
				return nil, &RequirementParseError{Input: s.input, Offset: start, Reason: err.Error()}
			}
			if v.Wildcard && op != "==" && op != "!=" {
				return nil, &RequirementParseError{Input: s.input, Offset: start, Reason: "wildcard versions are only allowed with == and !="}
			}
			spec.Version = v.String()
		}
		out = append(out, spec)
		s.skipSpace()
		if s.peek() != ',' {
			if parenthesized && s.peek() != ')' {
				return nil, s.errorf("expected ',' or ')'")
			}
			return out, nil
		}
		s.pos++
	}
}
