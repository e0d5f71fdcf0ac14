package pep508

import (
	"strings"
)

// Requirement is a parsed dependency specifier.
type Requirement struct {
	Name       string // canonical
	Extras     []string
	Specifiers []Specifier
	URL        string
	Marker     MarkerTree // nil when absent
}

// Parse reads one dependency specifier.
func Parse(spec string) (*Requirement, error) {
	s := &scanner{input: spec}
	s.skipSpace()

	start := s.pos
	name := s.takeWhile(isNameByte)
	if name == "" || !ValidName(name) {
		s.pos = start
		return nil, s.errorf("expected a project name")
	}
	req := &Requirement{Name: NormalizeName(name)}

	s.skipSpace()
	if s.peek() == '[' {
		extras, err := s.extras()
		if err != nil {
			return nil, err
		}
		req.Extras = extras
		s.skipSpace()
	}

	switch s.peek() {
	case '@':
		s.pos++
		s.skipSpace()
		url := s.takeWhile(func(b byte) bool { return b != ' ' && b != '\t' })
		if url == "" {
			return nil, s.errorf("expected a URL after '@'")
		}
		req.URL = url
		s.skipSpace()
	case '(':
		s.pos++
		specs, err := s.specifiers(true)
		if err != nil {
			return nil, err
		}
		s.skipSpace()
		if s.peek() != ')' {
			return nil, s.errorf("expected ')' after version specifiers")
		}
		s.pos++
		req.Specifiers = specs
	case ';', 0:
	default:
		specs, err := s.specifiers(false)
		if err != nil {
			return nil, err
		}
		req.Specifiers = specs
	}

	s.skipSpace()
	if s.peek() == ';' {
		s.pos++
		marker, err := s.marker()
		if err != nil {
			return nil, err
		}
		req.Marker = marker
		s.skipSpace()
	}
	if !s.eof() {
		return nil, s.errorf("unexpected %q", s.rest())
	}
	return req, nil
}

func (s *scanner) extras() ([]string, error) {
	s.pos++ // '['
	var out []string
	for {
		s.skipSpace()
		if s.peek() == ']' && len(out) == 0 {
			s.pos++
			return out, nil
		}
		extra := s.takeWhile(isNameByte)
		if extra == "" || !ValidName(extra) {
			return nil, s.errorf("expected an extra name")
		}
		out = append(out, NormalizeName(extra))
		s.skipSpace()
		switch s.peek() {
		case ',':
			s.pos++
		case ']':
			s.pos++
			return out, nil
		default:
			return nil, s.errorf("expected ',' or ']' in extras")
		}
	}
}

// String renders the canonical form.
func (r *Requirement) String(keepFullVersion bool) string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	if len(r.Extras) > 0 {
		sb.WriteString("[" + strings.Join(r.Extras, ",") + "]")
	}
	if r.URL != "" {
		sb.WriteString(" @ " + r.URL)
	}
	for i, spec := range r.Specifiers {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(spec.String(keepFullVersion))
	}
	if r.Marker != nil {
		if r.URL != "" {
			// "; " сразу после URL стал бы частью URL
			sb.WriteString(" ; ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(RenderMarker(r.Marker))
	}
	return sb.String()
}

// Canonicalize parses spec and renders it canonically.
func Canonicalize(spec string, keepFullVersion bool) (string, error) {
	req, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return req.String(keepFullVersion), nil
}

// CanonicalName returns only the canonical project name of spec.
func CanonicalName(spec string) (string, error) {
	req, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return req.Name, nil
}
