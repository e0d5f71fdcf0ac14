package pep508

import (
	"strings"
)

// MarkerTree is one of *MarkerExpr, *MarkerAnd or *MarkerOr.
type MarkerTree interface {
	isMarker()
}

// MarkerValue is one of MarkerVar or MarkerString.
type MarkerValue interface {
	isMarkerValue()
	String() string
}

type MarkerVar struct{ Name string }

type MarkerString struct{ Value string }

type MarkerExpr struct {
	Left  MarkerValue
	Op    string
	Right MarkerValue
}

type MarkerAnd struct{ Children []MarkerTree }

type MarkerOr struct{ Children []MarkerTree }

func (*MarkerExpr) isMarker() {}
func (*MarkerAnd) isMarker()  {}
func (*MarkerOr) isMarker()   {}

func (MarkerVar) isMarkerValue()    {}
func (MarkerString) isMarkerValue() {}

func (v MarkerVar) String() string { return v.Name }

// String quotes with ' unless the value itself contains one.
func (v MarkerString) String() string {
	if strings.Contains(v.Value, "'") {
		return `"` + v.Value + `"`
	}
	return "'" + v.Value + "'"
}

var markerVars = map[string]string{
	"python_version":                 "python_version",
	"python_full_version":            "python_full_version",
	"os_name":                        "os_name",
	"sys_platform":                   "sys_platform",
	"platform_release":               "platform_release",
	"platform_system":                "platform_system",
	"platform_version":               "platform_version",
	"platform_machine":               "platform_machine",
	"platform_python_implementation": "platform_python_implementation",
	"implementation_name":            "implementation_name",
	"implementation_version":         "implementation_version",
	"extra":                          "extra",
	// устаревшие имена
	"os.name":                        "os_name",
	"sys.platform":                   "sys_platform",
	"platform.version":               "platform_version",
	"platform.machine":               "platform_machine",
	"platform.python_implementation": "platform_python_implementation",
	"python_implementation":          "platform_python_implementation",
}

var markerOps = []string{"===", "==", "!=", "<=", ">=", "~=", "<", ">"}

// RenderMarker writes the canonical form of a marker tree.
func RenderMarker(m MarkerTree) string {
	var sb strings.Builder
	renderMarker(&sb, m, false)
	return sb.String()
}

func renderMarker(sb *strings.Builder, m MarkerTree, nested bool) {
	switch m := m.(type) {
	case *MarkerExpr:
		sb.WriteString(m.Left.String())
		if m.Op == "in" || m.Op == "not in" {
			sb.WriteString(" " + m.Op + " ")
		} else {
			sb.WriteString(m.Op)
		}
		sb.WriteString(m.Right.String())
	case *MarkerAnd:
		renderGroup(sb, m.Children, " and ", nested)
	case *MarkerOr:
		renderGroup(sb, m.Children, " or ", nested)
	}
}

func renderGroup(sb *strings.Builder, children []MarkerTree, sep string, nested bool) {
	paren := nested && len(children) > 1
	if paren {
		sb.WriteByte('(')
	}
	for i, c := range children {
		if i > 0 {
			sb.WriteString(sep)
		}
		renderMarker(sb, c, true)
	}
	if paren {
		sb.WriteByte(')')
	}
}

// marker := or_expr
func (s *scanner) marker() (MarkerTree, error) {
	return s.markerOr()
}

func (s *scanner) markerOr() (MarkerTree, error) {
	first, err := s.markerAnd()
	if err != nil {
		return nil, err
	}
	children := []MarkerTree{first}
	for s.keyword("or") {
		next, err := s.markerAnd()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return first, nil
	}
	return &MarkerOr{Children: children}, nil
}

func (s *scanner) markerAnd() (MarkerTree, error) {
	first, err := s.markerAtom()
	if err != nil {
		return nil, err
	}
	children := []MarkerTree{first}
	for s.keyword("and") {
		next, err := s.markerAtom()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return first, nil
	}
	return &MarkerAnd{Children: children}, nil
}

func (s *scanner) markerAtom() (MarkerTree, error) {
	s.skipSpace()
	if s.peek() == '(' {
		s.pos++
		inner, err := s.markerOr()
		if err != nil {
			return nil, err
		}
		s.skipSpace()
		if s.peek() != ')' {
			return nil, s.errorf("expected ')' in marker")
		}
		s.pos++
		return inner, nil
	}
	left, err := s.markerValue()
	if err != nil {
		return nil, err
	}
	s.skipSpace()
	op, err := s.markerOp()
	if err != nil {
		return nil, err
	}
	right, err := s.markerValue()
	if err != nil {
		return nil, err
	}
	_, leftVar := left.(MarkerVar)
	_, rightVar := right.(MarkerVar)
	if leftVar == rightVar {
		return nil, s.errorf("marker must compare a variable with a string")
	}
	return &MarkerExpr{Left: left, Op: op, Right: right}, nil
}

func (s *scanner) markerOp() (string, error) {
	if s.keyword("in") {
		return "in", nil
	}
	if s.keyword("not") {
		if !s.keyword("in") {
			return "", s.errorf("expected 'in' after 'not'")
		}
		return "not in", nil
	}
	for _, op := range markerOps {
		if s.hasPrefix(op) {
			s.pos += len(op)
			return op, nil
		}
	}
	return "", s.errorf("expected a marker operator")
}

func (s *scanner) markerValue() (MarkerValue, error) {
	s.skipSpace()
	switch q := s.peek(); q {
	case '\'', '"':
		s.pos++
		end := strings.IndexByte(s.rest(), q)
		if end < 0 {
			return nil, s.errorf("unterminated marker string")
		}
		value := s.rest()[:end]
		s.pos += end + 1
		return MarkerString{Value: value}, nil
	default:
		start := s.pos
		name := s.takeWhile(func(b byte) bool { return isNameByte(b) && b != '-' })
		canonical, ok := markerVars[name]
		if !ok {
			s.pos = start
			return nil, s.errorf("unknown marker variable %q", name)
		}
		return MarkerVar{Name: canonical}, nil
	}
}

// keyword consumes a whole word (followed by a non-name byte).
func (s *scanner) keyword(word string) bool {
	save := s.pos
	s.skipSpace()
	if s.hasPrefix(word) {
		after := s.pos + len(word)
		if after >= len(s.input) || !isNameByte(s.input[after]) {
			s.pos = after
			return true
		}
	}
	s.pos = save
	return false
}
