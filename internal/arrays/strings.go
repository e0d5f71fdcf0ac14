package arrays

import (
	"fmt"
	"strconv"
	"strings"

	"pyprojectfmt/internal/syntax"
)

// Unquote decodes the text of a string token of the given kind. The lexer
// has already validated escapes, so malformed input is decoded best-effort.
func Unquote(kind syntax.Kind, text string) (string, bool) {
	switch kind {
	case syntax.BasicString:
		if len(text) < 2 {
			return "", false
		}
		return unescape(text[1 : len(text)-1]), true
	case syntax.LiteralString:
		if len(text) < 2 {
			return "", false
		}
		return text[1 : len(text)-1], true
	case syntax.MultiLineBasicString:
		if len(text) < 6 {
			return "", false
		}
		body := trimFirstNewline(text[3 : len(text)-3])
		return unescape(joinContinuations(body)), true
	case syntax.MultiLineLiteralString:
		if len(text) < 6 {
			return "", false
		}
		return trimFirstNewline(text[3 : len(text)-3]), true
	default:
		return "", false
	}
}

func trimFirstNewline(s string) string {
	if strings.HasPrefix(s, "\r\n") {
		return s[2:]
	}
	return strings.TrimPrefix(s, "\n")
}

// joinContinuations removes a line-ending backslash together with all
// whitespace and newlines that follow it.
func joinContinuations(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+1 < len(s) && s[i+1] == '\\' {
			sb.WriteString(`\\`)
			i++
			continue
		}
		j := i + 1
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}
		if j < len(s) && (s[j] == '\n' || s[j] == '\r') {
			for j < len(s) && strings.IndexByte(" \t\r\n", s[j]) >= 0 {
				j++
			}
			i = j - 1
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'b':
			sb.WriteByte('\b')
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'f':
			sb.WriteByte('\f')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 'u', 'U':
			width := 4
			if s[i] == 'U' {
				width = 8
			}
			if i+width < len(s) {
				if r, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32); err == nil {
					sb.WriteRune(rune(r))
					i += width
					continue
				}
			}
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// Quote renders s as a TOML string: basic when nothing needs escaping,
// literal when s holds '"' or '\' but no "'" and no control characters,
// escaped basic otherwise.
func Quote(s string) (syntax.Kind, string) {
	control := strings.IndexFunc(s, isControl) >= 0
	if !control && !strings.ContainsAny(s, `"\`) {
		return syntax.BasicString, `"` + s + `"`
	}
	if !control && !strings.Contains(s, "'") {
		return syntax.LiteralString, "'" + s + "'"
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\f':
			sb.WriteString(`\f`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if isControl(r) {
				fmt.Fprintf(&sb, `\u%04X`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return syntax.BasicString, sb.String()
}

// tab is allowed verbatim inside basic and literal strings.
func isControl(r rune) bool {
	return (r < 0x20 && r != '\t') || r == 0x7f
}

// StringValue decodes the string held by a Value node.
func StringValue(tree *syntax.Tree, value syntax.NodeID) (string, bool) {
	inner := tree.Inner(value)
	if inner == syntax.NoNodeID || !tree.Kind(inner).IsString() {
		return "", false
	}
	return Unquote(tree.Kind(inner), tree.TokenText(inner))
}

// NewString allocates a Value node holding s.
func NewString(tree *syntax.Tree, s string) syntax.NodeID {
	kind, text := Quote(s)
	return tree.NewValue(tree.NewToken(kind, text))
}

// UpdateString rewrites a plain string value through fn and re-quotes the
// result. Values that are not strings are left alone.
func UpdateString(tree *syntax.Tree, value syntax.NodeID, fn func(string) (string, error)) error {
	s, ok := StringValue(tree, value)
	if !ok {
		return nil
	}
	out, err := fn(s)
	if err != nil {
		return err
	}
	setString(tree, value, out)
	return nil
}

// setString заменяет строковый токен внутри Value (вид кавычек может смениться).
func setString(tree *syntax.Tree, value syntax.NodeID, s string) {
	kind, text := Quote(s)
	for i, c := range tree.Children(value) {
		if tree.Kind(c).IsString() {
			tree.Splice(value, i, i+1, tree.NewToken(kind, text))
			return
		}
	}
}
