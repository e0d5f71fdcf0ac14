package pep508

import (
	"fmt"
	"regexp"
	"strings"
)

var reVersion = regexp.MustCompile(`(?i)^v?` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?P<pre>[-_.]?(?P<pre_l>alpha|a|beta|b|preview|pre|c|rc)[-_.]?(?P<pre_n>[0-9]+)?)?` +
	`(?P<post>(?:-(?P<post_n1>[0-9]+))|(?:[-_.]?(?P<post_l>post|rev|r)[-_.]?(?P<post_n2>[0-9]+)?))?` +
	`(?P<dev>[-_.]?(?P<dev_l>dev)[-_.]?(?P<dev_n>[0-9]+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_.][a-z0-9]+)*))?$`)

var reWildcard = regexp.MustCompile(`^v?(?:([0-9]+)!)?([0-9]+(?:\.[0-9]+)*)\.\*$`)

// Operators in the order they must be tried while scanning.
var operators = []string{"===", "~=", "==", "!=", "<=", ">=", "<", ">"}

// Specifier is a single version clause such as ">=3.9".
type Specifier struct {
	Op      string
	Version string // normalized
}

// Version is a parsed PEP 440 version.
type Version struct {
	Epoch    string
	Release  []string
	Pre      string // "a1", "rc0"
	Post     string // "post1"
	Dev      string // "dev0"
	Local    string
	Wildcard bool
}

func (v Version) String() string {
	var sb strings.Builder
	if v.Epoch != "" && v.Epoch != "0" {
		sb.WriteString(v.Epoch)
		sb.WriteByte('!')
	}
	sb.WriteString(strings.Join(v.Release, "."))
	if v.Wildcard {
		sb.WriteString(".*")
		return sb.String()
	}
	sb.WriteString(v.Pre)
	if v.Post != "" {
		sb.WriteString("." + v.Post)
	}
	if v.Dev != "" {
		sb.WriteString("." + v.Dev)
	}
	if v.Local != "" {
		sb.WriteString("+" + v.Local)
	}
	return sb.String()
}

// plainRelease: only epoch/release, no pre/post/dev/local or wildcard.
func (v Version) plainRelease() bool {
	return !v.Wildcard && v.Pre == "" && v.Post == "" && v.Dev == "" && v.Local == ""
}

// ParseVersion parses and normalizes a PEP 440 version; wildcard versions
// ("3.8.*") are accepted.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if m := reWildcard.FindStringSubmatch(s); m != nil {
		return Version{Epoch: trimZeros(m[1]), Release: splitRelease(m[2]), Wildcard: true}, nil
	}
	m := reVersion.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}
	group := func(name string) string { return m[reVersion.SubexpIndex(name)] }

	v := Version{Epoch: trimZeros(group("epoch")), Release: splitRelease(group("release"))}
	if group("pre") != "" {
		v.Pre = preLabel(strings.ToLower(group("pre_l"))) + numberOrZero(group("pre_n"))
	}
	if group("post") != "" {
		n := group("post_n1")
		if n == "" {
			n = group("post_n2")
		}
		v.Post = "post" + numberOrZero(n)
	}
	if group("dev") != "" {
		v.Dev = "dev" + numberOrZero(group("dev_n"))
	}
	if local := group("local"); local != "" {
		v.Local = strings.ToLower(reNameSeparators.ReplaceAllString(local, "."))
	}
	return v, nil
}

func preLabel(l string) string {
	switch l {
	case "alpha":
		return "a"
	case "beta":
		return "b"
	case "c", "pre", "preview":
		return "rc"
	default:
		return l
	}
}

func numberOrZero(n string) string {
	if n == "" {
		return "0"
	}
	return trimZeros(n)
}

func trimZeros(n string) string {
	if n == "" {
		return ""
	}
	if t := strings.TrimLeft(n, "0"); t != "" {
		return t
	}
	return "0"
}

func splitRelease(r string) []string {
	parts := strings.Split(r, ".")
	for i, p := range parts {
		parts[i] = trimZeros(p)
	}
	return parts
}

// String renders the clause; without keepFullVersion trailing ".0" release
// segments are dropped ("~=" keeps the two segments it needs).
func (s Specifier) String(keepFullVersion bool) string {
	version := s.Version
	if !keepFullVersion && s.Op != "===" {
		if v, err := ParseVersion(version); err == nil && v.plainRelease() {
			minSegments := 1
			if s.Op == "~=" {
				minSegments = 2
			}
			for len(v.Release) > minSegments && v.Release[len(v.Release)-1] == "0" {
				v.Release = v.Release[:len(v.Release)-1]
			}
			version = v.String()
		}
	}
	return s.Op + version
}

// ReleaseVersion parses the specifier's version.
func (s Specifier) ReleaseVersion() (Version, error) {
	return ParseVersion(s.Version)
}

// ParseSpecifiers parses a comma separated clause list such as
// ">=3.9, <4" (the format of requires-python).
func ParseSpecifiers(text string) ([]Specifier, error) {
	sc := &scanner{input: text}
	specs, err := sc.specifiers(false)
	if err != nil {
		return nil, err
	}
	sc.skipSpace()
	if !sc.eof() {
		return nil, sc.errorf("unexpected %q after version specifiers", sc.rest())
	}
	return specs, nil
}
