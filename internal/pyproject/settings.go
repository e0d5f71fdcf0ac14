package pyproject

import (
	"fmt"
	"strconv"
	"strings"

	"pyprojectfmt/internal/rules"
)

// PyVersion is a major.minor Python release.
type PyVersion struct {
	Major int
	Minor int
}

func (v PyVersion) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// Less reports whether v is an older release than o.
func (v PyVersion) Less(o PyVersion) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// ParsePyVersion parses "3.12".
func ParsePyVersion(s string) (PyVersion, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return PyVersion{}, fmt.Errorf("invalid python version %q: expected MAJOR.MINOR", s)
	}
	ma, err := strconv.ParseUint(major, 10, 8)
	if err != nil {
		return PyVersion{}, fmt.Errorf("invalid python version %q: %w", s, err)
	}
	mi, err := strconv.ParseUint(minor, 10, 8)
	if err != nil {
		return PyVersion{}, fmt.Errorf("invalid python version %q: %w", s, err)
	}
	return PyVersion{Major: int(ma), Minor: int(mi)}, nil
}

func (v PyVersion) python() rules.Python { return rules.Python{Major: v.Major, Minor: v.Minor} }

// Settings are the knobs of one Format call.
type Settings struct {
	ColumnWidth        int
	Indent             int
	KeepFullVersion    bool
	MaxSupportedPython PyVersion
	MinSupportedPython PyVersion
}

// DefaultSettings matches the command line defaults.
func DefaultSettings() Settings {
	return Settings{
		ColumnWidth:        120,
		Indent:             2,
		KeepFullVersion:    false,
		MaxSupportedPython: PyVersion{Major: 3, Minor: 13},
		MinSupportedPython: PyVersion{Major: 3, Minor: 9},
	}
}

// Validate rejects settings the pipeline cannot honour.
func (s Settings) Validate() error {
	switch {
	case s.ColumnWidth < 1:
		return fmt.Errorf("column width must be positive, got %d", s.ColumnWidth)
	case s.Indent < 0:
		return fmt.Errorf("indent must not be negative, got %d", s.Indent)
	case s.MinSupportedPython.Major != 3 || s.MaxSupportedPython.Major != 3:
		return fmt.Errorf("supported python range %s-%s: only 3.x is supported",
			s.MinSupportedPython, s.MaxSupportedPython)
	case s.MaxSupportedPython.Less(s.MinSupportedPython):
		return fmt.Errorf("max supported python %s is older than min supported python %s",
			s.MaxSupportedPython, s.MinSupportedPython)
	}
	return nil
}

// Fingerprint identifies the settings in cache keys.
func (s Settings) Fingerprint() string {
	return fmt.Sprintf("w%d:i%d:k%t:py%s-%s",
		s.ColumnWidth, s.Indent, s.KeepFullVersion, s.MinSupportedPython, s.MaxSupportedPython)
}
