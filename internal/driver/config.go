package driver

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"pyprojectfmt/internal/pyproject"
)

// fileConfig mirrors [tool.pyproject-fmt]; nil fields were not set.
type fileConfig struct {
	Tool struct {
		PyprojectFmt struct {
			ColumnWidth        *int    `toml:"column_width"`
			Indent             *int    `toml:"indent"`
			KeepFullVersion    *bool   `toml:"keep_full_version"`
			MaxSupportedPython *string `toml:"max_supported_python"`
			MinSupportedPython *string `toml:"min_supported_python"`
		} `toml:"pyproject-fmt"`
	} `toml:"tool"`
}

// Overrides reads [tool.pyproject-fmt] from content and applies it on top of
// base. Values in the file win over the command line.
//
// A document the decoder rejects (duplicate tables are legal input for the
// formatter) keeps base; the formatter reports real syntax errors itself.
func Overrides(content string, base pyproject.Settings) (pyproject.Settings, error) {
	var cfg fileConfig
	meta, err := toml.Decode(content, &cfg)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return base, nil
		}
		return base, fmt.Errorf("[tool.pyproject-fmt]: %w", err)
	}
	if !meta.IsDefined("tool", "pyproject-fmt") {
		return base, nil
	}

	s := base
	sec := cfg.Tool.PyprojectFmt
	if sec.ColumnWidth != nil {
		s.ColumnWidth = *sec.ColumnWidth
	}
	if sec.Indent != nil {
		s.Indent = *sec.Indent
	}
	if sec.KeepFullVersion != nil {
		s.KeepFullVersion = *sec.KeepFullVersion
	}
	if sec.MaxSupportedPython != nil {
		v, err := pyproject.ParsePyVersion(*sec.MaxSupportedPython)
		if err != nil {
			return base, fmt.Errorf("[tool.pyproject-fmt].max_supported_python: %w", err)
		}
		s.MaxSupportedPython = v
	}
	if sec.MinSupportedPython != nil {
		v, err := pyproject.ParsePyVersion(*sec.MinSupportedPython)
		if err != nil {
			return base, fmt.Errorf("[tool.pyproject-fmt].min_supported_python: %w", err)
		}
		s.MinSupportedPython = v
	}
	if err := s.Validate(); err != nil {
		return base, fmt.Errorf("[tool.pyproject-fmt]: %w", err)
	}
	return s, nil
}
