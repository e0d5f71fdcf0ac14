package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pyprojectfmt/internal/prof"
	"pyprojectfmt/internal/pyproject"
)

// EnvPrefix is prepended to upper-cased flag names: --column-width is
// PYPROJECT_FMT_COLUMN_WIDTH.
const EnvPrefix = "PYPROJECT_FMT"

func addFormatFlags(cmd *cobra.Command) {
	def := pyproject.DefaultSettings()
	f := cmd.Flags()
	f.Bool("check", false, "report files that would change, do not write them")
	f.Bool("stdout", false, "print formatted content instead of rewriting files")
	f.Bool("diff", false, "print a unified diff of the changes")
	f.Int("column-width", def.ColumnWidth, "maximum line width before arrays are expanded")
	f.Int("indent", def.Indent, "spaces per indentation level")
	f.Bool("keep-full-version", def.KeepFullVersion, "keep trailing .0 segments in dependency versions")
	f.String("max-supported-python", def.MaxSupportedPython.String(), "newest Python version for classifiers")
	f.String("min-supported-python", def.MinSupportedPython.String(), "oldest Python version for classifiers")
	f.Int("jobs", 0, "files formatted concurrently (0 = number of CPUs)")
	f.Bool("no-cache", false, "do not read or write the formatted-file cache")
	f.String("ui", "auto", "progress UI (auto|on|off)")
	f.String("error-format", "pretty", "how failures are printed (pretty|json)")
	f.Bool("timings", false, "print accumulated per-pass timings after the run")
}

// runConfig is everything runFmt needs, resolved from flags and environment.
type runConfig struct {
	settings    pyproject.Settings
	check       bool
	stdout      bool
	diff        bool
	jobs        int
	noCache     bool
	ui          uiMode
	color       string
	quiet       bool
	trace       string
	traceLevel  string
	traceMode   string
	traceFormat string
	profile     prof.Options
	timings     bool
	errorFormat string
}

// loadConfig merges flags with PYPROJECT_FMT_* variables: an explicit flag
// wins over the environment, the environment over flag defaults.
func loadConfig(cmd *cobra.Command) (runConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if err := v.BindPFlags(fs); err != nil {
			return runConfig{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	maxPy, err := pyproject.ParsePyVersion(v.GetString("max-supported-python"))
	if err != nil {
		return runConfig{}, fmt.Errorf("--max-supported-python: %w", err)
	}
	minPy, err := pyproject.ParsePyVersion(v.GetString("min-supported-python"))
	if err != nil {
		return runConfig{}, fmt.Errorf("--min-supported-python: %w", err)
	}
	mode, err := readUIMode(v.GetString("ui"))
	if err != nil {
		return runConfig{}, err
	}

	cfg := runConfig{
		settings: pyproject.Settings{
			ColumnWidth:        v.GetInt("column-width"),
			Indent:             v.GetInt("indent"),
			KeepFullVersion:    v.GetBool("keep-full-version"),
			MaxSupportedPython: maxPy,
			MinSupportedPython: minPy,
		},
		check:       v.GetBool("check"),
		stdout:      v.GetBool("stdout"),
		diff:        v.GetBool("diff"),
		jobs:        v.GetInt("jobs"),
		noCache:     v.GetBool("no-cache"),
		ui:          mode,
		color:       v.GetString("color"),
		quiet:       v.GetBool("quiet"),
		trace:       v.GetString("trace"),
		traceLevel:  v.GetString("trace-level"),
		traceMode:   v.GetString("trace-mode"),
		traceFormat: v.GetString("trace-format"),
		timings:     v.GetBool("timings"),
		errorFormat: strings.ToLower(v.GetString("error-format")),
		profile: prof.Options{
			CPUProfile:   v.GetString("cpu-profile"),
			MemProfile:   v.GetString("mem-profile"),
			RuntimeTrace: v.GetString("runtime-trace"),
		},
	}
	if err := cfg.settings.Validate(); err != nil {
		return runConfig{}, err
	}
	if cfg.errorFormat != "pretty" && cfg.errorFormat != "json" {
		return runConfig{}, fmt.Errorf("invalid --error-format %q (want pretty or json)", cfg.errorFormat)
	}
	if cfg.stdout && cfg.check {
		return runConfig{}, fmt.Errorf("--stdout cannot be used with --check")
	}
	return cfg, nil
}
