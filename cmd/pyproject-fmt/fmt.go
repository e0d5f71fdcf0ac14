package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pyprojectfmt/internal/diagfmt"
	"pyprojectfmt/internal/driver"
	"pyprojectfmt/internal/observ"
	"pyprojectfmt/internal/prof"
	"pyprojectfmt/internal/trace"
	"pyprojectfmt/internal/ui"
	"pyprojectfmt/internal/version"
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path|-> [path...]",
		Short: "Format pyproject.toml files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFmt,
	}
	addFormatFlags(cmd)
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyColor(cfg.color)

	session, err := prof.Start(cfg.profile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := session.Stop(); stopErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "pyproject-fmt: %v\n", stopErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var timer *observ.Timer
	if cfg.timings {
		timer = observ.NewTimer()
	}
	ctx, tracer, cleanup, err := setupTracing(ctx, cfg, cmd.ErrOrStderr(), timer)
	if err != nil {
		return err
	}
	defer cleanup()

	files, err := driver.CollectFiles(ctx, args)
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Settings:    cfg.settings,
		Check:       cfg.check,
		Stdout:      cfg.stdout,
		Diff:        cfg.diff,
		Jobs:        cfg.jobs,
		ToolVersion: version.CacheTag(),
		Stdin:       cmd.InOrStdin(),
	}
	if !cfg.noCache {
		cache, err := driver.OpenDiskCache("pyproject-fmt")
		if err != nil {
			// без кэша просто медленнее
			trace.Point(tracer, trace.ScopeDriver, "cache", "disabled: "+err.Error())
		} else {
			opts.Cache = cache
		}
	}

	useTUI := progressView(cfg, files, os.Stdout)

	var results []driver.FormatResult
	if useTUI {
		results, err = runFormatWithUI(ctx, "pyproject-fmt", files, opts)
	} else {
		results, err = driver.FormatFiles(ctx, files, opts)
	}
	if err != nil {
		_ = trace.DumpOnFailure(tracer, cmd.ErrOrStderr())
		return err
	}

	failed, changed := report(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, cfg, useTUI)
	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if failed > 0 {
		_ = trace.DumpOnFailure(tracer, cmd.ErrOrStderr(), failedPaths(results)...)
		return &exitError{reason: fmt.Sprintf("%d file(s) failed", failed)}
	}
	if cfg.check && changed > 0 {
		return &exitError{reason: "formatting changes required"}
	}
	return nil
}

// report prints per-file outcomes and the summary, returning the number of
// failed and changed files.
func report(stdout, stderr io.Writer, results []driver.FormatResult, cfg runConfig, quietLines bool) (failed, changed int) {
	errColor := color.New(color.FgRed, color.Bold)
	var failures []diagfmt.FileReport
	for _, res := range results {
		if res.Err != nil {
			failed++
			failures = append(failures, diagfmt.FromError(res.Path, res.Err))
			continue
		}
		if res.Changed {
			changed++
		}
		if res.Formatted != nil {
			_, _ = stdout.Write(res.Formatted)
		}
		if res.Diff != "" {
			fmt.Fprint(stdout, colorDiff(res.Diff))
		}
		if res.Changed && !cfg.quiet && !quietLines && !cfg.stdout {
			verb := "reformatted"
			if cfg.check {
				verb = "would reformat"
			}
			fmt.Fprintf(stderr, "%s %s\n", verb, res.Path)
		}
	}
	reportFailures(stderr, failures, cfg.errorFormat, errColor)
	if !cfg.quiet && !cfg.stdout {
		fmt.Fprintln(stderr, ui.Summary(results, cfg.check, !color.NoColor))
	}
	return failed, changed
}

func reportFailures(stderr io.Writer, failures []diagfmt.FileReport, format string, errColor *color.Color) {
	if len(failures) == 0 {
		return
	}
	if format == "json" {
		if err := diagfmt.JSON(stderr, failures, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
			fmt.Fprintf(stderr, "pyproject-fmt: %v\n", err)
		}
		return
	}
	cwd, _ := os.Getwd()
	for _, f := range failures {
		if f.File == nil {
			fmt.Fprintf(stderr, "%s %s: %v\n", errColor.Sprint("error:"), f.Path, f.Err)
			continue
		}
		fmt.Fprintf(stderr, "%s %s: invalid TOML\n", errColor.Sprint("error:"), f.Path)
		diagfmt.Pretty(stderr, f.File, f.Diagnostics, diagfmt.PrettyOpts{
			Color:     !color.NoColor,
			Context:   1,
			BaseDir:   cwd,
			ShowNotes: true,
		})
	}
}

func failedPaths(results []driver.FormatResult) []string {
	var paths []string
	for _, r := range results {
		if r.Err != nil {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

func colorDiff(diff string) string {
	var (
		header = color.New(color.Bold)
		hunk   = color.New(color.FgCyan)
		added  = color.New(color.FgGreen)
		gone   = color.New(color.FgRed)
	)
	lines := strings.SplitAfter(diff, "\n")
	var sb strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			sb.WriteString(header.Sprint(line))
		case strings.HasPrefix(line, "@@"):
			sb.WriteString(hunk.Sprint(line))
		case strings.HasPrefix(line, "+"):
			sb.WriteString(added.Sprint(line))
		case strings.HasPrefix(line, "-"):
			sb.WriteString(gone.Sprint(line))
		default:
			sb.WriteString(line)
		}
	}
	return sb.String()
}

func applyColor(mode string) {
	switch strings.ToLower(mode) {
	case "on", "always":
		color.NoColor = false
	case "off", "never":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stderr)
	}
}
