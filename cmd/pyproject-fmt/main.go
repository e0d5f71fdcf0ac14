package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pyprojectfmt/internal/version"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pyproject-fmt [flags] <path|-> [path...]",
		Short: "Format pyproject.toml files",
		Long: `pyproject-fmt rewrites pyproject.toml files into a canonical form:
tables and keys in a fixed order, dependency specifiers normalized,
Python version classifiers kept in sync with requires-python.
Comments and blank lines travel with the content they belong to.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// пути идут прямо в корневую команду, подкоманды разбираются раньше
		Args: cobra.ArbitraryArgs,
		RunE: runFmt,
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.String("trace", "", "write trace events to file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	// корневая команда форматирует так же, как fmt
	addFormatFlags(root)
	root.AddCommand(newFmtCmd(), newVersionCmd())
	return root
}

// exitError carries a failure that was already reported to the user.
type exitError struct{ reason string }

func (e *exitError) Error() string { return e.reason }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var exit *exitError
		if !errors.As(err, &exit) {
			fmt.Fprintf(os.Stderr, "pyproject-fmt: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
