package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"pyprojectfmt/internal/driver"
)

// uiMode selects the live progress view of a formatting run.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

// значение часто приходит из PYPROJECT_FMT_UI, поэтому понимаем и булевы записи
var uiModeAliases = map[string]uiMode{
	"":      uiModeAuto,
	"auto":  uiModeAuto,
	"on":    uiModeOn,
	"true":  uiModeOn,
	"yes":   uiModeOn,
	"1":     uiModeOn,
	"off":   uiModeOff,
	"false": uiModeOff,
	"no":    uiModeOff,
	"0":     uiModeOff,
}

func readUIMode(value string) (uiMode, error) {
	if mode, ok := uiModeAliases[strings.ToLower(strings.TrimSpace(value))]; ok {
		return mode, nil
	}
	return "", fmt.Errorf("--ui: unknown progress mode %q (auto, on or off; also settable via PYPROJECT_FMT_UI)", value)
}

// progressView decides whether the run draws the progress view. The view
// owns stdout, so formatted text on stdout, diffs, --quiet and stdin input
// switch it off whatever the mode says.
func progressView(cfg runConfig, files []string, stdout *os.File) bool {
	if cfg.stdout || cfg.diff || cfg.quiet || slices.Contains(files, driver.StdinPath) {
		return false
	}
	switch cfg.ui {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(stdout)
	}
}
