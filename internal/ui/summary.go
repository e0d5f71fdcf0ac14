package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pyprojectfmt/internal/driver"
)

// Counts tallies a run.
type Counts struct {
	Total     int
	Changed   int
	Unchanged int
	Cached    int
	Failed    int
}

// Count classifies results.
func Count(results []driver.FormatResult) Counts {
	c := Counts{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			c.Failed++
		case r.Cached:
			c.Cached++
		case r.Changed:
			c.Changed++
		default:
			c.Unchanged++
		}
	}
	return c
}

// Summary renders a one-line tally, e.g. "3 files: 1 reformatted, 2 unchanged".
// check switches the wording to "would reformat".
func Summary(results []driver.FormatResult, check, styled bool) string {
	c := Count(results)
	verb := "reformatted"
	if check {
		verb = "would reformat"
	}

	style := func(color string) lipgloss.Style {
		if !styled {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	}

	parts := make([]string, 0, 4)
	if c.Changed > 0 {
		parts = append(parts, style("3").Render(fmt.Sprintf("%d %s", c.Changed, verb)))
	}
	if n := c.Unchanged + c.Cached; n > 0 {
		text := fmt.Sprintf("%d unchanged", n)
		if c.Cached > 0 {
			text += fmt.Sprintf(" (%d cached)", c.Cached)
		}
		parts = append(parts, style("2").Render(text))
	}
	if c.Failed > 0 {
		parts = append(parts, style("1").Render(fmt.Sprintf("%d failed", c.Failed)))
	}

	noun := "files"
	if c.Total == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%d %s: %s", c.Total, noun, strings.Join(parts, ", "))
}
