// Package observ aggregates per-pass timings across a formatting run.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"pyprojectfmt/internal/trace"
)

// Phase records the accumulated duration of one formatter pass.
type Phase struct {
	Name  string
	Dur   time.Duration
	Calls int
}

// Timer collects pass spans from the trace stream. It is a trace.Tracer, so
// it can sit next to the user's tracer in a trace.MultiTracer.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
	index  map[string]int
	files  int
	wall   time.Duration
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 8), index: make(map[string]int)}
}

// Emit folds span end events: pass spans by name, file spans into a count,
// the driver span into the wall time.
func (t *Timer) Emit(ev *trace.Event) {
	if ev == nil || ev.Kind != trace.KindSpanEnd {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	switch ev.Scope {
	case trace.ScopeDriver:
		t.wall += ev.Elapsed
	case trace.ScopeFile:
		t.files++
	case trace.ScopePass:
		idx, ok := t.index[ev.Name]
		if !ok {
			idx = len(t.phases)
			t.index[ev.Name] = idx
			t.phases = append(t.phases, Phase{Name: ev.Name})
		}
		t.phases[idx].Dur += ev.Elapsed
		t.phases[idx].Calls++
	}
}

func (t *Timer) Flush() error       { return nil }
func (t *Timer) Close() error       { return nil }
func (t *Timer) Level() trace.Level { return trace.LevelDetail }
func (t *Timer) Enabled() bool      { return true }

// Summary returns a human-readable string summarizing all tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms  // %d calls\n", p.Name, p.DurationMS, p.Calls)
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", report.TotalMS)
	if report.Files > 0 {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms  // %d files\n", "wall", report.WallMS, report.Files)
	}
	return sb.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Calls      int     `json:"calls"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	WallMS  float64       `json:"wall_ms,omitempty"`
	Files   int           `json:"files"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и суммарную длительность в миллисекундах.
// Total sums pass time over all workers, so it can exceed the wall time.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	report := Report{
		Files:  t.files,
		WallMS: durationToMillis(t.wall),
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Calls:      phase.Calls,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
