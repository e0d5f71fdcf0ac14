package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopeFile, true},
		{LevelPhase, ScopePass, false},
		{LevelDetail, ScopePass, true},
		{LevelDebug, ScopePass, true},
		{LevelError, ScopePass, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Fatalf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if l.String() != s {
			t.Fatalf("round trip %q -> %q", s, l.String())
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestStartNestsSpans(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	ctx, file := Start(ctx, ScopeFile, "file:pyproject.toml")
	_, pass := Start(ctx, ScopePass, "parse")
	pass.End("")
	file.WithExtra("changed", "true").End("")

	events := ring.Snapshot()
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[1].Name != "parse" || events[1].ParentID != file.ID() {
		t.Fatalf("parse span not parented to file span: %+v", events[1])
	}
	if events[3].Kind != KindSpanEnd || events[3].Extra["changed"] != "true" {
		t.Fatalf("unexpected end event: %+v", events[3])
	}
}

func TestSpanFilteredByLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, file := Start(ctx, ScopeFile, "file:a")
	_, pass := Start(ctx, ScopePass, "parse")
	pass.End("")
	file.End("")

	out := buf.String()
	if strings.Contains(out, "parse") {
		t.Fatalf("pass span emitted at phase level:\n%s", out)
	}
	if strings.Count(out, "file:a") != 2 {
		t.Fatalf("expected begin and end of file span:\n%s", out)
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeDriver, "cache", "hit")

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["kind"] != "point" || got["scope"] != "driver" || got["detail"] != "hit" {
		t.Fatalf("unexpected event: %v", got)
	}
}

func TestRingWraps(t *testing.T) {
	ring := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(ring, ScopePass, name, "")
	}
	events := ring.Snapshot()
	if len(events) != 2 || events[0].Name != "b" || events[1].Name != "c" {
		t.Fatalf("unexpected snapshot: %+v", events)
	}

	var buf bytes.Buffer
	if err := DumpOnFailure(NewMultiTracer(LevelDebug, Nop, ring), &buf); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(buf.String(), "• c") {
		t.Fatalf("dump missing event:\n%s", buf.String())
	}
}

func TestNopContext(t *testing.T) {
	ctx, span := Start(context.Background(), ScopePass, "x")
	if span.ID() != 0 || CurrentSpan(ctx) != 0 {
		t.Fatalf("nop tracer produced a span")
	}
	if span.End("") != 0 {
		t.Fatalf("nop span has duration")
	}
}

func TestMultiRespectsChildLevels(t *testing.T) {
	phase := NewRingTracer(8, LevelPhase)
	detail := NewRingTracer(8, LevelDetail)
	multi := NewMultiTracer(LevelDetail, NewMultiTracer(LevelPhase, phase), detail)

	ctx := WithTracer(context.Background(), multi)
	fctx, file := Start(ctx, ScopeFile, "pyproject.toml")
	_, pass := Start(fctx, ScopePass, "parse")
	pass.End("")
	file.End("")

	if got := len(phase.Snapshot()); got != 2 {
		t.Fatalf("phase tracer saw %d events, want 2", got)
	}
	if got := len(detail.Snapshot()); got != 4 {
		t.Fatalf("detail tracer saw %d events, want 4", got)
	}
	if multi.Ring() != phase {
		t.Fatalf("Ring should find the nested ring first")
	}
}

func TestRingFilesSelectsSubtrees(t *testing.T) {
	ring := NewRingTracer(64, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	dctx, run := Start(ctx, ScopeDriver, "format")
	for _, path := range []string{"a/pyproject.toml", "b/pyproject.toml"} {
		fctx, file := Start(dctx, ScopeFile, FileSpanName(path))
		Note(fctx, ScopeFile, "cache", "miss "+path)
		_, pass := Start(fctx, ScopePass, "parse")
		pass.End("")
		file.End("")
	}
	run.End("")

	events := ring.Files("b/pyproject.toml")
	var names []string
	for _, ev := range events {
		names = append(names, ev.Kind.String()+":"+ev.Name)
		if strings.Contains(ev.Detail, "a/pyproject.toml") {
			t.Fatalf("event of another file leaked: %+v", ev)
		}
	}
	want := []string{
		"begin:format",
		"begin:file:b/pyproject.toml",
		"point:cache",
		"begin:parse",
		"end:parse",
		"end:file:b/pyproject.toml",
		"end:format",
	}
	if strings.Join(names, " ") != strings.Join(want, " ") {
		t.Fatalf("events = %v, want %v", names, want)
	}

	var buf bytes.Buffer
	if err := DumpOnFailure(ring, &buf, "b/pyproject.toml"); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if strings.Contains(buf.String(), "a/pyproject.toml") || !strings.Contains(buf.String(), "b/pyproject.toml") {
		t.Fatalf("unexpected dump:\n%s", buf.String())
	}
}

func TestNewFileOutput(t *testing.T) {
	path := t.TempDir() + "/trace.ndjson"
	tr, err := New(Config{Level: LevelPhase, Mode: ModeStream, OutputPath: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	Point(tr, ScopeDriver, "start", "")
	if err := tr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &got); err != nil {
		t.Fatalf("trace file is not NDJSON: %v\n%s", err, data)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []StorageMode{ModeStream, ModeRing, ModeBoth} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("tape"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
