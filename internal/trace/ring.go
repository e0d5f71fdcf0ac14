package trace

import (
	"io"
	"sync"
)

const defaultRingSize = 4096

// RingTracer keeps the last N events in memory for post-mortem dumps.
type RingTracer struct {
	mu    sync.RWMutex
	buf   []Event
	next  int // слот для следующей записи
	count int
	level Level
}

// NewRingTracer creates a ring holding up to capacity events.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{buf: make([]Event, capacity), level: level}
}

// Emit stores a copy of ev, overwriting the oldest event when full.
func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf[t.next] = *ev
	t.buf[t.next].Seq = NextSeq()
	t.next = (t.next + 1) % len(t.buf)
	t.count = min(t.count+1, len(t.buf))
}

// Snapshot returns the stored events oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Event, 0, t.count)
	start := (t.next - t.count + len(t.buf)) % len(t.buf)
	for i := range t.count {
		out = append(out, t.buf[(start+i)%len(t.buf)])
	}
	return out
}

// Files returns the events of the given files' span trees plus driver-level
// events. Spans that began before the ring wrapped cannot be attributed and
// are left out.
func (t *RingTracer) Files(paths ...string) []Event {
	want := make(map[string]bool, len(paths))
	for _, p := range paths {
		want[FileSpanName(p)] = true
	}
	live := make(map[uint64]bool)
	var out []Event
	for _, ev := range t.Snapshot() {
		switch {
		case ev.Scope == ScopeDriver:
		case ev.Scope == ScopeFile && ev.Kind != KindPoint && want[ev.Name]:
			live[ev.SpanID] = true
		case ev.ParentID != 0 && live[ev.ParentID]:
			if ev.SpanID != 0 {
				live[ev.SpanID] = true
			}
		default:
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Dump writes all stored events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	return writeEvents(w, t.Snapshot(), format)
}

func writeEvents(w io.Writer, events []Event, format Format) error {
	for i := range events {
		if _, err := w.Write(FormatEvent(&events[i], format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
