package trace

import (
	"sync/atomic"
	"time"
)

var (
	globalSeq   atomic.Uint64
	globalSpans atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 { return globalSeq.Add(1) }

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 { return globalSpans.Add(1) }

// Span is one begin/end pair. The zero span (tracing off or scope filtered
// out) accepts every call and records nothing.
type Span struct {
	tracer  Tracer
	ev      Event // шаблон события: scope, id, parent, name
	started time.Time
	extra   map[string]string
}

func admits(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}

// Begin starts a span under parent (0 for a root span) and emits SpanBegin.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !admits(t, scope) {
		return &Span{}
	}
	s := &Span{
		tracer:  t,
		ev:      Event{Scope: scope, SpanID: NextSpanID(), ParentID: parent, Name: name},
		started: time.Now(),
	}
	begin := s.ev
	begin.Time, begin.Kind = s.started, KindSpanBegin
	t.Emit(&begin)
	return s
}

// Point emits an instant event with no parent.
func Point(t Tracer, scope Scope, name, detail string) {
	point(t, scope, name, detail, 0)
}

func point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !admits(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}

// End emits SpanEnd and returns the span duration; 0 for a disabled span.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	now := time.Now()
	end := s.ev
	end.Time, end.Kind = now, KindSpanEnd
	end.Detail = detail
	end.Elapsed = now.Sub(s.started)
	end.Extra = s.extra
	s.tracer.Emit(&end)
	return end.Elapsed
}

// WithExtra attaches a key-value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for a disabled span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ev.SpanID
}
