package trace

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// StreamTracer writes every admitted event to w as it happens.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
}

// NewStreamTracer creates a new StreamTracer.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ev.Seq = NextSeq()
	// ошибки записи трейса не должны ронять форматирование
	_, _ = t.w.Write(FormatEvent(ev, t.format))
}

// Flush pushes buffered output, if the writer buffers.
func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes, then closes the writer when it owns a file.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }

// stderr must never be closed by StreamTracer.Close.
type nopCloser struct{ io.Writer }

// fileSink buffers writes to a trace file.
type fileSink struct {
	*bufio.Writer
	f *os.File
}

func (s fileSink) Close() error {
	if err := s.Flush(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}
