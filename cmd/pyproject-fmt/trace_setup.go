package main

import (
	"context"
	"fmt"
	"io"

	"pyprojectfmt/internal/observ"
	"pyprojectfmt/internal/trace"
)

// setupTracing builds the tracer described by cfg and attaches it to ctx.
// A non-nil timer receives pass spans regardless of the trace level.
// The cleanup function flushes and closes it; it is safe to call once.
func setupTracing(ctx context.Context, cfg runConfig, stderr io.Writer, timer *observ.Timer) (context.Context, trace.Tracer, func(), error) {
	level, err := trace.ParseLevel(cfg.traceLevel)
	if err != nil {
		return ctx, nil, nil, err
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && cfg.trace != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		if timer != nil {
			return trace.WithTracer(ctx, timer), timer, func() {}, nil
		}
		return trace.WithTracer(ctx, trace.Nop), trace.Nop, func() {}, nil
	}

	mode, err := trace.ParseMode(cfg.traceMode)
	if err != nil {
		return ctx, nil, nil, err
	}
	format, err := trace.ParseFormat(cfg.traceFormat)
	if err != nil {
		return ctx, nil, nil, err
	}

	var tracer trace.Tracer
	tracer, err = trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: cfg.trace,
	})
	if err != nil {
		return ctx, nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	if timer != nil {
		tracer = trace.NewMultiTracer(max(level, timer.Level()), tracer, timer)
	}

	cleanup := func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(stderr, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(stderr, "trace: close error: %v\n", err)
		}
	}
	return trace.WithTracer(ctx, tracer), tracer, cleanup, nil
}
