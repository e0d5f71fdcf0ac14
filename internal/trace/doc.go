// Package trace records what pyproject-fmt is doing while it runs.
//
// Events are spans (begin/end pairs) and points, grouped by scope:
//
//   - ScopeDriver: one CLI invocation (discovery, cache, worker pool)
//   - ScopeFile: one pyproject.toml going through the pipeline
//   - ScopePass: a single pipeline pass (parse, tables, rule sets, reorder, print)
//
// The level decides which scopes are emitted:
//
//	off < error < phase (driver+file) < detail (+pass) < debug (everything)
//
// Tracers travel through context.Context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
//
// Output is a text or NDJSON stream (stderr or a file), an in-memory ring
// dumped on failure, or both.
package trace
