// Package trace records what the jsgreen pipeline is doing: driver commands,
// lex and build phases, per-file work and factory fallbacks.
//
// Tracers travel through context together with the current span and the
// BuildDir worker lane:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.BeginCtx(ctx, trace.ScopePhase, "build-dir")
//	defer span.End("")
//
// Levels: off, error, phase (driver + phases), detail (+ files), debug
// (+ node-level points such as unknown fallbacks).
//
// Storage: stream buffers formatted events (text or NDJSON) until Flush,
// ring keeps the last N events in memory for a dump at exit, both fans out
// to the two.
package trace
