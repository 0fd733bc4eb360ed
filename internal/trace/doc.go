// Package trace provides the tracing subsystem of the lugha tool.
//
// Tracing records the boundaries of driver operations, passes (lex,
// transpile) and per-file work, which helps explain slow directory builds.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	lugha transpile --trace=- --trace-level=phase main.lugha
//	lugha build --trace=run.ndjson
//
// A .ndjson or .jsonl path selects the JSON lines format; file output is
// buffered until the run ends.
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only error points
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
