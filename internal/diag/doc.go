// Package diag defines the diagnostic model shared by the lexer and the transpiler.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings of a run
//     (unterminated literals, unexpected tokens, unbound identifiers, ...).
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Policy
//
// Diagnostics are append-only and never abort processing. Every phase records
// what went wrong and keeps going, so callers always receive partial output
// together with the list of problems.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Origin: the phase that produced it (lexer, transpiler, driver).
//   - Severity: tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code: compact numeric identifier (see codes.go) with stable string form
//     such as LEX1001 or SYN2001. Code ranges determine Origin.
//   - Message: human oriented text; keep it short and actionable.
//   - Primary span: the canonical source.Span pointing to the issue.
//   - Notes: optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Phases hold a diag.Reporter and build values with NewError/NewWarning,
// attach notes with WithNote and hand them over with ReportTo. BagReporter
// aggregates into a Bag, which supports sorting, deduplication and filtering
// by origin. Tee fans out; DedupReporter drops exact repeats.
//
// # Consumers
//
//   - internal/diagfmt: renders diagnostics as pretty text or JSON.
//   - internal/driver: collects bags per file and hands them to the CLI.
package diag
