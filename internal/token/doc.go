// Package token defines lexical token kinds and the keyword dispatch table for lugha.
// Invariants:
//   - Token carries no lexeme copy: text is recovered by slicing the source with Span.
//   - Tokens of one stream have strictly increasing Span.Start; the last one is EOF.
//   - Keywords are recognised by their leading rune and an ordered list of
//     suffix candidates; the first candidate that matches wins.
package token
