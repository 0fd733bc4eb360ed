package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lugha/internal/source"
	"lugha/internal/token"
)

// CheckTokenInvariants runs the token-stream invariants on a lexed file:
// 1) the stream is non-empty and ends with exactly one EOF token
// 2) start offsets are strictly increasing
// 3) every span points at sf and lies within its content
// 4) every token except EOF and RawLit is non-empty
// 5) line numbers never decrease and start at 1
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	last := len(toks) - 1
	if toks[last].Kind != token.EOF {
		return fmt.Errorf("last token is %s, want EOF", toks[last].Kind)
	}

	var prevLine uint32 = 1
	for i, tok := range toks {
		sp := tok.Span
		if tok.Kind == token.EOF && i != last {
			return fmt.Errorf("EOF at index %d before end of stream", i)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > lenContent {
			return fmt.Errorf("token %d span %v outside content of %d bytes", i, sp, lenContent)
		}
		if sp.Empty() && tok.Kind != token.EOF && tok.Kind != token.RawLit {
			return fmt.Errorf("token %d (%s) has empty span", i, tok.Kind)
		}
		if i > 0 && sp.Start <= toks[i-1].Span.Start {
			return fmt.Errorf("token %d starts at %d, not after %d", i, sp.Start, toks[i-1].Span.Start)
		}
		if tok.Line < prevLine {
			return fmt.Errorf("token %d line %d goes back from %d", i, tok.Line, prevLine)
		}
		prevLine = tok.Line
	}
	return nil
}
