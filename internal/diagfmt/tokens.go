package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lugha/internal/source"
	"lugha/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Line  uint32 `json:"line"`
	Start uint32 `json:"start"`
	Len   uint32 `json:"len"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if text := tokenText(tok, fs); text != "" {
			fmt.Fprintf(w, " %q", text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d (line %d)\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col, tok.Line)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tokenText(tok, fs),
			Line:  tok.Line,
			Start: tok.Start(),
			Len:   tok.Len(),
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func tokenText(tok token.Token, fs *source.FileSet) string {
	if fs == nil || !fs.Has(tok.Span.File) {
		return ""
	}
	return tok.Text(fs.Get(tok.Span.File).Content)
}
