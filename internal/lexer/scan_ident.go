package lexer

import (
	"unicode/utf8"

	"lugha/internal/diag"
	"lugha/internal/token"
)

// scanIdent съедает первую руну безусловно, затем всё до разрушающего
// символа или конца файла. Разрушающий символ в токен не входит.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	badUTF8 := false
	for first := true; !lx.cursor.EOF(); first = false {
		if !first && isDestructive(lx.cursor.Peek()) {
			break
		}
		if r, sz := lx.cursor.PeekRune(); r == utf8.RuneError && sz == 1 {
			badUTF8 = true
		}
		lx.cursor.BumpRune()
	}
	tok := lx.emit(token.Ident, start)
	if badUTF8 {
		lx.errLex(diag.LexUnknownChar, tok.Span, "invalid UTF-8 encoding in identifier")
	}
	return tok
}
