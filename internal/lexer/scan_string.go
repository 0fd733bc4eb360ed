package lexer

import (
	"lugha/internal/diag"
	"lugha/internal/token"
)

// scanString: "..." вместе с кавычками. '\' экранирует следующий байт,
// перевод строки внутри литерала разрешён. Незакрытая строка не даёт токена.
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '"':
			return lx.emit(token.StringLit, start), true
		case '\\':
			lx.cursor.Bump()
		}
	}
	lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string")
	return token.Token{}, false
}
