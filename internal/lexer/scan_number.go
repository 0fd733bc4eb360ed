package lexer

import (
	"lugha/internal/token"
)

// scanNumber: цифры и не более одной запятой как десятичного разделителя ("3,14").
// Запятая входит в число, только если за ней сразу идёт цифра, иначе
// она остаётся разделителем аргументов ("f(1, 2)"). Вторая запятая число завершает.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	seenComma := false
	for {
		r, sz := lx.cursor.PeekRune()
		if sz == 0 {
			break
		}
		if isDigitRune(r) {
			lx.cursor.BumpRune()
			continue
		}
		if r == ',' && !seenComma {
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			if next, _ := lx.cursor.PeekRune(); isDigitRune(next) {
				seenComma = true
				continue
			}
			lx.cursor.Reset(m)
		}
		break
	}
	return lx.emit(token.NumberLit, start)
}
