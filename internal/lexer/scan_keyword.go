package lexer

import (
	"unicode/utf8"

	"lugha/internal/token"
)

// scanKeyword пробует кандидатов, зарегистрированных под ведущей буквой,
// в порядке таблицы. Каждая попытка идёт руна за руной; при несовпадении
// курсор откатывается ровно к началу токена.
func (lx *Lexer) scanKeyword() (token.Token, bool) {
	lead, _ := lx.cursor.PeekRune()
	candidates := token.KeywordCandidates(lead)
	if len(candidates) == 0 {
		return token.Token{}, false
	}

	start := lx.cursor.Mark()
	for _, c := range candidates {
		lx.cursor.BumpRune()
		if lx.matchSuffix(c.Suffix) {
			return lx.emit(c.Kind, start), true
		}
		lx.cursor.Reset(start)
	}
	return token.Token{}, false
}

// matchSuffix съедает suffix. Завершающий пробел совпадает с пробелом,
// а также с концом файла или '\n', '\t', '\r', которые не поглощаются.
func (lx *Lexer) matchSuffix(suffix string) bool {
	for i, want := range suffix {
		last := i+utf8.RuneLen(want) == len(suffix)
		if want == ' ' && last {
			if lx.cursor.EOF() || isKeywordDelimiter(lx.cursor.Peek()) {
				return true
			}
			return lx.cursor.Eat(' ')
		}
		got, sz := lx.cursor.PeekRune()
		if sz == 0 || got != want {
			return false
		}
		lx.cursor.BumpRune()
	}
	return true
}
