package lexer

import (
	"lugha/internal/diag"
	"lugha/internal/token"
)

// scanOperator: сначала 2-символьные (==, !=, <=, >=), затем 1-символьные.
// '-' перед '{' открывает сырой литерал, '"' открывает строку.
// ok == false означает, что токен не собран (ошибка уже отрепорчена).
func (lx *Lexer) scanOperator() (tok token.Token, ok bool) {
	start := lx.cursor.Mark()

	switch {
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start), true
	case lx.try2('!', '='):
		return lx.emit(token.BangEq, start), true
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start), true
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start), true
	case lx.try2('-', '{'):
		return lx.scanRawLiteral(start)
	}

	var k token.Kind
	switch lx.cursor.Peek() {
	case '"':
		return lx.scanString()
	case '=':
		k = token.Assign
	case '!':
		k = token.Bang
	case '<':
		k = token.Lt
	case '>':
		k = token.Gt
	case '(':
		k = token.LParen
	case ')':
		k = token.RParen
	case '+':
		k = token.Plus
	case '-':
		k = token.Minus
	case '*':
		k = token.Star
	case '\\', '/':
		k = token.Slash
	case ',':
		k = token.Comma
	default:
		return lx.scanIdent(), true
	}
	lx.cursor.Bump()
	return lx.emit(k, start), true
}

// scanRawLiteral вызывается после "-{". Скобки вложенные; литерал закрывает
// парная '}', за которой может стоять необязательный '-'.
// Span токена: внутренний текст без пробельных краёв.
func (lx *Lexer) scanRawLiteral(start Mark) (token.Token, bool) {
	inner := lx.cursor.Mark()
	depth := 1
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 {
			break
		}
		lx.cursor.Bump()
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedRawLit, lx.cursor.SpanFrom(start), "unterminated raw literal")
		return token.Token{}, false
	}

	sp := lx.cursor.SpanFrom(inner)
	content := lx.file.Content
	for sp.Start < sp.End && isSpaceByte(content[sp.Start]) {
		sp.Start++
	}
	for sp.End > sp.Start && isSpaceByte(content[sp.End-1]) {
		sp.End--
	}
	line := inner.Line + countNewlines(content[inner.Off:sp.Start])

	lx.cursor.Bump() // '}'
	lx.cursor.Eat('-')
	return token.Token{Kind: token.RawLit, Line: line, Span: sp}, true
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func countNewlines(b []byte) uint32 {
	var n uint32
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}
