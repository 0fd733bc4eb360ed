package lexer

// ===== Классификаторы =====

// isDigitRune принимает западные, арабско-индийские и расширенные
// арабско-индийские (персидские) цифры.
func isDigitRune(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= '٠' && r <= '٩') ||
		(r >= '۰' && r <= '۹')
}

// isOpener: символы, с которых начинается оператор, пунктуация или литерал.
func isOpener(r rune) bool {
	switch r {
	case '=', '!', '<', '>', '(', ')', '+', '-', '*', '\\', '/', ',', '"':
		return true
	}
	return false
}

// isDestructive: символы, на которых обрывается идентификатор.
// Сам символ в идентификатор не входит.
func isDestructive(b byte) bool {
	switch b {
	case '(', ')', ',', '+', '-', '\n', '\t', '\r', ' ':
		return true
	}
	return false
}

// isKeywordDelimiter: символы, перед которыми ключевое слово с завершающим
// пробелом считается законченным без поглощения разделителя.
func isKeywordDelimiter(b byte) bool {
	return b == '\n' || b == '\t' || b == '\r'
}

// ===== Матчеры последовательностей операторов (жадность) =====

// try2 пробует "съесть" 2 байта, если совпадает.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
