package lexer

import (
	"lugha/internal/source"
	"lugha/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Tokenize lexes the whole file. The result always ends with an EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
// Сканеры, которые не смогли собрать токен (незакрытая строка или
// сырой литерал), только репортят ошибку; цикл идёт дальше.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipTrivia()

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Line: lx.cursor.Line,
				Span: lx.emptySpan(),
			}
		}

		r, _ := lx.cursor.PeekRune()
		var (
			tok token.Token
			ok  bool
		)
		switch {
		case isDigitRune(r):
			tok, ok = lx.scanNumber(), true
		case isOpener(r):
			tok, ok = lx.scanOperator()
		default:
			tok, ok = lx.scanKeyword()
			if !ok {
				tok, ok = lx.scanIdent(), true
			}
		}
		if ok {
			return tok
		}
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	return token.Token{Kind: k, Line: start.Line, Span: lx.cursor.SpanFrom(start)}
}
