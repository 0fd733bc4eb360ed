package token

import (
	"lugha/internal/source"
)

// Token represents a single source token. The lexeme is Span sliced out of the file.
type Token struct {
	Kind Kind
	Line uint32 // 1-based
	Span source.Span
}

// Start returns the byte offset of the token in its file.
func (t Token) Start() uint32 { return t.Span.Start }

// Len returns the token length in bytes.
func (t Token) Len() uint32 { return t.Span.Len() }

// Text slices the lexeme out of the source content.
func (t Token) Text(content []byte) string {
	return string(t.Span.Slice(content))
}

// IsLiteral reports whether the token is a string, number or raw literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case StringLit, NumberLit, RawLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LParen, RParen, Comma, Bang, BangEq, Assign, EqEq, Gt, GtEq, Lt, LtEq,
		Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword (connectives included).
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwAnd, KwOr, KwClass, KwElse, KwFalse, KwFun, KwFor, KwIf, KwNil,
		KwPrint, KwReturn, KwTrue, KwVar, KwWhile, KwEnd:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsArith reports whether the token is one of the four arithmetic operators.
func (t Token) IsArith() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

// IsComparison reports whether the token compares two operands.
func (t Token) IsComparison() bool {
	switch t.Kind {
	case EqEq, BangEq, Lt, LtEq, Gt, GtEq:
		return true
	default:
		return false
	}
}
