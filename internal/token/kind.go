package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Comma represents the comma token.
	Comma // ,
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the not-equal operator token.
	BangEq // !=
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the multiply operator token.
	Star // *
	// Slash represents the divide operator token (written as '\' in source).
	Slash // \

	// KwAnd represents the 'و' connective.
	KwAnd // و
	// KwOr represents the 'او' connective.
	KwOr // او

	// Ident represents an identifier token.
	Ident
	// RawLit is text passed through to the output verbatim: -{ ... }
	RawLit
	// StringLit represents a double-quoted string literal, quotes included.
	StringLit
	// NumberLit represents a decimal literal; ',' is the fractional separator.
	NumberLit

	// KwClass represents the 'نوع' keyword.
	KwClass // نوع
	// KwElse represents the 'وإلا' keyword.
	KwElse // وإلا
	// KwFalse represents the 'خطأ' keyword.
	KwFalse // خطأ
	// KwFun represents the 'تابع' keyword.
	KwFun // تابع
	// KwFor represents the 'لكل' keyword.
	KwFor // لكل
	// KwIf represents the 'إذا' keyword.
	KwIf // إذا
	// KwNil represents the 'فراغ' keyword.
	KwNil // فراغ
	// KwPrint represents the 'اطبع' keyword.
	KwPrint // اطبع
	// KwReturn represents the 'أرجع' keyword.
	KwReturn // أرجع
	// KwTrue represents the 'صحيح' keyword.
	KwTrue // صحيح
	// KwVar represents the 'شيء' keyword.
	KwVar // شيء
	// KwWhile represents the 'طالما' keyword.
	KwWhile // طالما
	// KwEnd represents the 'انتهى' keyword.
	KwEnd // انتهى

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	LParen:    "LParen",
	RParen:    "RParen",
	Comma:     "Comma",
	Bang:      "Bang",
	BangEq:    "BangEq",
	Assign:    "Assign",
	EqEq:      "EqEq",
	Gt:        "Gt",
	GtEq:      "GtEq",
	Lt:        "Lt",
	LtEq:      "LtEq",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	KwAnd:     "KwAnd",
	KwOr:      "KwOr",
	Ident:     "Ident",
	RawLit:    "RawLit",
	StringLit: "StringLit",
	NumberLit: "NumberLit",
	KwClass:   "KwClass",
	KwElse:    "KwElse",
	KwFalse:   "KwFalse",
	KwFun:     "KwFun",
	KwFor:     "KwFor",
	KwIf:      "KwIf",
	KwNil:     "KwNil",
	KwPrint:   "KwPrint",
	KwReturn:  "KwReturn",
	KwTrue:    "KwTrue",
	KwVar:     "KwVar",
	KwWhile:   "KwWhile",
	KwEnd:     "KwEnd",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether the kind is the end-of-input marker.
func (k Kind) IsEOF() bool { return k == EOF }
