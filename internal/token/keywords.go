package token

// Candidate is one keyword spelling registered under its leading rune.
// Suffix is matched rune by rune right after the lead; a trailing space in
// Suffix is the keyword's terminating delimiter and is part of the token.
type Candidate struct {
	Suffix string
	Kind   Kind
}

// Порядок кандидатов внутри одной буквы фиксирован: побеждает первый совпавший.
var keywordTable = map[rune][]Candidate{
	'إ': {{Suffix: "ذا ", Kind: KwIf}},
	'أ': {{Suffix: "رجع ", Kind: KwReturn}},
	'ا': {
		{Suffix: "و ", Kind: KwOr},
		{Suffix: "نتهى", Kind: KwEnd},
		{Suffix: "طبع ", Kind: KwPrint},
		{Suffix: "رجع ", Kind: KwReturn},
	},
	'ت': {{Suffix: "ابع ", Kind: KwFun}},
	'خ': {{Suffix: "طأ ", Kind: KwFalse}},
	'ش': {{Suffix: "يء ", Kind: KwVar}},
	'ص': {{Suffix: "حيح ", Kind: KwTrue}},
	'ط': {{Suffix: "الما ", Kind: KwWhile}},
	'ف': {{Suffix: "راغ ", Kind: KwNil}},
	'ل': {{Suffix: "كل ", Kind: KwFor}},
	'ن': {{Suffix: "وع ", Kind: KwClass}},
	'و': {
		{Suffix: "إلا ", Kind: KwElse},
		{Suffix: " ", Kind: KwAnd},
	},
}

// leadOrder fixes iteration over keywordTable for Spelling.
var leadOrder = []rune{'إ', 'أ', 'ا', 'ت', 'خ', 'ش', 'ص', 'ط', 'ف', 'ل', 'ن', 'و'}

// KeywordCandidates returns the ordered candidates registered under lead,
// or nil when no keyword starts with that rune.
func KeywordCandidates(lead rune) []Candidate {
	return keywordTable[lead]
}

// Spelling returns the canonical source spelling of a keyword kind without
// its trailing delimiter, and false for non-keyword kinds.
func Spelling(k Kind) (string, bool) {
	for _, lead := range leadOrder {
		for _, c := range keywordTable[lead] {
			if c.Kind != k {
				continue
			}
			return string(lead) + trimDelimiter(c.Suffix), true
		}
	}
	return "", false
}

func trimDelimiter(s string) string {
	if n := len(s); n > 0 && s[n-1] == ' ' {
		return s[:n-1]
	}
	return s
}
