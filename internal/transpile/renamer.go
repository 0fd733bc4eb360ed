package transpile

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Renamer maps a source name to the name written to the output.
type Renamer interface {
	Rename(raw string) string
}

// IdentityRenamer keeps names as written.
type IdentityRenamer struct{}

func (IdentityRenamer) Rename(raw string) string { return raw }

// LatinRenamer transliterates Arabic names to ASCII identifiers.
// Harakat and hamza marks are dropped, Arabic-Indic digits become ASCII,
// anything else unmappable becomes _uXXXX.
type LatinRenamer struct{}

var latinLetters = map[rune]string{
	'ء': "2", 'ا': "a", 'ب': "b", 'ت': "t", 'ة': "h", 'ث': "th",
	'ج': "j", 'ح': "7", 'خ': "kh", 'د': "d", 'ذ': "dh", 'ر': "r", 'ز': "z",
	'س': "s", 'ش': "sh", 'ص': "S", 'ض': "D", 'ط': "T", 'ظ': "Z", 'ع': "3",
	'غ': "gh", 'ف': "f", 'ق': "q", 'ك': "k", 'ل': "l", 'م': "m", 'ن': "n",
	'ه': "h", 'و': "w", 'ى': "a", 'ي': "y",
	'پ': "p", 'چ': "ch", 'ژ': "zh", 'گ': "g", 'ک': "k", 'ی': "y",
}

// Target-language words a transliteration must not produce verbatim.
var reservedWords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
	"default": {}, "delete": {}, "do": {}, "else": {}, "false": {}, "for": {},
	"function": {}, "if": {}, "in": {}, "let": {}, "new": {}, "null": {},
	"return": {}, "switch": {}, "this": {}, "throw": {}, "true": {}, "try": {},
	"typeof": {}, "var": {}, "void": {}, "while": {}, "with": {},
}

func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func (LatinRenamer) Rename(raw string) string {
	bare, _, err := transform.String(stripMarks(), raw)
	if err != nil {
		bare = raw
	}

	var b strings.Builder
	for _, r := range bare {
		switch {
		case r == '_' || r < 0x80 && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + r - '٠')
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + r - '۰')
		case r == 'ـ': // tatweel
		default:
			if s, ok := latinLetters[r]; ok {
				b.WriteString(s)
			} else {
				fmt.Fprintf(&b, "_u%04X", r)
			}
		}
	}

	out := b.String()
	switch {
	case out == "":
		return "_"
	case out[0] >= '0' && out[0] <= '9':
		return "_" + out
	}
	if _, ok := reservedWords[out]; ok {
		return out + "_"
	}
	return out
}
