package token

import (
	"strings"
	"testing"
)

func TestKeywordCandidates_Positive(t *testing.T) {
	cases := map[string]Kind{
		"شيء ":   KwVar,
		"اطبع ":  KwPrint,
		"تابع ":  KwFun,
		"انتهى":  KwEnd,
		"طالما ": KwWhile,
		"لكل ":   KwFor,
		"إذا ":   KwIf,
		"وإلا ":  KwElse,
		"أرجع ":  KwReturn,
		"ارجع ":  KwReturn,
		"صحيح ":  KwTrue,
		"خطأ ":   KwFalse,
		"فراغ ":  KwNil,
		"نوع ":   KwClass,
		"و ":     KwAnd,
		"او ":    KwOr,
	}

	for spelling, want := range cases {
		lead := []rune(spelling)[0]
		rest := strings.TrimPrefix(spelling, string(lead))
		var got Kind
		found := false
		for _, c := range KeywordCandidates(lead) {
			if c.Suffix == rest {
				got, found = c.Kind, true
				break
			}
		}
		if !found {
			t.Fatalf("no candidate for %q", spelling)
		}
		if got != want {
			t.Fatalf("%q = %v, want %v", spelling, got, want)
		}
	}
}

func TestKeywordCandidates_Negative(t *testing.T) {
	// буквы без ключевых слов
	for _, r := range []rune{'ب', 'ج', 'س', 'x', '1'} {
		if c := KeywordCandidates(r); c != nil {
			t.Fatalf("KeywordCandidates(%q) = %v, want nil", r, c)
		}
	}
}

func TestKeywordCandidates_NoPrefixClash(t *testing.T) {
	for lead, cands := range keywordTable {
		for i, a := range cands {
			for j, b := range cands {
				if i != j && strings.HasPrefix(b.Suffix, a.Suffix) {
					t.Errorf("lead %q: %q is a prefix of %q", lead, a.Suffix, b.Suffix)
				}
			}
		}
	}
}

func TestKeywordOrderUnderAlef(t *testing.T) {
	cands := KeywordCandidates('ا')
	want := []Kind{KwOr, KwEnd, KwPrint, KwReturn}
	if len(cands) != len(want) {
		t.Fatalf("got %d candidates", len(cands))
	}
	for i, k := range want {
		if cands[i].Kind != k {
			t.Errorf("candidate %d = %v, want %v", i, cands[i].Kind, k)
		}
	}
}

func TestSpelling(t *testing.T) {
	tests := map[Kind]string{
		KwVar:    "شيء",
		KwReturn: "أرجع",
		KwAnd:    "و",
		KwEnd:    "انتهى",
	}
	for k, want := range tests {
		got, ok := Spelling(k)
		if !ok || got != want {
			t.Errorf("Spelling(%v) = %q, %v; want %q", k, got, ok, want)
		}
	}
	if _, ok := Spelling(Ident); ok {
		t.Errorf("Ident has no spelling")
	}
}
