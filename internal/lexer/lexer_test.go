package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"lugha/internal/diag"
	"lugha/internal/lexer"
	"lugha/internal/source"
	"lugha/internal/testkit"
	"lugha/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(d diag.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// ErrorMessages возвращает список сообщений об ошибках
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// lexAll создаёт лексер для тестовой строки и собирает все токены до EOF
func lexAll(t *testing.T, input string) ([]token.Token, *source.File, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.lugha", []byte(input)))

	reporter := &testReporter{}
	toks := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	if err := testkit.CheckTokenInvariants(toks, file); err != nil {
		t.Fatalf("token invariants broken for %q: %v", input, err)
	}
	return toks, file, reporter
}

type want struct {
	kind token.Kind
	text string
}

// expectTokens проверяет последовательность токенов (без EOF) и их текст
func expectTokens(t *testing.T, input string, expected []want) {
	t.Helper()
	toks, file, reporter := lexAll(t, input)
	toks = toks[:len(toks)-1]

	if len(toks) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(toks), input, tokensToString(toks, file), reporter.ErrorMessages())
	}
	for i, tok := range toks {
		if tok.Kind != expected[i].kind {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i].kind, tok.Kind, tok.Text(file.Content))
		}
		if got := tok.Text(file.Content); got != expected[i].text {
			t.Errorf("Token %d: expected text %q, got %q", i, expected[i].text, got)
		}
	}
}

func tokensToString(tokens []token.Token, file *source.File) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text(file.Content))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== Ключевые слова ======

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"إذا ", token.KwIf, "إذا "},
		{"أرجع ", token.KwReturn, "أرجع "},
		{"ارجع ", token.KwReturn, "ارجع "},
		{"او ", token.KwOr, "او "},
		{"انتهى", token.KwEnd, "انتهى"},
		{"اطبع ", token.KwPrint, "اطبع "},
		{"تابع ", token.KwFun, "تابع "},
		{"خطأ ", token.KwFalse, "خطأ "},
		{"شيء ", token.KwVar, "شيء "},
		{"صحيح ", token.KwTrue, "صحيح "},
		{"طالما ", token.KwWhile, "طالما "},
		{"فراغ ", token.KwNil, "فراغ "},
		{"لكل ", token.KwFor, "لكل "},
		{"نوع ", token.KwClass, "نوع "},
		{"وإلا ", token.KwElse, "وإلا "},
		{"و ", token.KwAnd, "و "},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			expectTokens(t, tt.input, []want{{tt.kind, tt.text}})
		})
	}
}

func TestKeywordDelimiters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []want
	}{
		{"eof ends keyword", "اطبع", []want{{token.KwPrint, "اطبع"}}},
		{"newline not consumed", "صحيح\nس", []want{{token.KwTrue, "صحيح"}, {token.Ident, "س"}}},
		{"tab not consumed", "خطأ\tس", []want{{token.KwFalse, "خطأ"}, {token.Ident, "س"}}},
		{"end needs no delimiter", "انتهىس", []want{{token.KwEnd, "انتهى"}, {token.Ident, "س"}}},
		{"paren is not a delimiter", "اطبع(س)", []want{
			{token.Ident, "اطبع"}, {token.LParen, "("}, {token.Ident, "س"}, {token.RParen, ")"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestKeywordFallsBackToIdent(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"اوراق", "اوراق"},
		{"شيئا", "شيئا"},
		{"طالب", "طالب"},
		{"وزن", "وزن"},
		{"إذاعة", "إذاعة"},
		{"ا", "ا"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, []want{{token.Ident, tt.text}})
		})
	}
}

func TestKeywordLine(t *testing.T) {
	toks, _, _ := lexAll(t, "\n\nاطبع س")
	if toks[0].Kind != token.KwPrint || toks[0].Line != 3 {
		t.Fatalf("got %v on line %d, want KwPrint on line 3", toks[0].Kind, toks[0].Line)
	}
}

// ====== Идентификаторы ======

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []want
	}{
		{"ascii", "foo", []want{{token.Ident, "foo"}}},
		{"arabic", "عدد", []want{{token.Ident, "عدد"}}},
		{"stops at space", "س ص", []want{{token.Ident, "س"}, {token.Ident, "ص"}}},
		{"stops at paren", "دالة(", []want{{token.Ident, "دالة"}, {token.LParen, "("}}},
		{"stops at comma", "أ,ب", []want{{token.Ident, "أ"}, {token.Comma, ","}, {token.Ident, "ب"}}},
		{"stops at plus", "س+1", []want{{token.Ident, "س"}, {token.Plus, "+"}, {token.NumberLit, "1"}}},
		{"stops at minus", "س-1", []want{{token.Ident, "س"}, {token.Minus, "-"}, {token.NumberLit, "1"}}},
		{"equals is not destructive", "س=1", []want{{token.Ident, "س=1"}}},
		{"digits inside", "x123", []want{{token.Ident, "x123"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestInvalidUTF8Identifier(t *testing.T) {
	toks, _, reporter := lexAll(t, "a\xffb c")
	if len(toks) != 3 {
		t.Fatalf("expected 2 tokens and EOF, got %d", len(toks))
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Fatalf("unexpected diagnostics: %v", reporter.ErrorMessages())
	}
}

// ====== Числа ======

func TestNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []want
	}{
		{"integer", "42", []want{{token.NumberLit, "42"}}},
		{"comma decimal", "3,14", []want{{token.NumberLit, "3,14"}}},
		{"second comma ends number", "1,2,3", []want{
			{token.NumberLit, "1,2"}, {token.Comma, ","}, {token.NumberLit, "3"},
		}},
		{"comma before space separates", "1, 2", []want{
			{token.NumberLit, "1"}, {token.Comma, ","}, {token.NumberLit, "2"},
		}},
		{"trailing comma", "7,", []want{{token.NumberLit, "7"}, {token.Comma, ","}}},
		{"arabic-indic", "٣,١٤", []want{{token.NumberLit, "٣,١٤"}}},
		{"extended arabic-indic", "۱۲", []want{{token.NumberLit, "۱۲"}}},
		{"number then ident", "3س", []want{{token.NumberLit, "3"}, {token.Ident, "س"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

// ====== Операторы ======

func TestOperators(t *testing.T) {
	expectTokens(t, "= == ! != < <= > >= ( ) + - * \\ / ,", []want{
		{token.Assign, "="},
		{token.EqEq, "=="},
		{token.Bang, "!"},
		{token.BangEq, "!="},
		{token.Lt, "<"},
		{token.LtEq, "<="},
		{token.Gt, ">"},
		{token.GtEq, ">="},
		{token.LParen, "("},
		{token.RParen, ")"},
		{token.Plus, "+"},
		{token.Minus, "-"},
		{token.Star, "*"},
		{token.Slash, "\\"},
		{token.Slash, "/"},
		{token.Comma, ","},
	})
}

// ====== Строки ======

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"simple", `"مرحبا"`, `"مرحبا"`},
		{"empty", `""`, `""`},
		{"escaped quote", `"a\"b"`, `"a\"b"`},
		{"multiline", "\"a\nb\"", "\"a\nb\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, []want{{token.StringLit, tt.text}})
		})
	}
}

func TestStringAdvancesLine(t *testing.T) {
	toks, _, _ := lexAll(t, "\"a\nb\" س")
	if toks[1].Line != 2 {
		t.Fatalf("token after multiline string on line %d, want 2", toks[1].Line)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks, _, reporter := lexAll(t, "اطبع \"مرحبا")
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", reporter.ErrorMessages())
	}
	d := reporter.diagnostics[0]
	if d.Code != diag.LexUnterminatedString || d.Origin != diag.OriginLexer {
		t.Fatalf("unexpected diagnostic %s (%s)", d.Code.ID(), d.Origin)
	}
	if len(toks) != 2 || toks[0].Kind != token.KwPrint || toks[1].Kind != token.EOF {
		t.Fatalf("expected [KwPrint EOF], got %v", toks)
	}
}

// ====== Сырые литералы ======

func TestRawLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []want
	}{
		{"simple", "-{ alert(1) }", []want{{token.RawLit, "alert(1)"}}},
		{"trailing dash", "-{x}- س", []want{{token.RawLit, "x"}, {token.Ident, "س"}}},
		{"nested braces", "-{ if (a) { b() } }", []want{{token.RawLit, "if (a) { b() }"}}},
		{"empty", "-{}", []want{{token.RawLit, ""}}},
		{"minus brace spaced", "- {", []want{{token.Minus, "-"}, {token.Ident, "{"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestRawLiteralLine(t *testing.T) {
	toks, _, _ := lexAll(t, "-{\n\n  x\n}")
	if toks[0].Kind != token.RawLit || toks[0].Line != 3 {
		t.Fatalf("got %v on line %d, want RawLit on line 3", toks[0].Kind, toks[0].Line)
	}
}

func TestUnterminatedRawLiteral(t *testing.T) {
	toks, _, reporter := lexAll(t, "س -{ abc")
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedRawLit {
		t.Fatalf("unexpected diagnostics: %v", reporter.ErrorMessages())
	}
	if sp := reporter.diagnostics[0].Primary; sp.Start != 3 {
		t.Errorf("diagnostic must start at the opening '-', got %d", sp.Start)
	}
	if len(toks) != 2 || toks[1].Kind != token.EOF {
		t.Fatalf("expected [Ident EOF], got %v", toks)
	}
}

// ====== Пробелы и комментарии ======

func TestCommentsAndLines(t *testing.T) {
	toks, file, _ := lexAll(t, "// تعليق\nشيء س = 1 // ذيل\r\n\nاطبع س")
	expected := []struct {
		kind token.Kind
		line uint32
	}{
		{token.KwVar, 2},
		{token.Ident, 2},
		{token.Assign, 2},
		{token.NumberLit, 2},
		{token.KwPrint, 4},
		{token.Ident, 4},
		{token.EOF, 4},
	}
	if len(toks) != len(expected) {
		t.Fatalf("got %s", tokensToString(toks, file))
	}
	for i, e := range expected {
		if toks[i].Kind != e.kind || toks[i].Line != e.line {
			t.Errorf("token %d: got %v@%d, want %v@%d", i, toks[i].Kind, toks[i].Line, e.kind, e.line)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \n\t", "// only a comment"} {
		toks, _, reporter := lexAll(t, in)
		if len(toks) != 1 || toks[0].Kind != token.EOF {
			t.Errorf("%q: expected only EOF, got %v", in, toks)
		}
		if len(reporter.diagnostics) != 0 {
			t.Errorf("%q: unexpected diagnostics %v", in, reporter.ErrorMessages())
		}
	}
}

// ====== Peek / Next ======

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("peek.lugha", []byte("اطبع س")))
	lx := lexer.New(file, lexer.Options{})

	if p := lx.Peek(); p.Kind != token.KwPrint {
		t.Fatalf("Peek() = %v", p.Kind)
	}
	if p := lx.Peek(); p.Kind != token.KwPrint {
		t.Fatalf("second Peek() = %v", p.Kind)
	}
	if n := lx.Next(); n.Kind != token.KwPrint {
		t.Fatalf("Next() after Peek = %v", n.Kind)
	}
	if n := lx.Next(); n.Kind != token.Ident {
		t.Fatalf("Next() = %v, want Ident", n.Kind)
	}
	for range 3 {
		if n := lx.Next(); n.Kind != token.EOF {
			t.Fatalf("Next() past end = %v, want EOF", n.Kind)
		}
	}
}

// ====== Сквозной пример ======

func TestProgram(t *testing.T) {
	src := "تابع جمع(أ, ب)\n" +
		"  أرجع أ + ب\n" +
		"انتهى\n" +
		"شيء س = جمع(1, 2,5)\n" +
		"اطبع س\n"
	expectTokens(t, src, []want{
		{token.KwFun, "تابع "},
		{token.Ident, "جمع"},
		{token.LParen, "("},
		{token.Ident, "أ"},
		{token.Comma, ","},
		{token.Ident, "ب"},
		{token.RParen, ")"},
		{token.KwReturn, "أرجع "},
		{token.Ident, "أ"},
		{token.Plus, "+"},
		{token.Ident, "ب"},
		{token.KwEnd, "انتهى"},
		{token.KwVar, "شيء "},
		{token.Ident, "س"},
		{token.Assign, "="},
		{token.Ident, "جمع"},
		{token.LParen, "("},
		{token.NumberLit, "1"},
		{token.Comma, ","},
		{token.NumberLit, "2,5"},
		{token.RParen, ")"},
		{token.KwPrint, "اطبع "},
		{token.Ident, "س"},
	})
}
