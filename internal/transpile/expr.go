package transpile

import (
	"fmt"
	"strings"

	"lugha/internal/diag"
	"lugha/internal/token"
)

var opText = map[token.Kind]string{
	token.Plus:   "+",
	token.Minus:  "-",
	token.Star:   "*",
	token.Slash:  "/",
	token.EqEq:   "==",
	token.BangEq: "!=",
	token.Lt:     "<",
	token.LtEq:   "<=",
	token.Gt:     ">",
	token.GtEq:   ">=",
}

func startsOperand(k token.Kind) bool {
	switch k {
	case token.Ident, token.StringLit, token.NumberLit, token.KwTrue, token.KwFalse, token.KwNil:
		return true
	}
	return false
}

// expr reads one operand at the current token and at most one arithmetic
// operator with its right operand. Chains are not folded: "a + b + c"
// stops after "b" and leaves "+" to the caller.
func (t *Transpiler) expr() (string, bool) {
	left, ok := t.operand()
	if !ok {
		return "", false
	}
	op := t.peek()
	if !op.IsArith() {
		return left, true
	}
	t.jump(2)
	right, ok := t.operand()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("(%s %s %s)", left, opText[op.Kind], right), true
}

// condition is an expression optionally compared with a second one.
func (t *Transpiler) condition() (string, bool) {
	left, ok := t.expr()
	if !ok {
		return "", false
	}
	op := t.peek()
	if !op.IsComparison() {
		return left, true
	}
	t.jump(2)
	right, ok := t.expr()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s %s %s", left, opText[op.Kind], right), true
}

// operand reads the primary under the current token. A name followed by
// '(' is a call.
func (t *Transpiler) operand() (string, bool) {
	tok := t.cur()
	switch tok.Kind {
	case token.Ident:
		if t.peek().Kind == token.LParen {
			call := t.call(tok)
			return call, call != ""
		}
		return t.lookup(tok), true
	case token.StringLit:
		return t.text(tok), true
	case token.NumberLit:
		return normalizeNumber(t.text(tok)), true
	case token.KwTrue:
		return "true", true
	case token.KwFalse:
		return "false", true
	case token.KwNil:
		return "null", true
	default:
		t.errorf(diag.SynExpectOperand, tok.Span, "expected identifier or number, found %q", tok.Kind.String())
		return "", false
	}
}

// normalizeNumber rewrites the decimal comma to a period and Arabic-Indic
// digits to ASCII.
func normalizeNumber(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ',':
			return '.'
		case r >= '٠' && r <= '٩':
			return '0' + r - '٠'
		case r >= '۰' && r <= '۹':
			return '0' + r - '۰'
		}
		return r
	}, s)
}
