package transpile

import (
	"fmt"
	"strings"

	"lugha/internal/diag"
	"lugha/internal/token"
)

// statement dispatches on the current token and returns its fragment.
// done is reported once end of input has been handled.
func (t *Transpiler) statement() (frag string, done bool) {
	tok := t.cur()
	switch tok.Kind {
	case token.KwVar:
		return t.varDecl(), false
	case token.KwPrint:
		return t.print(), false
	case token.KwFun:
		return t.funDecl(), false
	case token.Ident:
		return t.callOrAssign(), false
	case token.RawLit:
		return t.text(tok), false
	case token.KwEnd:
		return t.end(), false
	case token.KwWhile:
		return t.whileLoop(), false
	case token.KwIf:
		return t.ifStmt(), false
	case token.KwElse:
		return t.elseStmt(), false
	case token.KwReturn:
		return t.returnStmt(), false
	case token.KwFor:
		return "", false
	case token.KwClass:
		t.warnf(diag.TrnUnsupported, tok.Span, "class declarations are not supported")
		return "", false
	case token.EOF:
		return t.eof(), true
	default:
		t.errorf(diag.SynInvalidStatement, tok.Span, "Invalid start to statement.")
		return "", false
	}
}

// شيء name = expr
func (t *Transpiler) varDecl() string {
	nameTok, ok := t.expectNext(token.Ident)
	if !ok {
		return ""
	}
	if _, ok := t.expectNext(token.Assign); !ok {
		return ""
	}
	first := t.advance()
	quoted := first.Kind == token.Ident && t.peek().Kind != token.LParen
	value, ok := t.expr()
	if !ok {
		return ""
	}
	// имя связывается только после целого объявления
	name := t.bind(nameTok, true)
	if quoted {
		return fmt.Sprintf("let %s = (%q);", name, value)
	}
	return fmt.Sprintf("let %s = (%s);", name, value)
}

// اطبع expr
func (t *Transpiler) print() string {
	tok := t.advance()
	if !startsOperand(tok.Kind) {
		t.expectedButFound(tok, token.Ident, token.StringLit, token.NumberLit)
		return ""
	}
	value, ok := t.expr()
	if !ok {
		return ""
	}
	return fmt.Sprintf("console.log(%s);", value)
}

// تابع name(p1, p2)
func (t *Transpiler) funDecl() string {
	kw := t.cur()
	t.blocks.push(BlockFunction, kw.Span)

	nameTok, ok := t.expectNext(token.Ident)
	if !ok {
		return ""
	}
	name := t.bind(nameTok, true)
	if _, ok := t.expectNext(token.LParen); !ok {
		return ""
	}

	var params []string
	if t.peek().Kind == token.Ident {
		params = append(params, t.bind(t.advance(), false))
		for t.peek().Kind == token.Comma {
			t.advance()
			p, ok := t.expectNext(token.Ident)
			if !ok {
				return ""
			}
			params = append(params, t.bind(p, false))
		}
	}
	if _, ok := t.expectNext(token.RParen); !ok {
		return ""
	}
	return fmt.Sprintf("function %s (%s) {", name, strings.Join(params, ","))
}

// name(args) или name = expr
func (t *Transpiler) callOrAssign() string {
	nameTok := t.cur()
	switch t.peek().Kind {
	case token.LParen:
		return t.call(nameTok)
	case token.Assign:
		name := t.lookup(nameTok)
		t.jump(2)
		value, ok := t.expr()
		if !ok {
			return ""
		}
		return fmt.Sprintf("%s = (%s);", name, value)
	default:
		t.expectedButFound(t.peek(), token.LParen)
		return ""
	}
}

func (t *Transpiler) call(nameTok token.Token) string {
	name := t.lookup(nameTok)
	t.advance() // '('

	var args []string
	if t.peek().Kind != token.RParen {
		for {
			t.advance()
			if arg, ok := t.expr(); ok {
				args = append(args, arg)
			}
			if t.peek().Kind != token.Comma {
				break
			}
			t.advance()
		}
	}
	if _, ok := t.expectNext(token.RParen); !ok {
		return ""
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ","))
}

// انتهى
func (t *Transpiler) end() string {
	if _, ok := t.blocks.pop(); !ok && t.opts.StrictBlocks {
		t.errorf(diag.SynUnmatchedEnd, t.cur().Span, "end without an open block")
		return ""
	}
	return "}"
}

// طالما cond
func (t *Transpiler) whileLoop() string {
	t.blocks.push(BlockWhile, t.cur().Span)
	t.advance()
	cond, ok := t.condition()
	if !ok {
		return ""
	}
	return fmt.Sprintf("while(%s) {", cond)
}

// إذا cond
func (t *Transpiler) ifStmt() string {
	t.blocks.push(BlockIf, t.cur().Span)
	t.advance()
	cond, ok := t.condition()
	if !ok {
		return ""
	}
	return fmt.Sprintf("if(%s) {", cond)
}

// وإلا
func (t *Transpiler) elseStmt() string {
	if b, ok := t.blocks.top(); ok && b.kind == BlockIf {
		t.blocks.retag(BlockElse)
		return "} else {"
	}
	if t.opts.StrictBlocks {
		t.errorf(diag.SynElseWithoutIf, t.cur().Span, "else without a matching if")
		return ""
	}
	return "} else {"
}

// أرجع [expr]
func (t *Transpiler) returnStmt() string {
	if !startsOperand(t.peek().Kind) {
		return "return;"
	}
	t.advance()
	value, ok := t.expr()
	if !ok {
		return ""
	}
	return fmt.Sprintf("return %s;", value)
}

func (t *Transpiler) eof() string {
	if t.opts.StrictBlocks {
		at := t.cur().Span
		for i := len(t.blocks) - 1; i >= 0; i-- {
			b := t.blocks[i]
			diag.NewError(diag.SynUnclosedBlock, at, fmt.Sprintf("%s block is not closed", b.kind)).
				WithNote(b.open, "opened here").
				ReportTo(t.rep)
		}
	}
	t.blocks = t.blocks[:0]
	if t.opts.Banner {
		return ClosingBanner
	}
	return ""
}
