package transpile

import (
	"fmt"
	"strings"

	"lugha/internal/diag"
	"lugha/internal/source"
	"lugha/internal/token"
)

// Result is the output of one run.
type Result struct {
	// Fragments holds one entry per statement in source order; entries may be empty.
	Fragments []string
	Bag       *diag.Bag
}

// Text joins the non-empty fragments with sep.
func (r Result) Text(sep string) string {
	parts := make([]string, 0, len(r.Fragments))
	for _, f := range r.Fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, sep)
}

// Transpiler holds the state of a single pass over one token slice.
// It is not safe for concurrent use; build one per run.
type Transpiler struct {
	file   *source.File
	toks   []token.Token
	idx    int
	opts   Options
	bag    *diag.Bag
	rep    diag.Reporter
	idents *Idents
	blocks blockStack
	out    []string
}

func New(file *source.File, toks []token.Token, opts Options) *Transpiler {
	bag := diag.NewBag(opts.MaxDiagnostics)
	var rep diag.Reporter = diag.BagReporter{Bag: bag}
	if opts.Reporter != nil {
		rep = diag.Tee{rep, opts.Reporter}
	}
	// одна и та же ошибка на одном токене не повторяется
	rep = diag.NewDedupReporter(rep)
	return &Transpiler{
		file:   file,
		toks:   toks,
		opts:   opts,
		bag:    bag,
		rep:    rep,
		idents: NewIdents(opts.Renamer),
		out:    make([]string, 0, len(toks)/4+2),
	}
}

// Transpile runs a fresh Transpiler over toks.
func Transpile(file *source.File, toks []token.Token, opts Options) Result {
	return New(file, toks, opts).Run()
}

// Run walks the tokens once. Every statement handler leaves idx on the last
// token it consumed; the loop then steps past it unless that token is EOF,
// which is always handled as a statement of its own.
func (t *Transpiler) Run() Result {
	if t.opts.Prelude {
		t.out = append(t.out, PreludeBanner)
	}
	for {
		frag, done := t.statement()
		t.out = append(t.out, frag)
		if done {
			break
		}
		if t.cur().Kind != token.EOF {
			t.advance()
		}
	}
	return Result{Fragments: t.out, Bag: t.bag}
}

// Idents exposes the identifier table built so far.
func (t *Transpiler) Idents() *Idents {
	return t.idents
}

// ===== Навигация по токенам =====

// cur returns the token under idx; past the slice it is a synthetic EOF.
func (t *Transpiler) cur() token.Token {
	return t.at(t.idx)
}

func (t *Transpiler) peek() token.Token {
	return t.at(t.idx + 1)
}

func (t *Transpiler) at(i int) token.Token {
	if i < len(t.toks) {
		return t.toks[i]
	}
	eof := token.Token{Kind: token.EOF, Line: 1}
	if n := len(t.toks); n > 0 {
		last := t.toks[n-1]
		eof.Line = last.Line
		eof.Span = source.Span{File: last.Span.File, Start: last.Span.End, End: last.Span.End}
	} else if t.file != nil {
		eof.Span.File = t.file.ID
	}
	return eof
}

// advance steps to the next token but never past EOF.
func (t *Transpiler) advance() token.Token {
	if t.idx < len(t.toks) && t.toks[t.idx].Kind != token.EOF {
		t.idx++
	}
	return t.cur()
}

// jump moves n tokens forward; used to step over an operator onto its operand.
func (t *Transpiler) jump(n int) token.Token {
	for range n {
		t.advance()
	}
	return t.cur()
}

// expectNext advances and checks the new current token.
func (t *Transpiler) expectNext(k token.Kind) (token.Token, bool) {
	tok := t.advance()
	if tok.Kind == k {
		return tok, true
	}
	if k == token.Ident {
		t.errorf(diag.SynExpectIdentifier, tok.Span, "expected identifier, found %q", tok.Kind.String())
	} else {
		t.expectedButFound(tok, k)
	}
	return tok, false
}

func (t *Transpiler) text(tok token.Token) string {
	if t.file == nil {
		return ""
	}
	return tok.Text(t.file.Content)
}

// ===== Диагностика =====

func (t *Transpiler) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	diag.NewError(code, sp, fmt.Sprintf(format, args...)).ReportTo(t.rep)
}

func (t *Transpiler) warnf(code diag.Code, sp source.Span, format string, args ...any) {
	diag.NewWarning(code, sp, fmt.Sprintf(format, args...)).ReportTo(t.rep)
}

func (t *Transpiler) expectedButFound(found token.Token, expected ...token.Kind) {
	names := make([]string, len(expected))
	for i, k := range expected {
		names[i] = k.String()
	}
	t.errorf(diag.SynUnexpectedToken, found.Span,
		"Invalid token, expected %q but found %q", strings.Join(names, " or "), found.Kind.String())
}

// ===== Таблица идентификаторов =====

// bind records a declared name. warnRedeclared is off for parameters,
// which routinely reuse names across functions.
func (t *Transpiler) bind(tok token.Token, warnRedeclared bool) string {
	b := t.idents.Bind(t.text(tok))
	if b.Redeclared && warnRedeclared {
		t.warnf(diag.TrnRedeclared, tok.Span, "%q is already declared; the new declaration replaces it", b.Raw)
	}
	if b.Clash != "" {
		t.warnf(diag.TrnRenameCollision, tok.Span, "%q and %q are both emitted as %q", b.Clash, b.Raw, b.Emitted)
	}
	return b.Emitted
}

// lookup resolves a referenced name; unbound names are reported and emitted as written.
func (t *Transpiler) lookup(tok token.Token) string {
	raw := t.text(tok)
	if emitted, ok := t.idents.Lookup(raw); ok {
		return emitted
	}
	t.errorf(diag.TrnUnboundIdent, tok.Span, "unbound identifier %q", raw)
	return raw
}
