package lexer

import (
	"lugha/internal/diag"
	"lugha/internal/source"
)

type Options struct {
	Reporter diag.Reporter // nil: ошибки игнорируются, лексинг продолжается
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.NewError(code, sp, msg).ReportTo(lx.opts.Reporter)
}
