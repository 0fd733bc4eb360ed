package diag

import (
	"lugha/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding of the lexer or the transpiler.
// Diagnostics never abort a run; they travel next to the partial output.
type Diagnostic struct {
	Origin   Origin
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// New builds a diagnostic; Origin follows from the code's family.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Origin:   code.Origin(),
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

// WithNote returns a copy of d with one more note; d's own slice is left alone.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) IsError() bool { return d.Severity >= SevError }

// ReportTo hands d to r. A nil reporter drops it.
func (d Diagnostic) ReportTo(r Reporter) {
	if r != nil {
		r.Report(d)
	}
}
