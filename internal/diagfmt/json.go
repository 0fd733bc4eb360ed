package diagfmt

import (
	"encoding/json"
	"io"

	"lugha/internal/diag"
	"lugha/internal/source"
)

// LocationJSON is a span; line/col fields appear only with IncludePositions.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
}

type DiagnosticJSON struct {
	Origin   string        `json:"origin"`
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
	Notes    []NoteJSON    `json:"notes,omitempty"`
}

// DiagnosticsOutput is the document written by JSON.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

type jsonEncoder struct {
	fs   *source.FileSet
	opts JSONOpts
}

// locate returns nil for spans outside the file set.
func (e jsonEncoder) locate(span source.Span) *LocationJSON {
	if e.fs == nil || !e.fs.Has(span.File) {
		return nil
	}
	loc := &LocationJSON{
		File:      formatPath(e.fs.Get(span.File), e.opts.PathMode, e.fs.BaseDir()),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if e.opts.IncludePositions {
		start, end := e.fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (e jsonEncoder) encode(d *diag.Diagnostic) DiagnosticJSON {
	detached := isDetached(*d)
	out := DiagnosticJSON{
		Origin:   d.Origin.String(),
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
	}
	if !detached {
		out.Location = e.locate(d.Primary)
	}
	// timing reports carry their payload in the note
	if !e.opts.IncludeNotes && d.Code != diag.ObsTimings {
		return out
	}
	for _, n := range d.Notes {
		note := NoteJSON{Message: n.Msg}
		if !detached {
			note.Location = e.locate(n.Span)
		}
		out.Notes = append(out.Notes, note)
	}
	return out
}

// BuildDiagnosticsOutput builds the JSON document without serializing it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	enc := jsonEncoder{fs: fs, opts: opts}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(items))}
	for i := range items {
		out.Diagnostics = append(out.Diagnostics, enc.encode(&items[i]))
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes the document indented by two spaces.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
