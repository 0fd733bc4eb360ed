package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"lugha/internal/source"
)

// line is one rendered entry: "<label> <CODE> <path>:<line>:<col> <message>".
type line struct {
	label   string
	code    string
	path    string
	pos     source.LineCol
	message string
}

func (l line) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.label, l.code, l.path, l.pos.Line, l.pos.Col, l.message)
}

func compareLines(a, b line) int {
	return cmp.Or(
		cmp.Compare(a.path, b.path),
		cmp.Compare(a.pos.Line, b.pos.Line),
		cmp.Compare(a.pos.Col, b.pos.Col),
		cmp.Compare(a.label, b.label),
		cmp.Compare(a.code, b.code),
		cmp.Compare(a.message, b.message),
	)
}

// FormatGoldenDiagnostics renders one line per diagnostic (and per note when
// includeNotes is set), sorted by path and position. Paths are relative to the
// file set's base dir with forward slashes, so output is stable across machines.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	lines := renderLines(diags, fs, includeNotes)
	slices.SortStableFunc(lines, compareLines)
	return joinLines(lines)
}

// FormatShortDiagnostics is the golden form in emission order.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return joinLines(renderLines(diags, fs, includeNotes))
}

// renderLines drops entries whose span is outside fs.
func renderLines(diags []Diagnostic, fs *source.FileSet, includeNotes bool) []line {
	if fs == nil {
		return nil
	}
	at := func(sp source.Span) (string, source.LineCol, bool) {
		if !fs.Has(sp.File) {
			return "", source.LineCol{}, false
		}
		path := filepath.ToSlash(fs.Get(sp.File).DisplayPath(source.PathRelative, fs.BaseDir()))
		for strings.HasPrefix(path, "./") {
			path = path[2:]
		}
		start, _ := fs.Resolve(sp)
		return path, start, true
	}

	var out []line
	for i := range diags {
		d := &diags[i]
		if path, pos, ok := at(d.Primary); ok {
			out = append(out, line{d.Severity.Label(), d.Code.ID(), path, pos, oneLine(d.Message)})
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if path, pos, ok := at(n.Span); ok {
				out = append(out, line{"note", d.Code.ID(), path, pos, oneLine(n.Msg)})
			}
		}
	}
	return out
}

func joinLines(lines []line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}

func oneLine(msg string) string {
	return strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg))
}
