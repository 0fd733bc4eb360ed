package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lugha/internal/diag"
	"lugha/internal/source"
)

func unboundBag(fs *source.FileSet, path string) *diag.Bag {
	// "اطبع " занимает 9 байт, ص начинается с колонки 10
	fileID := fs.AddVirtual(path, []byte("اطبع ص\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.TrnUnboundIdent, source.Span{File: fileID, Start: 9, End: 11}, `unbound identifier "ص"`))
	return bag
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	bag := unboundBag(fs, "test.lugha")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	output := buf.String()

	if !strings.Contains(output, `test.lugha:1:10: ERROR TRN3001: unbound identifier "ص"`) {
		t.Fatalf("unexpected header:\n%s", output)
	}
	if !strings.Contains(output, "1 | اطبع ص\n") {
		t.Fatalf("expected source line:\n%s", output)
	}
	// каретка стоит под пятой ячейкой, а не под девятым байтом
	if !strings.Contains(output, "\n  |      ^\n") {
		t.Fatalf("caret misaligned:\n%q", output)
	}
}

func TestPrettyCaretSkipsCombiningMarks(t *testing.T) {
	fs := source.NewFileSet()
	// م + фатха (нулевая ширина) + пробел, затем س
	fileID := fs.AddVirtual("marks.lugha", []byte("مَ س"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.TrnUnboundIdent, source.Span{File: fileID, Start: 5, End: 7}, "x"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.HasSuffix(buf.String(), "\n  |   ^\n") {
		t.Fatalf("caret misaligned:\n%q", buf.String())
	}
}

func TestPrettyCaretTabAndMarks(t *testing.T) {
	fs := source.NewFileSet()
	// таб сохраняется, огласовка после таба тоже не занимает ячейку
	fileID := fs.AddVirtual("tab.lugha", []byte("\tمَ س"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.TrnUnboundIdent, source.Span{File: fileID, Start: 6, End: 8}, "x"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.HasSuffix(buf.String(), "\n  | \t  ^\n") {
		t.Fatalf("caret misaligned:\n%q", buf.String())
	}
}

func TestPrettyMultiByteUnderline(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("u.lugha", []byte("شيء سلام = 1"))
	bag := diag.NewBag(1)
	// "شيء " = 7 байт, سلام = 8 байт, 4 ячейки
	bag.Add(diag.New(diag.SevWarning, diag.TrnRedeclared, source.Span{File: fileID, Start: 7, End: 15}, "redeclared"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "    ^~~~\n") {
		t.Fatalf("expected a four-cell underline:\n%q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARNING TRN3002") {
		t.Fatalf("expected warning header:\n%s", buf.String())
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("ctx.lugha", []byte("شيء أ = 1\nاطبع ب\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.TrnUnboundIdent, source.Span{File: fileID, Start: 23, End: 25}, "unbound"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	output := buf.String()
	if !strings.Contains(output, "1 | شيء أ = 1\n") || !strings.Contains(output, "2 | اطبع ب\n") {
		t.Fatalf("expected two source lines:\n%s", output)
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	bag := unboundBag(fs, "/home/user/project/src/test.lugha")
	fs.SetBaseDir("/home/user/project")

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.lugha:1:10"},
		{"Relative path", PathModeRelative, "src/test.lugha:1:10"},
		{"Basename only", PathModeBasename, "test.lugha:1:10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, buf.String())
			}
		})
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("n.lugha", []byte("طالما 1\n"))
	open := source.Span{File: fileID, Start: 0, End: 11}
	d := diag.NewError(diag.SynUnclosedBlock, source.Span{File: fileID, Start: 13, End: 13}, "block is not closed").
		WithNote(open, "opened here")
	bag := diag.NewBag(1)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "note: n.lugha:1:1: opened here") {
		t.Fatalf("expected note with location, got:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Fatalf("notes must be hidden by default:\n%s", buf.String())
	}
}

func TestPrettyDetachedDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("other.lugha", []byte("x"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: boom"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if got := buf.String(); got != "ERROR IO4001: failed to load file: boom\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	bag := unboundBag(fs, "c.lugha")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes:\n%q", buf.String())
	}
}
