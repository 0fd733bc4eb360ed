package source

import "strings"

// FileID indexes a file inside its FileSet; ids start at 0.
type FileID uint32

// FileFlags records what happened to a file's bytes on the way in.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // не с диска: тест, stdin, буфер редактора
	FileHadBOM                               // leading UTF-8 BOM was stripped
	FileNormalizedCRLF                       // \r\n became \n; lone \r is kept
	FileNormalizedNFC                        // NFC composition changed the text
)

var flagNames = [...]string{"virtual", "bom", "crlf", "nfc"}

func (f FileFlags) Has(flag FileFlags) bool { return f&flag == flag }

// String lists set flags as "bom|crlf"; "none" when empty.
func (f FileFlags) String() string {
	var parts []string
	for i, name := range flagNames {
		if f.Has(1 << i) {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// File is one loaded source. Content is already normalized; Hash is taken
// over the normalized bytes and LineIdx holds the offset of every '\n'.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
