package source

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// ErrFileTooLarge is returned by Load for files whose offsets do not fit in uint32.
var ErrFileTooLarge = errors.New("source file exceeds 4 GiB")

// PathStyle selects how File.DisplayPath renders a path.
type PathStyle string

const (
	PathAuto     PathStyle = "auto"
	PathAbsolute PathStyle = "absolute"
	PathRelative PathStyle = "relative"
	PathBase     PathStyle = "basename"
)

// autoPathLimit is the length above which PathAuto shortens absolute paths to the base name.
const autoPathLimit = 40

// FileSet owns every file of one run. Each Add creates a new version; the
// path index points at the latest one. A FileSet is not safe for concurrent
// mutation; readers may share it once loading is done.
type FileSet struct {
	files   []File
	latest  map[string]FileID
	baseDir string // пусто: текущая директория
}

// NewFileSet creates an empty FileSet relative to the working directory.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates a FileSet whose relative paths are taken against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{latest: make(map[string]FileID), baseDir: baseDir}
}

func (fileSet *FileSet) SetBaseDir(dir string) { fileSet.baseDir = dir }

// BaseDir returns the directory relative paths are computed against.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir != "" {
		return fileSet.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add registers content under path and returns the new version's ID.
// content must already be normalized; see Normalize.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("%s: %w", path, ErrFileTooLarge))
	}
	next, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	id := FileID(next)
	clean := normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    clean,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.latest[clean] = id
	return id
}

// Load reads path, normalizes it and adds it.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if _, err := safecast.Conv[uint32](len(raw)); err != nil {
		return 0, fmt.Errorf("%s: %w", path, ErrFileTooLarge)
	}
	content, flags := Normalize(raw)
	return fileSet.Add(path, content, flags), nil
}

// Normalize strips a UTF-8 BOM, rewrites CRLF to LF and composes to NFC so
// that keyword spellings with a combining hamza match the keyword table.
// The flags record which rewrites changed the content.
func Normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	steps := []struct {
		apply func([]byte) ([]byte, bool)
		flag  FileFlags
	}{
		{removeBOM, FileHadBOM},
		{normalizeCRLF, FileNormalizedCRLF},
		{normalizeNFC, FileNormalizedNFC},
	}
	for _, step := range steps {
		var changed bool
		if content, changed = step.apply(content); changed {
			flags |= step.flag
		}
	}
	return content, flags
}

// AddVirtual registers an in-memory buffer (test input, editor contents, a
// placeholder for a file that failed to load). Content is stored as given.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

func (fileSet *FileSet) Len() int { return len(fileSet.files) }

// Get returns the file with the given ID; the ID must come from this set.
func (fileSet *FileSet) Get(id FileID) *File { return &fileSet.files[id] }

// Has reports whether id refers to a file of this set.
func (fileSet *FileSet) Has(id FileID) bool { return int(id) < len(fileSet.files) }

// GetLatest returns the newest version registered under path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.latest[normalizePath(path)]
	return id, ok
}

// Resolve converts both ends of span to 1-based line/column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := fileSet.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}

// LineCount returns the number of lines; a trailing newline does not open a new one.
func (f *File) LineCount() uint32 {
	n := uint32(len(f.LineIdx)) // #nosec G115 -- bounded by content length
	if len(f.Content) == 0 {
		return 0
	}
	if f.Content[len(f.Content)-1] != '\n' {
		n++
	}
	return n
}

// GetLine returns line n (1-based) without its newline, or "" when out of range.
func (f *File) GetLine(n uint32) string {
	start, end, ok := f.lineBounds(n)
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

func (f *File) lineBounds(n uint32) (start, end uint32, ok bool) {
	size := uint32(len(f.Content)) // #nosec G115 -- checked in Add
	breaks := uint32(len(f.LineIdx)) // #nosec G115 -- at most size
	if n == 0 || n > breaks+1 {
		return 0, 0, false
	}
	if n > 1 {
		start = f.LineIdx[n-2] + 1
	}
	end = size
	if n <= breaks {
		end = f.LineIdx[n-1]
	}
	if start >= size {
		return 0, 0, false
	}
	return start, end, true
}

// DisplayPath renders the file path in style; baseDir only matters for PathRelative.
func (f *File) DisplayPath(style PathStyle, baseDir string) string {
	switch style {
	case PathAbsolute:
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
	case PathRelative:
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
	case PathBase:
		return BaseName(f.Path)
	case PathAuto:
		if filepath.IsAbs(f.Path) && len(f.Path) >= autoPathLimit {
			return BaseName(f.Path)
		}
	}
	return f.Path
}
