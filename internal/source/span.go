package source

import "fmt"

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start >= s.End }

func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

// String renders "file:start-end", used as a stable key in logs and tests.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Slice returns the covered bytes of content; out-of-range parts are clipped.
func (s Span) Slice(content []byte) []byte {
	n := uint32(len(content)) // #nosec G115 -- content length is bounded by FileSet.Add
	start := min(s.Start, n)
	end := max(min(s.End, n), start)
	return content[start:end]
}
