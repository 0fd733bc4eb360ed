package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"lugha/internal/source"
)

// Cursor is a read position in one file: byte offset plus 1-based line.
// Line grows by one for every consumed '\n'.
type Cursor struct {
	File  *source.File
	Off   uint32
	Line  uint32
	Limit uint32 // exclusive bound for Off; len(File.Content) by default
}

func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Line: 1, Limit: limit}
}

func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// Peek returns the current byte, 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the current and the next byte; ok is false if either is missing.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// PeekRune decodes the rune under the cursor; size is 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.File.Content[c.Off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
}

func (c *Cursor) advance(n uint32, newline bool) {
	c.Off += n
	if newline {
		c.Line++
	}
}

// Bump consumes one byte and returns it; 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.advance(1, b == '\n')
	return b
}

// BumpRune consumes one rune; invalid UTF-8 advances by a single byte.
func (c *Cursor) BumpRune() rune {
	r, sz := c.PeekRune()
	if sz == 0 {
		return utf8.RuneError
	}
	n, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bump rune overflow: %w", err))
	}
	c.advance(n, r == '\n')
	return r
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if c.Peek() != b || c.EOF() {
		return false
	}
	c.Bump()
	return true
}

// Mark: сохранённая позиция для отката и для Span прочитанного фрагмента.
type Mark struct {
	Off  uint32
	Line uint32
}

func (c *Cursor) Mark() Mark { return Mark{Off: c.Off, Line: c.Line} }

// Reset rewinds to m, line counter included.
func (c *Cursor) Reset(m Mark) { c.Off, c.Line = m.Off, m.Line }

// SpanFrom covers everything consumed since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: m.Off, End: c.Off}
}
