package lexer

import (
	"nimble/internal/source"
)

// Cursor is a byte-level reader over a single file's content.
type Cursor struct {
	file *source.File
	pos  uint32
}

// NewCursor creates a cursor at the start of file.
func NewCursor(file *source.File) Cursor {
	return Cursor{file: file}
}

func (c *Cursor) EOF() bool {
	return int(c.pos) >= len(c.file.Content)
}

// Peek returns the current byte without consuming it. Returns 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.pos]
}

// PeekAt returns the byte n positions ahead of the current one.
func (c *Cursor) PeekAt(n uint32) byte {
	idx := int(c.pos + n)
	if idx >= len(c.file.Content) {
		return 0
	}
	return c.file.Content[idx]
}

// Bump consumes and returns the current byte.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.pos++
	}
	return b
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() uint32 {
	return c.pos
}

// SpanFrom builds a span from start to the current position.
func (c *Cursor) SpanFrom(start uint32) source.Span {
	return source.Span{File: c.file.ID, Start: start, End: c.pos}
}

// TextFrom returns the raw source text from start to the current position.
func (c *Cursor) TextFrom(start uint32) string {
	return string(c.file.Content[start:c.pos])
}
