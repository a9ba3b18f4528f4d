package buffer

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/calcpad/internal/grapheme"
)

// Buffer is the document state: lines of grapheme clusters and a cursor.
type Buffer struct {
	lines   [][]string
	version uint64

	cursor Pos
}

// New builds a buffer from text split on '\n'. A trailing '\r' on each line
// is dropped so CRLF files load as plain lines.
func New(text string) *Buffer {
	return &Buffer{
		lines:  splitLines(text),
		cursor: Pos{Row: 0, Col: 0},
	}
}

// Text joins all lines with '\n'.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Lines returns a copy of the document lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = grapheme.Join(line)
	}
	return out
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the content of row. It panics if row is out of range.
func (b *Buffer) Line(row int) string {
	b.mustRow(row)
	return grapheme.Join(b.lines[row])
}

// LineLen returns the cluster length of row, or 0 if row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// CurrentLine returns the content of the cursor's line.
func (b *Buffer) CurrentLine() string {
	return grapheme.Join(b.lines[b.cursor.Row])
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor to p, clamped into document bounds.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

func (b *Buffer) mustRow(row int) {
	if row < 0 || row >= len(b.lines) {
		panic(fmt.Sprintf("buffer: row %d out of range [0,%d)", row, len(b.lines)))
	}
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(strings.TrimSuffix(s, "\r")))
	}
	return lines
}
