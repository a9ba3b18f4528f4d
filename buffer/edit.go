package buffer

import (
	"strings"

	"github.com/iw2rmb/calcpad/internal/grapheme"
)

// InsertText inserts s at the cursor and advances the column past it.
// Line breaks in s are dropped; use InsertLineBelow to change line structure.
func (b *Buffer) InsertText(s string) {
	s = stripBreaks(s)
	if s == "" {
		return
	}

	ins := grapheme.Split(s)
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	next := make([]string, 0, len(line)+len(ins))
	next = append(next, line[:col]...)
	next = append(next, ins...)
	next = append(next, line[col:]...)

	b.lines[row] = next
	b.cursor = Pos{Row: row, Col: col + len(ins)}
	b.version++
}

// InsertGrapheme inserts a single grapheme cluster at the cursor.
func (b *Buffer) InsertGrapheme(g string) {
	if g == "" {
		return
	}
	b.InsertText(g)
}

// InsertLineBelow inserts an empty line after the cursor's line and moves the
// cursor to its start. Text right of the cursor stays where it is.
func (b *Buffer) InsertLineBelow() {
	row := b.cursor.Row
	b.insertLine(row+1, nil)
	b.cursor = Pos{Row: row + 1, Col: 0}
	b.version++
}

// DeleteBackward applies backspace semantics.
//
// At column 0 the current line is appended to the previous one and removed;
// the cursor lands on the join point.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	if col > 0 {
		line := b.lines[row]
		next := make([]string, 0, len(line)-1)
		next = append(next, line[:col-1]...)
		next = append(next, line[col:]...)
		b.lines[row] = next
		b.cursor = Pos{Row: row, Col: col - 1}
		b.version++
		return
	}

	// Join with previous line.
	prevRow := row - 1
	joinCol := len(b.lines[prevRow])
	joined := make([]string, 0, joinCol+len(b.lines[row]))
	joined = append(joined, b.lines[prevRow]...)
	joined = append(joined, b.lines[row]...)
	b.lines[prevRow] = joined
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.cursor = Pos{Row: prevRow, Col: joinCol}
	b.version++
}

// InsertLineAfter inserts content as a new line after row. The cursor does not
// move, except that it keeps pointing at the same line when that line shifts.
// It panics if row is out of range.
func (b *Buffer) InsertLineAfter(row int, content string) {
	b.mustRow(row)
	b.insertLine(row+1, grapheme.Split(stripBreaks(content)))
	if b.cursor.Row > row {
		b.cursor.Row++
	}
	b.version++
}

// SetLine replaces the content of row. It panics if row is out of range.
func (b *Buffer) SetLine(row int, content string) {
	b.mustRow(row)
	b.lines[row] = grapheme.Split(stripBreaks(content))
	b.cursor = b.clampPos(b.cursor)
	b.version++
}

// RemoveLine deletes row. Removing the only line leaves a single empty line.
// It panics if row is out of range.
func (b *Buffer) RemoveLine(row int) {
	b.mustRow(row)
	if len(b.lines) == 1 {
		b.lines[0] = nil
		b.cursor = Pos{}
		b.version++
		return
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	if b.cursor.Row > row {
		b.cursor.Row--
	}
	b.cursor = b.clampPos(b.cursor)
	b.version++
}

func (b *Buffer) insertLine(at int, line []string) {
	b.lines = append(b.lines, nil)
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = line
}

func stripBreaks(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
