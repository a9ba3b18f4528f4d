package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Dir MoveDir
}

// Move applies a cursor movement. Left and Right never leave the current line.
// Up keeps the column where the destination line allows it; Down always lands
// on column 0.
func (b *Buffer) Move(m Move) {
	next := b.clampPos(b.moveCursor(b.cursor, m.Dir))
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) moveCursor(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col == 0 {
			return p
		}
		return Pos{Row: row, Col: col - 1}
	case DirRight:
		if col >= len(b.lines[row]) {
			return p
		}
		return Pos{Row: row, Col: col + 1}
	case DirUp:
		if row == 0 {
			return p
		}
		nr := row - 1
		return Pos{Row: nr, Col: minInt(col, len(b.lines[nr]))}
	case DirDown:
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, Col: 0}
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	default:
		return p
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
