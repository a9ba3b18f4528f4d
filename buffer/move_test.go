package buffer

import "testing"

func TestMove_LeftRightStayOnLine(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Row: 1, Col: 0})

	b.Move(Move{Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("left at SOL: cursor=%v, want %v", got, want)
	}

	b.SetCursor(Pos{Row: 0, Col: 2})
	v := b.Version()
	b.Move(Move{Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("right at EOL: cursor=%v, want %v", got, want)
	}
	if b.Version() != v {
		t.Fatalf("no-op move must not bump version")
	}

	b.Move(Move{Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestMove_UpClampsColumn(t *testing.T) {
	b := New("ab\nlonger line")
	b.SetCursor(Pos{Row: 1, Col: 8})

	b.Move(Move{Dir: DirUp})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.SetCursor(Pos{Row: 1, Col: 1})
	b.Move(Move{Dir: DirUp})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.Move(Move{Dir: DirUp})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("up at first line: cursor=%v, want %v", got, want)
	}
}

func TestMove_DownResetsColumn(t *testing.T) {
	b := New("abc\ndef")
	b.SetCursor(Pos{Row: 0, Col: 2})

	b.Move(Move{Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.SetCursor(Pos{Row: 1, Col: 3})
	b.Move(Move{Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 3}); got != want {
		t.Fatalf("down at last line: cursor=%v, want %v", got, want)
	}
}

func TestMove_HomeEnd(t *testing.T) {
	b := New("hello")
	b.SetCursor(Pos{Row: 0, Col: 2})

	b.Move(Move{Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 5}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Dir: DirHome})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestMove_CursorInvariantHolds(t *testing.T) {
	b := New("a\n\nlong line here\nxy")
	dirs := []MoveDir{DirDown, DirDown, DirEnd, DirUp, DirRight, DirDown, DirDown, DirLeft, DirUp, DirUp, DirUp, DirUp}
	for _, d := range dirs {
		b.Move(Move{Dir: d})
		c := b.Cursor()
		if c.Row < 0 || c.Row >= b.LineCount() {
			t.Fatalf("row %d out of range after %v", c.Row, d)
		}
		if c.Col < 0 || c.Col > b.LineLen(c.Row) {
			t.Fatalf("col %d out of range for row %d after %v", c.Col, c.Row, d)
		}
	}
}
