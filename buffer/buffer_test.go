package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_AlwaysHasOneLine(t *testing.T) {
	b := New("")
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	if got := b.CurrentLine(); got != "" {
		t.Fatalf("current line=%q, want empty", got)
	}
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want origin", got)
	}
}

func TestNew_SplitsOnNewlineAndDropsCR(t *testing.T) {
	b := New("a\r\nbc\n")
	want := []string{"a", "bc", ""}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestText_RoundTripLF(t *testing.T) {
	for _, text := range []string{"", "one", "f(x):= 2*x+3\nf(5)\n", "\n\n", "πテ\n# note"} {
		if got := New(text).Text(); got != text {
			t.Fatalf("Text()=%q, want %q", got, text)
		}
	}
}

func TestText_CRLFBecomesLF(t *testing.T) {
	if got, want := New("f(x):= x\r\nf(2)\r\n").Text(), "f(x):= x\nf(2)\n"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
}

func TestSetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc")
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: -3, Col: -1})
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want origin", got)
	}
}

func TestLine_PanicsOutOfRange(t *testing.T) {
	b := New("a")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range row")
		}
	}()
	_ = b.Line(1)
}

func TestClampPos(t *testing.T) {
	lineLen := func(row int) int { return []int{3, 0}[row] }
	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: 0, Col: 2}, want: Pos{Row: 0, Col: 2}},
		{in: Pos{Row: 0, Col: 9}, want: Pos{Row: 0, Col: 3}},
		{in: Pos{Row: 5, Col: 1}, want: Pos{Row: 1, Col: 0}},
		{in: Pos{Row: -1, Col: -1}, want: Pos{Row: 0, Col: 0}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, 2, lineLen); got != tc.want {
			t.Fatalf("ClampPos(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
