package calc

import (
	"errors"
	"testing"
)

func TestExtractLinear(t *testing.T) {
	cases := []struct {
		body      string
		slope     float64
		intercept float64
	}{
		{body: "2x+3", slope: 2, intercept: 3},
		{body: "2*x+3", slope: 2, intercept: 3},
		{body: "x", slope: 1, intercept: 0},
		{body: "x - 4", slope: 1, intercept: -4},
		{body: "-x+1", slope: -1, intercept: 1},
		{body: "-2.5x - 1 0", slope: -2.5, intercept: -10},
		{body: " 0.5 * x + 2 ", slope: 0.5, intercept: 2},
		{body: "0x+7", slope: 0, intercept: 7},
	}
	for _, tc := range cases {
		slope, intercept, ok := ExtractLinear(tc.body)
		if !ok {
			t.Fatalf("ExtractLinear(%q): not linear", tc.body)
		}
		if slope != tc.slope || intercept != tc.intercept {
			t.Fatalf("ExtractLinear(%q)=(%v,%v), want (%v,%v)", tc.body, slope, intercept, tc.slope, tc.intercept)
		}
	}
}

func TestExtractLinear_RejectsOtherShapes(t *testing.T) {
	for _, body := range []string{"x*x", "x+x", "2(x+1)", "x^2", "3", "3+2x", "x/2", "*x", "2x+", ""} {
		if _, _, ok := ExtractLinear(body); ok {
			t.Fatalf("ExtractLinear(%q): expected not linear", body)
		}
	}
}

func TestSolveLinear(t *testing.T) {
	x, err := SolveLinear(2, 3, 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := FormatSolution(x), "5.00"; got != want {
		t.Fatalf("FormatSolution=%q, want %q", got, want)
	}

	x, err = SolveLinear(3, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := FormatSolution(x), "0.33"; got != want {
		t.Fatalf("FormatSolution=%q, want %q", got, want)
	}
}

func TestSolveLinear_ZeroSlope(t *testing.T) {
	if _, err := SolveLinear(0, 7, 7); !errors.Is(err, ErrSolve) {
		t.Fatalf("err=%v, want %v", err, ErrSolve)
	}
}

func TestFormatSolution_NoNegativeZero(t *testing.T) {
	if got := FormatSolution(-0.001); got != "0.00" {
		t.Fatalf("FormatSolution(-0.001)=%q, want %q", got, "0.00")
	}
	if got := FormatSolution(-1.5); got != "-1.50" {
		t.Fatalf("FormatSolution(-1.5)=%q, want %q", got, "-1.50")
	}
}
