package calc

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		body string
		x    float64
		want float64
	}{
		{body: "2*x+3", x: 5, want: 13},
		{body: "x", x: 0, want: 0},
		{body: "2x+3", x: 5, want: 13},
		{body: "3(x+1)", x: 2, want: 9},
		{body: "(x+1)(x-1)", x: 3, want: 8},
		{body: "1 + 2 * 3", x: 0, want: 7},
		{body: "(1 + 2) * 3", x: 0, want: 9},
		{body: "10 - 4 - 3", x: 0, want: 3},
		{body: "12 / 3 / 2", x: 0, want: 2},
		{body: "2^3^2", x: 0, want: 512},
		{body: "-x^2", x: 3, want: -9},
		{body: "2^-1", x: 0, want: 0.5},
		{body: "x*x - 2*x + 1", x: 4, want: 9},
		{body: "x / 4", x: 2, want: 0.5},
		{body: " 1.5 * x ", x: 2, want: 3},
	}
	for _, tc := range cases {
		got, err := Evaluate(tc.body, tc.x)
		if err != nil {
			t.Fatalf("Evaluate(%q, %v): unexpected error %v", tc.body, tc.x, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Evaluate(%q, %v)=%v, want %v", tc.body, tc.x, got, tc.want)
		}
	}
}

func TestEvaluate_Errors(t *testing.T) {
	cases := []struct {
		body string
		want error
	}{
		{body: "", want: ErrParse},
		{body: "2*", want: ErrParse},
		{body: "(x+1", want: ErrParse},
		{body: "x+1)", want: ErrParse},
		{body: "2 $ 3", want: ErrParse},
		{body: "1..2", want: ErrParse},
		{body: "y+1", want: ErrParse},
		{body: "1 2", want: ErrParse},
		{body: "x/0", want: ErrDivisionByZero},
		{body: "1/(x-5)", want: ErrDivisionByZero},
		{body: "0^-1", want: ErrNotFinite},
		{body: "(0-8)^0.5", want: ErrNotFinite},
	}
	for _, tc := range cases {
		_, err := Evaluate(tc.body, 5)
		if !errors.Is(err, tc.want) {
			t.Fatalf("Evaluate(%q): err=%v, want %v", tc.body, err, tc.want)
		}
	}
}

// Substitution works on whole tokens: the variable inside a longer
// identifier is not replaced, so the identifier stays unknown.
func TestEvaluate_SubstitutionRespectsTokenBoundaries(t *testing.T) {
	_, err := Evaluate("max + x", 2)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err=%v, want %v", err, ErrParse)
	}

	got, err := EvaluateVar("n*n + nx", "n", 3)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("got=%v err=%v, want %v", got, err, ErrParse)
	}

	got, err = EvaluateVar("n*n + 1", "n", 3)
	if err != nil || got != 10 {
		t.Fatalf("EvaluateVar=(%v,%v), want (10,nil)", got, err)
	}
}
