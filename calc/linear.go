package calc

import (
	"regexp"
	"strconv"
	"strings"
)

// linearRE matches [sign][coef[*]]x[(+|-)const] with all whitespace removed.
var linearRE = regexp.MustCompile(`^([+-]?)(?:(\d+(?:\.\d+)?)\*?)?` + regexp.QuoteMeta(FreeVariable) + `(?:([+-])(\d+(?:\.\d+)?))?$`)

// ExtractLinear reads body as slope*x + intercept. The coefficient defaults
// to 1 and the constant to 0. ok is false for any other shape.
func ExtractLinear(body string) (slope, intercept float64, ok bool) {
	compact := strings.Join(strings.Fields(body), "")
	m := linearRE.FindStringSubmatch(compact)
	if m == nil {
		return 0, 0, false
	}

	slope = 1
	if m[2] != "" {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, 0, false
		}
		slope = v
	}
	if m[1] == "-" {
		slope = -slope
	}

	if m[4] != "" {
		v, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return 0, 0, false
		}
		intercept = v
		if m[3] == "-" {
			intercept = -v
		}
	}
	return slope, intercept, true
}

// SolveLinear returns the x for which slope*x + intercept equals target.
func SolveLinear(slope, intercept, target float64) (float64, error) {
	if slope == 0 {
		return 0, ErrSolve
	}
	return (target - intercept) / slope, nil
}

// FormatSolution renders a solution with exactly two decimals.
func FormatSolution(x float64) string {
	s := strconv.FormatFloat(x, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
