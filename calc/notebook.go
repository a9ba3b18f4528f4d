package calc

import (
	"fmt"
	"strconv"
)

// Severity tells the renderer how to present a Result.
type Severity int

const (
	Info Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "info"
}

// Result is the outcome of committing one line. Err is nil on success, in
// which case Value holds the computed number for calls and solves.
type Result struct {
	Kind     Kind
	Name     string
	Severity Severity
	Text     string
	Value    float64
	Err      error
}

// Notebook evaluates committed lines against its function table.
type Notebook struct {
	table Table
}

func (n *Notebook) Table() *Table { return &n.table }

// Commit recognizes line and runs it.
func (n *Notebook) Commit(line string) Result {
	st := Recognize(line)
	switch st.Kind {
	case Definition:
		n.table.Define(st.Name, st.Body)
		return Result{
			Kind: Definition,
			Name: st.Name,
			Text: fmt.Sprintf("defined %s(%s) = %s", st.Name, FreeVariable, st.Body),
		}
	case Call:
		return n.call(st)
	case Solve:
		return n.solve(st)
	default:
		return failed(st, &LineError{Err: ErrSyntax})
	}
}

func (n *Notebook) call(st Statement) Result {
	body, ok := n.table.Lookup(st.Name)
	if !ok {
		return failed(st, &LineError{Name: st.Name, Err: ErrFunctionNotFound})
	}
	v, err := Evaluate(body, float64(st.Arg))
	if err != nil {
		return failed(st, &LineError{Name: st.Name, Err: err})
	}
	return Result{
		Kind:  Call,
		Name:  st.Name,
		Text:  fmt.Sprintf("%s(%d) = %s", st.Name, st.Arg, FormatValue(v)),
		Value: v,
	}
}

func (n *Notebook) solve(st Statement) Result {
	body, ok := n.table.Lookup(st.Name)
	if !ok {
		return failed(st, &LineError{Name: st.Name, Err: ErrFunctionNotFound})
	}
	slope, intercept, ok := ExtractLinear(body)
	if !ok {
		return failed(st, &LineError{Name: st.Name, Err: fmt.Errorf("%w: %s is not linear", ErrSolve, body)})
	}
	x, err := SolveLinear(slope, intercept, float64(st.Arg))
	if err != nil {
		return failed(st, &LineError{Name: st.Name, Err: fmt.Errorf("%w: no unique solution", err)})
	}
	return Result{
		Kind:  Solve,
		Name:  st.Name,
		Text:  fmt.Sprintf("%s(%s) = %d => %s = %s", st.Name, FreeVariable, st.Arg, FreeVariable, FormatSolution(x)),
		Value: x,
	}
}

func failed(st Statement, err error) Result {
	return Result{
		Kind:     st.Kind,
		Name:     st.Name,
		Severity: Error,
		Text:     err.Error(),
		Err:      err,
	}
}

// FormatValue renders v in the shortest form that round-trips. Negative
// zero prints as 0.
func FormatValue(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
