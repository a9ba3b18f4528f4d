package calc

import (
	"regexp"
	"strconv"
)

// FreeVariable is the symbol definitions are written over.
const FreeVariable = "x"

// Kind classifies a line.
type Kind int

const (
	Unrecognized Kind = iota
	Definition
	Call
	Solve
)

func (k Kind) String() string {
	switch k {
	case Definition:
		return "definition"
	case Call:
		return "call"
	case Solve:
		return "solve"
	default:
		return "unrecognized"
	}
}

// Statement is a recognized line. Body is set for definitions, Arg for calls
// and solves.
type Statement struct {
	Kind Kind
	Name string
	Body string
	Arg  int64
}

type matcher struct {
	kind Kind
	re   *regexp.Regexp
}

// matchers are tried in order and the first match wins. Definitions come
// first because their body may itself look like a call or an equation.
var matchers = []matcher{
	{kind: Definition, re: regexp.MustCompile(`^\s*(\w+)\(` + regexp.QuoteMeta(FreeVariable) + `\)\s*:=\s*(.*?)\s*$`)},
	{kind: Call, re: regexp.MustCompile(`^\s*(\w+)\((\d+)\)\s*$`)},
	{kind: Solve, re: regexp.MustCompile(`^\s*(\w+)\s*=\s*(-?\d+)\s*$`)},
}

// Recognize classifies line.
func Recognize(line string) Statement {
	for _, m := range matchers {
		sub := m.re.FindStringSubmatch(line)
		if sub == nil {
			continue
		}
		st, ok := build(m.kind, sub[1], sub[2])
		if !ok {
			return Statement{Kind: Unrecognized}
		}
		return st
	}
	return Statement{Kind: Unrecognized}
}

func build(kind Kind, name, field string) (Statement, bool) {
	if kind == Definition {
		if field == "" {
			return Statement{}, false
		}
		return Statement{Kind: kind, Name: name, Body: field}, true
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return Statement{}, false
	}
	return Statement{Kind: kind, Name: name, Arg: n}, true
}
