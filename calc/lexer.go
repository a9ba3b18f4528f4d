package calc

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp // + - * / ^
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  float64
	// bound marks a number that replaced the free variable.
	bound bool
}

func lex(src string) ([]token, error) {
	var out []token
	rs := []rune(src)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || r == '.':
			j := i
			for j < len(rs) && (unicode.IsDigit(rs[j]) || rs[j] == '.') {
				j++
			}
			text := string(rs[i:j])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrParse, text)
			}
			out = append(out, token{kind: tokNumber, text: text, num: v})
			i = j
		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j]) || rs[j] == '_') {
				j++
			}
			out = append(out, token{kind: tokIdent, text: string(rs[i:j])})
			i = j
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
			out = append(out, token{kind: tokOp, text: string(r)})
			i++
		case r == '(':
			out = append(out, token{kind: tokLParen, text: "("})
			i++
		case r == ')':
			out = append(out, token{kind: tokRParen, text: ")"})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrParse, string(r))
		}
	}
	return out, nil
}

// substitute replaces every identifier token equal to name with value.
// Identifiers that merely contain name are left alone.
func substitute(toks []token, name string, value float64) []token {
	out := make([]token, len(toks))
	for i, t := range toks {
		if t.kind == tokIdent && t.text == name {
			t = token{kind: tokNumber, text: name, num: value, bound: true}
		}
		out[i] = t
	}
	return out
}
