package calc

import (
	"fmt"
	"math"
)

// Evaluate substitutes x for the free variable in body and computes the
// arithmetic result.
//
// Grammar, loosest first:
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/") unary | implicit unary }
//	unary  = ("+" | "-") unary | power
//	power  = primary [ "^" unary ]
//	primary = number | "(" expr ")"
//
// A factor directly followed by the variable or "(" multiplies, so 2x and
// 3(x+1) are accepted.
func Evaluate(body string, x float64) (float64, error) {
	return EvaluateVar(body, FreeVariable, x)
}

// EvaluateVar is Evaluate with an explicit variable name.
func EvaluateVar(body, variable string, value float64) (float64, error) {
	toks, err := lex(body)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: substitute(toks, variable, value)}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, fmt.Errorf("%w: unexpected %q", ErrParse, t.text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if t.text == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		switch {
		case t.kind == tokOp && t.text == "*":
			p.next()
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			left *= right
		case t.kind == tokOp && t.text == "/":
			p.next()
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			left /= right
		case t.kind == tokLParen || (t.kind == tokNumber && t.bound):
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			left *= right
		default:
			return left, nil
		}
	}
}

func (p *parser) unary() (float64, error) {
	t := p.peek()
	if t.kind == tokOp && (t.text == "+" || t.text == "-") {
		p.next()
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		if t.text == "-" {
			return -v, nil
		}
		return v, nil
	}
	return p.power()
}

func (p *parser) power() (float64, error) {
	base, err := p.primary()
	if err != nil {
		return 0, err
	}
	t := p.peek()
	if t.kind != tokOp || t.text != "^" {
		return base, nil
	}
	p.next()
	exp, err := p.unary()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *parser) primary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.num, nil
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if c := p.next(); c.kind != tokRParen {
			return 0, fmt.Errorf("%w: missing \")\"", ErrParse)
		}
		return v, nil
	case tokIdent:
		return 0, fmt.Errorf("%w: unknown identifier %q", ErrParse, t.text)
	case tokEOF:
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrParse)
	default:
		return 0, fmt.Errorf("%w: unexpected %q", ErrParse, t.text)
	}
}
