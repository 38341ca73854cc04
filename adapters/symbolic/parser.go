package symbolic

import (
	"fmt"
	"math"
	"strconv"
	"unicode"

	gosymbol "github.com/njchilds90/gosymbol"
)

// parser is a small recursive-descent reader that lifts the engine's
// normalized evaluable form into a gosymbol expression tree. It covers the
// calculator's input vocabulary (+ - * / ^, parentheses, exp/ln/sqrt/abs
// calls, numbers, the free variable); anything outside that fails the parse
// and the adapter reports no symbolic result.
type parser struct {
	src string
	pos int
}

func parse(src string) (expr gosymbol.Expr, err error) {
	p := &parser{src: src}
	expr, err = p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("trailing input at %d: %q", p.pos, p.src[p.pos:])
	}
	return expr, nil
}

func (p *parser) parseSum() (gosymbol.Expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = gosymbol.AddOf(left, right)
		case '-':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = gosymbol.AddOf(left, gosymbol.MulOf(gosymbol.N(-1), right))
		default:
			return left, nil
		}
	}
}

func (p *parser) parseProduct() (gosymbol.Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = gosymbol.MulOf(left, right)
		case '/':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = gosymbol.MulOf(left, gosymbol.PowOf(right, gosymbol.N(-1)))
		default:
			return left, nil
		}
	}
}

func (p *parser) parsePower() (gosymbol.Expr, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	// Right associative: x^2^3 is x^(2^3).
	exp, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return gosymbol.PowOf(base, exp), nil
}

func (p *parser) parseUnary() (gosymbol.Expr, error) {
	if p.peek() == '-' {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return gosymbol.MulOf(gosymbol.N(-1), inner), nil
	}
	if p.peek() == '+' {
		p.pos++
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (gosymbol.Expr, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("missing ) at %d", p.pos)
		}
		p.pos++
		return inner, nil
	case unicode.IsDigit(rune(c)) || c == '.':
		return p.parseNumber()
	case unicode.IsLetter(rune(c)):
		return p.parseIdent()
	default:
		return nil, fmt.Errorf("unexpected %q at %d", c, p.pos)
	}
}

func (p *parser) parseNumber() (gosymbol.Expr, error) {
	start := p.pos
	for p.pos < len(p.src) && (unicode.IsDigit(rune(p.src[p.pos])) || p.src[p.pos] == '.') {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return nil, err
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return gosymbol.N(int64(v)), nil
	}
	return gosymbol.NFloat(v), nil
}

func (p *parser) parseIdent() (gosymbol.Expr, error) {
	start := p.pos
	for p.pos < len(p.src) && unicode.IsLetter(rune(p.src[p.pos])) {
		p.pos++
	}
	name := p.src[start:p.pos]
	if p.peek() == '(' {
		p.pos++
		arg, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("missing ) at %d", p.pos)
		}
		p.pos++
		return applyFunc(name, arg)
	}
	switch name {
	case "pi":
		return gosymbol.NFloat(math.Pi), nil
	case "e":
		return gosymbol.ExpOf(gosymbol.N(1)), nil
	}
	return gosymbol.S(name), nil
}

func applyFunc(name string, arg gosymbol.Expr) (gosymbol.Expr, error) {
	switch name {
	case "exp":
		return gosymbol.ExpOf(arg), nil
	case "ln", "log":
		return gosymbol.LnOf(arg), nil
	case "sqrt":
		return gosymbol.SqrtOf(arg), nil
	case "abs":
		return gosymbol.AbsOf(arg), nil
	case "sin":
		return gosymbol.SinOf(arg), nil
	case "cos":
		return gosymbol.CosOf(arg), nil
	case "tan":
		return gosymbol.TanOf(arg), nil
	default:
		// fact() and friends have no antiderivative rule worth offering.
		return nil, fmt.Errorf("unsupported function %q", name)
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}
