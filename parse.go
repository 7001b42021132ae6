package units

import "errors"

// Expr    = Term { ('+' | '-') Term }
// Term    = Factor { ('*' | '×' | '/' | '÷' | <implicit>) Factor }
// Factor  = { '+' | '-' } Primary [ '^' Int ]
// Primary = '(' Expr ')' | Number { Symbol } | Symbol
// Int     = [ '+' | '-' ] digits
//
// Every nonterminal evaluates directly to a Quantity; there is no syntax tree.
// An implicit multiplication happens whenever a factor is followed by
// something that can start another factor.

// parse evaluates the entire input.
func (p *parser) parse() (Quantity, error) {
	q, err := p.expr()
	if err != nil {
		return Quantity{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Quantity{}, &TrailingError{Col: p.col(), Text: string(p.src[p.pos:])}
	}
	return q, nil
}

// expr evaluates a sum of terms.
func (p *parser) expr() (Quantity, error) {
	q, err := p.term()
	if err != nil {
		return Quantity{}, err
	}
	for {
		p.skipSpace()
		op := p.peek()
		if op != '+' && op != '-' {
			return q, nil
		}
		col := p.col()
		p.pos++
		rhs, err := p.term()
		if err != nil {
			return Quantity{}, err
		}
		if op == '+' {
			q, err = q.Add(rhs)
		} else {
			q, err = q.Sub(rhs)
		}
		if err != nil {
			var d *DimensionError
			if errors.As(err, &d) {
				d.Col = col
			}
			return Quantity{}, err
		}
	}
}

// term evaluates a product or quotient of factors. Operators are
// left-associative, so a/b*c is (a/b)*c.
func (p *parser) term() (Quantity, error) {
	q, err := p.factor()
	if err != nil {
		return Quantity{}, err
	}
	for {
		p.skipSpace()
		div := false
		switch r := p.peek(); {
		case r == '*', r == '×':
			p.pos++
		case r == '/', r == '÷':
			p.pos++
			div = true
		case startsFactor(r):
			// (parsed) x -> (parsed) * (x)
		default:
			return q, nil
		}
		rhs, err := p.factor()
		if err != nil {
			return Quantity{}, err
		}
		if div {
			q = q.Div(rhs)
		} else {
			q = q.Mul(rhs)
		}
	}
}

// startsFactor returns whether r can begin a factor without an operator
// before it. Signs are excluded because they are binary there.
func startsFactor(r rune) bool {
	return isdigit(r) || r == '.' || r == '(' || IsSymbolRune(r)
}

// factor evaluates a signed primary with an optional exponent. The sign
// applies after the exponent: -2^2 is -(2^2).
func (p *parser) factor() (Quantity, error) {
	neg := false
signs:
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
		case '-':
			p.pos++
			neg = !neg
		default:
			break signs
		}
	}
	q, err := p.primary()
	if err != nil {
		return Quantity{}, err
	}
	p.skipSpace()
	if p.peek() == '^' {
		p.pos++
		n, err := p.scanExponent()
		if err != nil {
			return Quantity{}, err
		}
		q = q.Pow(n)
	}
	if neg {
		q = q.Neg()
	}
	return q, nil
}

// primary evaluates a parenthesized expression, a number with any units
// written after it, or a bare unit.
func (p *parser) primary() (Quantity, error) {
	p.skipSpace()
	col := p.col()
	switch r := p.peek(); {
	case r == eof:
		return Quantity{}, &EndError{Col: col}
	case r == '(':
		p.pos++
		q, err := p.expr()
		if err != nil {
			return Quantity{}, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return Quantity{}, &BracketError{Col: col}
		}
		p.pos++
		return q, nil
	case isdigit(r), r == '.':
		v, err := p.scanNum()
		if err != nil {
			return Quantity{}, err
		}
		q := Scalar(v)
		for {
			p.skipSpace()
			if !IsSymbolRune(p.peek()) {
				return q, nil
			}
			d, err := p.unit()
			if err != nil {
				return Quantity{}, err
			}
			q = q.Mul(Unit(d))
		}
	case IsSymbolRune(r):
		d, err := p.unit()
		if err != nil {
			return Quantity{}, err
		}
		return Unit(d), nil
	default:
		return Quantity{}, &CharError{Col: col, Char: r}
	}
}
