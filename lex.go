package units

import (
	"errors"
	"strconv"
	"unicode"
)

// eof is the rune peek returns at the end of the input.
const eof = -1

// parser is the state of a single parse: the input, a cursor into it, and the
// registry used to resolve symbols. The cursor only moves forward.
type parser struct {
	src []rune
	pos int
	reg *Registry
}

// newParser prepares src for parsing with reg. Runes are folded one at a time,
// so columns in errors count runes of src as written.
func newParser(reg *Registry, src string) *parser {
	rs := []rune(src)
	for i, r := range rs {
		rs[i] = foldrune(r)
	}
	return &parser{src: rs, reg: reg}
}

// peek returns the rune at the cursor, or eof.
func (p *parser) peek() rune {
	return p.peekAt(0)
}

// peekAt returns the rune k places after the cursor, or eof.
func (p *parser) peekAt(k int) rune {
	if p.pos+k >= len(p.src) {
		return eof
	}
	return p.src[p.pos+k]
}

// col is the 1-based column of the cursor.
func (p *parser) col() int {
	return p.pos + 1
}

// skipSpace advances the cursor past whitespace.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// digits advances past a run of decimal digits and returns how many there
// were.
func (p *parser) digits() int {
	n := 0
	for isdigit(p.peek()) {
		p.pos++
		n++
	}
	return n
}

// scanNum scans a decimal literal, like 1, 1., .1, or 1.1e-1. An e or E
// after the mantissa always begins an exponent, so it must be followed by
// digits, possibly after a sign.
func (p *parser) scanNum() (float64, error) {
	start := p.pos
	dig := p.digits() > 0
	if p.peek() == '.' {
		p.pos++
		if p.digits() > 0 {
			dig = true
		}
	}
	if !dig {
		return 0, &NumberError{Col: start + 1, Text: string(p.src[start:p.pos])}
	}
	if r := p.peek(); r == 'e' || r == 'E' {
		p.pos++
		if s := p.peek(); s == '+' || s == '-' {
			p.pos++
		}
		if p.digits() == 0 {
			return 0, &NumberError{Col: start + 1, Text: string(p.src[start:p.pos])}
		}
	}
	text := string(p.src[start:p.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// The literal is well-formed, so the only possible error is range.
		// ParseFloat already gives the appropriately signed infinity or zero.
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &NumberError{Col: start + 1, Text: text}
	}
	return v, nil
}

// scanSymbol scans a run of symbol runes. The cursor must be on one.
func (p *parser) scanSymbol() string {
	start := p.pos
	for IsSymbolRune(p.peek()) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// scanExponent scans an optionally signed integer exponent after ^.
func (p *parser) scanExponent() (int, error) {
	p.skipSpace()
	start := p.pos
	if r := p.peek(); r == '+' || r == '-' {
		p.pos++
	}
	if p.digits() == 0 {
		text := string(p.src[start:p.pos])
		if r := p.peek(); r != eof {
			text += string(r)
		}
		return 0, &ExponentError{Col: start + 1, Text: text}
	}
	text := string(p.src[start:p.pos])
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, &ExponentError{Col: start + 1, Text: text}
	}
	return int(n), nil
}

// unit scans a unit symbol and resolves its dimension.
func (p *parser) unit() (Dim, error) {
	col := p.col()
	sym := p.scanSymbol()
	d, err := p.reg.Resolve(sym)
	if err != nil {
		var u *UnknownSymbolError
		if errors.As(err, &u) {
			u.Col = col
		}
		return Dim{}, err
	}
	return d, nil
}
