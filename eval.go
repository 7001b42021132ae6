package units

import (
	"fmt"
	"io"
	"strings"
)

// EvalString evaluates an expression using the units in reg. If the
// expression is invalid, the error implements InputError, and no partial
// result is returned.
func EvalString(reg *Registry, src string) (Quantity, error) {
	p := newParser(reg, src)
	return p.parse()
}

// Eval reads an entire expression from src and evaluates it using the units in
// reg.
func Eval(reg *Registry, src io.Reader) (Quantity, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return Quantity{}, err
	}
	return EvalString(reg, string(b))
}

// ParseDim evaluates a unit expression like "kg*m/s^2" and returns only its
// dimension. Numbers may appear in the expression, but their values are
// ignored.
func ParseDim(reg *Registry, src string) (Dim, error) {
	q, err := EvalString(reg, src)
	if err != nil {
		return Dim{}, err
	}
	return q.Dim, nil
}

// ParseBase parses a dimension in the format produced by Dim.String. Unlike
// ParseDim, everything after the slash is in the denominator, so
// ParseBase(reg, d.String()) == d whenever reg has the base units.
func ParseBase(reg *Registry, s string) (Dim, error) {
	num, den, ok := strings.Cut(s, "/")
	n, err := ParseDim(reg, num)
	if err != nil {
		return Dim{}, fmt.Errorf("numerator: %w", err)
	}
	if !ok {
		return n, nil
	}
	d, err := ParseDim(reg, den)
	if err != nil {
		return Dim{}, fmt.Errorf("denominator: %w", err)
	}
	return n.Div(d), nil
}
