package units

import (
	"strconv"
	"strings"
)

// Base identifies one of the base physical quantities.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount

	numBases
)

// Dim is a physical dimension, the exponents of each base quantity. Dims are
// compared with ==; two dimensions are equal only when every exponent is.
type Dim [numBases]int

// Dimensionless is the dimension of pure numbers.
var Dimensionless Dim

// baseorder is the order in which base units appear in Dim.String.
var baseorder = [numBases]struct {
	b   Base
	sym string
}{
	{Mass, "kg"},
	{Length, "m"},
	{Current, "A"},
	{Temperature, "K"},
	{Amount, "mol"},
	{Time, "s"},
}

// Mul returns the dimension of a product of quantities with dimensions d and
// e.
func (d Dim) Mul(e Dim) Dim {
	for i := range d {
		d[i] += e[i]
	}
	return d
}

// Div returns the dimension of a quotient of quantities with dimensions d and
// e.
func (d Dim) Div(e Dim) Dim {
	for i := range d {
		d[i] -= e[i]
	}
	return d
}

// Pow returns the dimension of a quantity with dimension d raised to the n.
func (d Dim) Pow(n int) Dim {
	for i := range d {
		d[i] *= n
	}
	return d
}

// IsDimensionless returns whether every exponent of d is zero.
func (d Dim) IsDimensionless() bool {
	return d == Dimensionless
}

// String formats d in base units, e.g. "kg*m/s^2". Positive exponents form
// the numerator and negative ones the denominator, in the order kg, m, A, K,
// mol, s. A dimensionless d formats as "1".
func (d Dim) String() string {
	var num, den strings.Builder
	for _, u := range baseorder {
		n := d[u.b]
		if n == 0 {
			continue
		}
		b := &num
		if n < 0 {
			b = &den
			n = -n
		}
		if b.Len() > 0 {
			b.WriteByte('*')
		}
		b.WriteString(u.sym)
		if n != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(n))
		}
	}
	if num.Len() == 0 {
		num.WriteByte('1')
	}
	if den.Len() == 0 {
		return num.String()
	}
	return num.String() + "/" + den.String()
}
