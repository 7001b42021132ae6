package units

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Quantity is a value with a physical dimension. Operations on quantities
// return new quantities and never modify their operands.
type Quantity struct {
	Value float64
	Dim   Dim
}

// Scalar returns a dimensionless quantity.
func Scalar(v float64) Quantity {
	return Quantity{Value: v}
}

// Unit returns a quantity of one unit of the given dimension.
func Unit(d Dim) Quantity {
	return Quantity{Value: 1, Dim: d}
}

// Add returns q + r. If q and r have different dimensions, the error is a
// *DimensionError.
func (q Quantity) Add(r Quantity) (Quantity, error) {
	if q.Dim != r.Dim {
		return Quantity{}, &DimensionError{Op: "+", Left: q.Dim, Right: r.Dim}
	}
	return Quantity{Value: q.Value + r.Value, Dim: q.Dim}, nil
}

// Sub returns q - r. If q and r have different dimensions, the error is a
// *DimensionError.
func (q Quantity) Sub(r Quantity) (Quantity, error) {
	if q.Dim != r.Dim {
		return Quantity{}, &DimensionError{Op: "-", Left: q.Dim, Right: r.Dim}
	}
	return Quantity{Value: q.Value - r.Value, Dim: q.Dim}, nil
}

// Mul returns q * r.
func (q Quantity) Mul(r Quantity) Quantity {
	return Quantity{Value: q.Value * r.Value, Dim: q.Dim.Mul(r.Dim)}
}

// Div returns q / r. Division by zero follows IEEE 754, giving an infinity or
// NaN.
func (q Quantity) Div(r Quantity) Quantity {
	return Quantity{Value: q.Value / r.Value, Dim: q.Dim.Div(r.Dim)}
}

// Pow returns q^n. q^0 is dimensionless 1 for every q, including quantities
// with dimensions.
func (q Quantity) Pow(n int) Quantity {
	if n == 0 {
		return Scalar(1)
	}
	return Quantity{Value: ipow(q.Value, n), Dim: q.Dim.Pow(n)}
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return Quantity{Value: -q.Value, Dim: q.Dim}
}

// String formats q as its value followed by its dimension in base units.
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " + q.Dim.String()
}

// powprec is the precision in bits of intermediate results for ipow.
const powprec = 128

// ipow computes x^n, rounding only once to float64.
func ipow(x float64, n int) float64 {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return math.Pow(x, float64(n))
	}
	z := new(big.Float).SetPrec(powprec).SetFloat64(math.Abs(x))
	y := new(big.Float).SetPrec(powprec).SetInt64(int64(n))
	// Pow may return a different value than its output argument.
	z = bigfloat.Pow(z, z, y)
	r, _ := z.Float64()
	if x < 0 && n%2 != 0 {
		r = -r
	}
	return r
}
