package main

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/units"
)

// result is a quantity prepared for display.
type result struct {
	// Text is the value and unit, e.g. "6 N", or the unit alone for a value
	// of one.
	Text string
	// Name is the name of the unit, if it has one.
	Name string
	// Base is the dimension in SI base units.
	Base string
}

func (r result) String() string {
	if r.Name == "" {
		return r.Text
	}
	return r.Text + " (" + r.Name + ")"
}

// describe prepares q, the result of evaluating src, for display. A src that
// is just one symbol keeps that symbol, so "kJ" displays as kJ rather than J.
// Otherwise the dimension's canonical symbol is used if it has one.
func describe(reg *units.Registry, src string, q units.Quantity) result {
	value := formatValue(q.Value)
	if q.Dim.IsDimensionless() {
		return result{Text: value, Base: "1"}
	}
	compact := units.Fold(strings.Join(strings.Fields(src), ""))
	single := isSymbol(compact)
	derived, ok := reg.Canonical(q.Dim)
	r := result{Base: q.Dim.String()}
	var unit string
	switch {
	case single:
		unit = compact
	case ok:
		unit = derived
	default:
		unit = r.Base
	}
	switch {
	case ok:
		r.Name, _ = reg.Name(derived)
	case single:
		var named bool
		if r.Name, named = reg.Name(compact); !named {
			r.Name, _ = reg.Name(stripPrefix(compact))
		}
	}
	if math.Abs(q.Value-1) < 1e-9 {
		r.Text = unit
	} else {
		r.Text = value + " " + unit
	}
	return r
}

// formatValue formats v with three decimal places, or in scientific notation
// if v is very large or very small.
func formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	a := math.Abs(v)
	if a == 0 || (a >= 1e-3 && a < 1e6) {
		s := strconv.FormatFloat(v, 'f', 3, 64)
		s = strings.TrimRight(s, "0")
		return strings.TrimSuffix(s, ".")
	}
	return strconv.FormatFloat(v, 'e', 3, 64)
}

func isSymbol(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !units.IsSymbolRune(r) {
			return false
		}
	}
	return true
}

// stripPrefix removes a magnitude prefix from a symbol of more than one rune.
func stripPrefix(sym string) string {
	r, n := utf8.DecodeRuneInString(sym)
	if n < len(sym) && strings.ContainsRune(units.Prefixes, r) {
		return sym[n:]
	}
	return sym
}
