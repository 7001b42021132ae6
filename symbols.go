package units

import (
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SymbolRunes contains the non-ASCII runes which may appear in unit symbols,
// in addition to ASCII letters.
const SymbolRunes = "μΩΦ"

// Prefixes contains the runes recognized as magnitude prefixes on unit
// symbols: kilo, milli, micro (twice), and nano. Prefixes select the
// dimension of the symbol they precede but do not scale values.
const Prefixes = "kmμun"

// IsSymbolRune returns whether r may appear in a unit symbol.
func IsSymbolRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		return true
	case r == 'μ', r == 'Ω', r == 'Φ':
		return true
	default:
		return false
	}
}

// foldrune maps compatibility characters that look like symbol runes onto
// them. Only runes whose normal form is a single rune change, so folding
// never changes the length of a string in runes.
func foldrune(r rune) rune {
	if r == 'µ' {
		// MICRO SIGN -> GREEK SMALL LETTER MU
		return 'μ'
	}
	if r < utf8.RuneSelf {
		return r
	}
	// Singleton decompositions, like the ohm and kelvin signs.
	s := norm.NFC.String(string(r))
	if c, n := utf8.DecodeRuneInString(s); n == len(s) {
		return c
	}
	return r
}

// Fold normalizes the spelling of symbols in s so that visually identical
// symbols compare equal: the micro sign becomes μ and the ohm sign becomes Ω.
func Fold(s string) string {
	r, _, err := transform.String(folder(), s)
	if err != nil {
		// Neither transformer fails on any input.
		return s
	}
	return r
}

// folder creates a transformer which applies Fold. Chained transformers keep
// state, so each use needs its own.
func folder() transform.Transformer {
	return transform.Chain(runes.Map(foldrune), norm.NFC)
}
