package unitfile

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/zephyrtronium/units"
)

var (
	// ErrEmpty is the error for a custom unit with no symbol.
	ErrEmpty = errors.New("unit symbol is empty")
	// ErrTooLong is wrapped by a *SymbolError for a symbol with too many
	// runes.
	ErrTooLong = errors.New("too long")
	// ErrRunes is wrapped by a *SymbolError for a symbol containing anything
	// other than letters, μ, Ω, and Φ.
	ErrRunes = errors.New("only letters, μ, Ω, and Φ may be used")
	// ErrExists is wrapped by a *SymbolError for a symbol that is already
	// registered.
	ErrExists = errors.New("already exists")
)

// SymbolError is an error describing why a symbol cannot name a custom unit.
type SymbolError struct {
	Symbol string
	// Err is one of ErrTooLong, ErrRunes, or ErrExists.
	Err error
}

func (err *SymbolError) Error() string {
	return "unit symbol " + strconv.Quote(err.Symbol) + ": " + err.Err.Error()
}

func (err *SymbolError) Unwrap() error {
	return err.Err
}

// Check reports whether sym may name a new custom unit in reg. A valid symbol
// is not empty, has at most maxlen runes, contains only symbol runes, and is not
// already registered exactly.
func Check(reg *units.Registry, sym string, maxlen int) error {
	sym = units.Fold(sym)
	switch {
	case sym == "":
		return ErrEmpty
	case utf8.RuneCountInString(sym) > maxlen:
		return &SymbolError{Symbol: sym, Err: ErrTooLong}
	case !symbolRunes(sym):
		return &SymbolError{Symbol: sym, Err: ErrRunes}
	case reg.Has(sym):
		return &SymbolError{Symbol: sym, Err: ErrExists}
	}
	return nil
}

func symbolRunes(sym string) bool {
	if sym == "" {
		return false
	}
	for _, r := range sym {
		if !units.IsSymbolRune(r) {
			return false
		}
	}
	return true
}
