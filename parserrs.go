package units

import "strconv"

// UnknownSymbolError is an error indicating a unit symbol that the registry
// cannot resolve. It implements InputError.
type UnknownSymbolError struct {
	// Col is the position of the symbol, or 0 if the error came from
	// Registry.Resolve rather than from parsing.
	Col int
	// Symbol is the symbol that could not be resolved.
	Symbol string
}

func (err *UnknownSymbolError) Error() string {
	return errpos(err.Col, "unknown unit symbol "+strconv.Quote(err.Symbol))
}

func (err *UnknownSymbolError) Pos() int {
	return err.Col
}

// DimensionError is an error indicating an addition or subtraction of
// quantities with different dimensions. It implements InputError.
type DimensionError struct {
	// Col is the position of the operator, or 0 if the error came from
	// Quantity.Add or Quantity.Sub rather than from parsing.
	Col int
	// Op is the operator, either "+" or "-".
	Op string
	// Left and Right are the dimensions of the operands.
	Left, Right Dim
}

func (err *DimensionError) Error() string {
	verb := "add"
	if err.Op == "-" {
		verb = "subtract"
	}
	return errpos(err.Col, "cannot "+verb+" quantities with different dimensions: "+err.Left.String()+" "+err.Op+" "+err.Right.String())
}

func (err *DimensionError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a malformed numeric literal. It
// implements InputError.
type NumberError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the literal as scanned.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// ExponentError is an error indicating that ^ is not followed by an integer.
// It implements InputError.
type ExponentError struct {
	// Col is the position where the exponent should begin.
	Col int
	// Text is what was scanned in place of the exponent.
	Text string
}

func (err *ExponentError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "missing integer exponent")
	}
	return errpos(err.Col, "invalid exponent "+strconv.Quote(err.Text)+", need an integer")
}

func (err *ExponentError) Pos() int {
	return err.Col
}

// CharError is an error indicating a character that cannot begin a term. It
// implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the unexpected character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// EndError is an error indicating that the input ended where a term was
// expected. It implements InputError.
type EndError struct {
	// Col is the position just past the end of the input.
	Col int
}

func (err *EndError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "unexpected end of expression")
}

func (err *EndError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open parenthesis with no matching
// close parenthesis. It implements InputError.
type BracketError struct {
	// Col is the position of the open parenthesis.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "open bracket ( with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input left over after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed character.
	Col int
	// Text is the remaining input.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error, or 0 if the
	// error did not arise while parsing.
	Pos() int
}

var (
	_ InputError = (*UnknownSymbolError)(nil)
	_ InputError = (*DimensionError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*ExponentError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*EndError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingError)(nil)
)
