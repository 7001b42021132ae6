package units

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Registry maps unit symbols to dimensions. It also records at most one
// canonical symbol for each dimension, used to display results, and
// optionally a name for each symbol.
//
// A Registry is not safe for concurrent use. Resolving symbols and parsing
// expressions only read it, but registering or unregistering units must not
// happen concurrently with anything else.
type Registry struct {
	dims  map[string]Dim
	canon map[Dim]string
	names map[string]string
	// maxlen is at least the byte length of the longest symbol in dims.
	maxlen int
}

// NewEmptyRegistry creates a registry with no units.
func NewEmptyRegistry() *Registry {
	return &Registry{
		dims:  make(map[string]Dim),
		canon: make(map[Dim]string),
		names: make(map[string]string),
	}
}

// NewRegistry creates a registry containing the SI base units kg, m, s, A, K,
// and mol, along with the common derived units N, J, W, Pa, Hz, C, V, E (for
// electric field strength), Ω and its alias ohm, F, T, H, and Φ (webers).
// Each derived unit is the canonical symbol for its dimension.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, u := range seedbase {
		r.Register(u.sym, u.dim)
		r.names[u.sym] = u.name
	}
	for _, u := range seedderived {
		r.RegisterDerived(u.sym, u.dim, u.name)
	}
	return r
}

type seedunit struct {
	sym  string
	dim  Dim
	name string
}

// Dim literals are in the order length, mass, time, current, temperature,
// amount.
var (
	seedbase = []seedunit{
		{"kg", Dim{0, 1, 0, 0, 0, 0}, "Mass"},
		{"m", Dim{1, 0, 0, 0, 0, 0}, "Length"},
		{"s", Dim{0, 0, 1, 0, 0, 0}, "Time"},
		{"A", Dim{0, 0, 0, 1, 0, 0}, "Current"},
		{"K", Dim{0, 0, 0, 0, 1, 0}, "Temperature"},
		{"mol", Dim{0, 0, 0, 0, 0, 1}, "Amount of substance"},
	}
	// Order matters: when two symbols share a dimension, the later one is
	// canonical.
	seedderived = []seedunit{
		{"N", Dim{1, 1, -2, 0, 0, 0}, "Force"},
		{"J", Dim{2, 1, -2, 0, 0, 0}, "Energy"},
		{"W", Dim{2, 1, -3, 0, 0, 0}, "Power"},
		{"Pa", Dim{-1, 1, -2, 0, 0, 0}, "Pressure"},
		{"Hz", Dim{0, 0, -1, 0, 0, 0}, "Frequency"},
		{"C", Dim{0, 0, 1, 1, 0, 0}, "Charge"},
		{"V", Dim{2, 1, -3, -1, 0, 0}, "Voltage"},
		{"E", Dim{1, 1, -3, -1, 0, 0}, "Electric field"},
		{"Ω", Dim{2, 1, -3, -2, 0, 0}, "Resistance"},
		{"ohm", Dim{2, 1, -3, -2, 0, 0}, "Resistance"},
		{"F", Dim{-2, -1, 4, 2, 0, 0}, "Capacitance"},
		{"T", Dim{0, 1, -2, -1, 0, 0}, "Magnetic field"},
		{"H", Dim{2, 1, -2, -2, 0, 0}, "Inductance"},
		{"Φ", Dim{2, 1, -2, -1, 0, 0}, "Magnetic flux"},
	}
)

// Clone creates a copy of the registry. Changes to either registry do not
// affect the other.
func (r *Registry) Clone() *Registry {
	n := Registry{
		dims:   make(map[string]Dim, len(r.dims)),
		canon:  make(map[Dim]string, len(r.canon)),
		names:  make(map[string]string, len(r.names)),
		maxlen: r.maxlen,
	}
	for k, v := range r.dims {
		n.dims[k] = v
	}
	for k, v := range r.canon {
		n.canon[k] = v
	}
	for k, v := range r.names {
		n.names[k] = v
	}
	return &n
}

// Register adds a unit symbol, replacing any existing unit with the same
// symbol. It does not change the canonical symbol of any dimension.
func (r *Registry) Register(sym string, dim Dim) {
	sym = Fold(sym)
	r.dims[sym] = dim
	if len(sym) > r.maxlen {
		r.maxlen = len(sym)
	}
}

// RegisterDerived adds a unit symbol and makes it the canonical symbol for
// its dimension. If name is not empty, it becomes the unit's name.
//
// If another symbol was canonical for dim, it is silently replaced.
func (r *Registry) RegisterDerived(sym string, dim Dim, name string) {
	sym = Fold(sym)
	r.Register(sym, dim)
	r.canon[dim] = sym
	if name != "" {
		r.names[sym] = name
	}
}

// Unregister removes a unit symbol and its name. If the symbol was canonical
// for its dimension, it remains so; Canonical can therefore return a symbol
// for which Has is false.
func (r *Registry) Unregister(sym string) {
	sym = Fold(sym)
	delete(r.dims, sym)
	delete(r.names, sym)
}

// Has returns whether sym is exactly a registered symbol. It does not try
// prefixes or compound symbols.
func (r *Registry) Has(sym string) bool {
	_, ok := r.dims[Fold(sym)]
	return ok
}

// Canonical returns the symbol preferred for displaying quantities of the
// given dimension.
func (r *Registry) Canonical(dim Dim) (string, bool) {
	sym, ok := r.canon[dim]
	return sym, ok
}

// Name returns the name of a unit, e.g. "Force" for N.
func (r *Registry) Name(sym string) (string, bool) {
	name, ok := r.names[Fold(sym)]
	return name, ok
}

// Symbols returns all registered symbols in sorted order.
func (r *Registry) Symbols() []string {
	v := make([]string, 0, len(r.dims))
	for k := range r.dims {
		v = append(v, k)
	}
	sort.Strings(v)
	return v
}

// Resolve finds the dimension of a unit symbol. In order, it tries:
//
//  1. The symbol exactly as registered.
//  2. If the first rune of the symbol is one of Prefixes and more follows,
//     the remainder exactly as registered. The prefix does not scale.
//  3. The symbol as a concatenation of registered symbols, taking the
//     longest symbol that matches at each position, e.g. "kgm" is kg*m.
//     There is no backtracking: if the longest match at some position
//     leaves a remainder that cannot be split, the symbol is unknown.
//
// If none of these succeed, the error is an *UnknownSymbolError.
func (r *Registry) Resolve(sym string) (Dim, error) {
	sym = Fold(sym)
	if d, ok := r.dims[sym]; ok {
		return d, nil
	}
	if p, sz := utf8.DecodeRuneInString(sym); sz < len(sym) && strings.ContainsRune(Prefixes, p) {
		if d, ok := r.dims[sym[sz:]]; ok {
			return d, nil
		}
	}
	if d, ok := r.split(sym); ok {
		return d, nil
	}
	return Dim{}, &UnknownSymbolError{Symbol: sym}
}

// split resolves sym as a concatenation of registered symbols.
func (r *Registry) split(sym string) (Dim, bool) {
	if sym == "" {
		return Dim{}, false
	}
	var d Dim
	for pos := 0; pos < len(sym); {
		n := r.maxlen
		if rest := len(sym) - pos; n > rest {
			n = rest
		}
		// Probe from the longest possible symbol downward. Two different
		// symbols cannot match the same span, so the first hit is the only
		// longest match.
		for ; n > 0; n-- {
			if u, ok := r.dims[sym[pos:pos+n]]; ok {
				d = d.Mul(u)
				break
			}
		}
		if n == 0 {
			return Dim{}, false
		}
		pos += n
	}
	return d, true
}
