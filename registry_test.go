package units

import (
	"errors"
	"sort"
	"testing"
)

var (
	force      = Dim{1, 1, -2, 0, 0, 0}
	energy     = Dim{2, 1, -2, 0, 0, 0}
	resistance = Dim{2, 1, -3, -2, 0, 0}
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		sym  string
		d    Dim
	}{
		{"base", "kg", Dim{Mass: 1}},
		{"mol", "mol", Dim{Amount: 1}},
		{"derived", "N", force},
		{"greek", "Ω", resistance},
		{"alias", "ohm", resistance},
		{"flux", "Φ", Dim{2, 1, -2, -1, 0, 0}},
		{"kilo", "kΩ", resistance},
		{"milli", "mΩ", resistance},
		{"micro", "μΩ", resistance},
		{"micro-ascii", "uΩ", resistance},
		{"micro-sign", "\u00b5Ω", resistance},
		{"ohm-sign", "\u2126", resistance},
		{"kilo-ohm-sign", "k\u2126", resistance},
		{"nano", "nF", Dim{-2, -1, 4, 2, 0, 0}},
		{"kilo-joule", "kJ", energy},
		{"millisecond", "ms", Dim{Time: 1}},
		{"prefixed-compound", "kgm", Dim{Length: 1, Mass: 1}},
		{"compound", "Nm", Dim{2, 1, -2, 0, 0, 0}},
		{"compound-3", "kgms", Dim{1, 1, 1, 0, 0, 0}},
		{"prefix-over-split", "mm", Dim{Length: 1}},
		{"compound-repeat", "ss", Dim{Time: 2}},
		{"compound-longest", "molm", Dim{Length: 1, Amount: 1}},
		{"compound-alias", "ohmA", Dim{2, 1, -3, -1, 0, 0}},
		{"compound-greek", "ΩA", Dim{2, 1, -3, -1, 0, 0}},
		{"compound-hz", "Hzs", Dim{}},
	}
	reg := NewRegistry()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := reg.Resolve(c.sym)
			if err != nil {
				t.Fatalf("couldn't resolve %q: %v", c.sym, err)
			}
			if d != c.d {
				t.Errorf("%q resolved to %v, want %v", c.sym, d, c.d)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	cases := []struct {
		name string
		sym  string
	}{
		{"empty", ""},
		{"letter", "Q"},
		{"prefix-only", "k"},
		{"prefix-unknown", "kQ"},
		{"partial", "NQ"},
		{"partial-middle", "mQs"},
		{"lowercase", "hz"},
		{"nonletter", "m2"},
	}
	reg := NewRegistry()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := reg.Resolve(c.sym)
			if err == nil {
				t.Fatalf("%q resolved to %v", c.sym, d)
			}
			var u *UnknownSymbolError
			if !errors.As(err, &u) {
				t.Fatalf("wrong error type: want *UnknownSymbolError, got %T", err)
			}
			if u.Symbol != c.sym {
				t.Errorf("error names %q, want %q", u.Symbol, c.sym)
			}
			if u.Pos() != 0 {
				t.Errorf("registry error has position %d", u.Pos())
			}
		})
	}
}

func TestResolveOrder(t *testing.T) {
	reg := NewEmptyRegistry()
	reg.Register("a", Dim{Length: 1})
	reg.Register("b", Dim{Mass: 1})
	reg.Register("ab", Dim{Temperature: 1})
	reg.Register("ba", Dim{Current: 1})
	reg.Register("x", Dim{Amount: 1})
	reg.Register("ka", Dim{Time: 1})

	cases := []struct {
		name string
		sym  string
		d    Dim
	}{
		{"exact", "ab", Dim{Temperature: 1}},
		{"exact-over-prefix", "ka", Dim{Time: 1}},
		{"prefix", "kx", Dim{Amount: 1}},
		{"prefix-over-split", "kab", Dim{Temperature: 1}},
		// Longest match at each position.
		{"greedy", "aba", Dim{Temperature: 1, Length: 1}},
		{"greedy-2", "bab", Dim{Current: 1, Mass: 1}},
		{"greedy-3", "xabx", Dim{Amount: 2, Temperature: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := reg.Resolve(c.sym)
			if err != nil {
				t.Fatalf("couldn't resolve %q: %v", c.sym, err)
			}
			if d != c.d {
				t.Errorf("%q resolved to %v, want %v", c.sym, d, c.d)
			}
		})
	}
}

func TestResolveNoBacktrack(t *testing.T) {
	reg := NewEmptyRegistry()
	reg.Register("ab", Dim{Length: 1})
	reg.Register("a", Dim{Mass: 1})
	reg.Register("bc", Dim{Time: 1})
	// "abc" could be a+bc, but the longest match at 0 is ab, leaving c.
	if d, err := reg.Resolve("abc"); err == nil {
		t.Errorf("abc resolved to %v", d)
	}
}

func TestRegisterCustom(t *testing.T) {
	reg := NewRegistry()
	if reg.Has("Q") {
		t.Fatal("registry already has Q")
	}
	reg.Register("Q", Dim{Length: 3})
	if !reg.Has("Q") {
		t.Error("registry doesn't have Q after registering it")
	}
	if d, err := reg.Resolve("Q"); err != nil || d != (Dim{Length: 3}) {
		t.Errorf("Q resolved to %v, %v", d, err)
	}
	if d, err := reg.Resolve("kQ"); err != nil || d != (Dim{Length: 3}) {
		t.Errorf("kQ resolved to %v, %v", d, err)
	}
	if sym, ok := reg.Canonical(Dim{Length: 3}); ok {
		t.Errorf("custom unit made %q canonical", sym)
	}
	if name, ok := reg.Name("Q"); ok {
		t.Errorf("custom unit has name %q", name)
	}
	reg.Unregister("Q")
	if reg.Has("Q") {
		t.Error("registry has Q after unregistering it")
	}
	if _, err := reg.Resolve("Q"); err == nil {
		t.Error("Q resolves after unregistering it")
	}
}

func TestRegisterOverwrite(t *testing.T) {
	reg := NewRegistry()
	reg.Register("N", Dim{Length: 1})
	if d, _ := reg.Resolve("N"); d != (Dim{Length: 1}) {
		t.Errorf("N resolved to %v after overwrite", d)
	}
	// The canonical map is untouched.
	if sym, ok := reg.Canonical(force); !ok || sym != "N" {
		t.Errorf("canonical force symbol is %q, %t", sym, ok)
	}
}

func TestCanonical(t *testing.T) {
	reg := NewRegistry()
	for _, u := range seedderived {
		sym, ok := reg.Canonical(u.dim)
		if !ok {
			t.Errorf("no canonical symbol for %s", u.sym)
			continue
		}
		// The later of Ω and ohm wins.
		want := u.sym
		if want == "Ω" {
			want = "ohm"
		}
		if sym != want {
			t.Errorf("canonical symbol for %v is %q, want %q", u.dim, sym, want)
		}
	}
	for _, u := range seedbase {
		if sym, ok := reg.Canonical(u.dim); ok {
			t.Errorf("base unit dimension %v has canonical symbol %q", u.dim, sym)
		}
	}
	if sym, ok := reg.Canonical(Dimensionless); ok {
		t.Errorf("dimensionless has canonical symbol %q", sym)
	}
}

func TestCanonicalAliasOverwrite(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterDerived("Nt", force, "")
	if sym, _ := reg.Canonical(force); sym != "Nt" {
		t.Errorf("canonical force symbol is %q after alias", sym)
	}
	if name, ok := reg.Name("Nt"); ok {
		t.Errorf("alias with no name has name %q", name)
	}
}

func TestCanonicalStale(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterDerived("X", Dim{Temperature: 2}, "Custom")
	reg.Unregister("X")
	if reg.Has("X") {
		t.Error("X still registered")
	}
	if _, ok := reg.Name("X"); ok {
		t.Error("X still has a name")
	}
	// Unregistering leaves the canonical symbol behind.
	if sym, ok := reg.Canonical(Dim{Temperature: 2}); !ok || sym != "X" {
		t.Errorf("canonical symbol after unregister is %q, %t", sym, ok)
	}
}

func TestNames(t *testing.T) {
	cases := []struct {
		sym, name string
	}{
		{"kg", "Mass"},
		{"m", "Length"},
		{"s", "Time"},
		{"A", "Current"},
		{"K", "Temperature"},
		{"mol", "Amount of substance"},
		{"N", "Force"},
		{"Ω", "Resistance"},
		{"ohm", "Resistance"},
		{"Φ", "Magnetic flux"},
	}
	reg := NewRegistry()
	for _, c := range cases {
		if name, ok := reg.Name(c.sym); !ok || name != c.name {
			t.Errorf("name of %q is %q, %t; want %q", c.sym, name, ok, c.name)
		}
	}
	if name, ok := reg.Name("kN"); ok {
		t.Errorf("prefixed symbol has name %q", name)
	}
}

func TestHasExact(t *testing.T) {
	reg := NewRegistry()
	for _, sym := range []string{"kN", "kgm", "mΩ"} {
		if reg.Has(sym) {
			t.Errorf("Has(%q) is true", sym)
		}
	}
}

func TestClone(t *testing.T) {
	reg := NewRegistry()
	c := reg.Clone()
	c.Register("Q", Dim{Length: 5})
	c.RegisterDerived("Nt", force, "Newton")
	reg.Unregister("N")
	if reg.Has("Q") {
		t.Error("original has clone's unit")
	}
	if !c.Has("N") {
		t.Error("clone lost unit removed from original")
	}
	if sym, _ := reg.Canonical(force); sym != "N" {
		t.Errorf("original canonical force symbol is %q", sym)
	}
	if len(reg.Symbols()) != len(NewRegistry().Symbols())-1 {
		t.Errorf("wrong number of symbols after unregister: %q", reg.Symbols())
	}
}

func TestSymbols(t *testing.T) {
	reg := NewRegistry()
	syms := reg.Symbols()
	if len(syms) != len(seedbase)+len(seedderived) {
		t.Errorf("wrong number of symbols: %q", syms)
	}
	if !sort.StringsAreSorted(syms) {
		t.Errorf("symbols not sorted: %q", syms)
	}
	if s := NewEmptyRegistry().Symbols(); len(s) != 0 {
		t.Errorf("empty registry has symbols %q", s)
	}
}

func TestFold(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", ""},
		{"kg", "kg"},
		{"\u00b5m", "μm"},
		{"k\u2126", "kΩ"},
		{"μΩΦ", "μΩΦ"},
	}
	for _, c := range cases {
		if s := Fold(c.in); s != c.out {
			t.Errorf("Fold(%q) = %q, want %q", c.in, s, c.out)
		}
	}
}

func TestRegisterFolds(t *testing.T) {
	reg := NewEmptyRegistry()
	reg.Register("\u00b5x", Dim{Length: 1})
	if !reg.Has("\u03bcx") {
		t.Error("micro sign not folded on register")
	}
	if syms := reg.Symbols(); len(syms) != 1 || syms[0] != "\u03bcx" {
		t.Errorf("symbols are %q", syms)
	}
}

func BenchmarkResolve(b *testing.B) {
	cases := []struct {
		name string
		sym  string
	}{
		{"exact", "mol"},
		{"prefix", "kΩ"},
		{"compound", "kgmmolsAK"},
	}
	reg := NewRegistry()
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				reg.Resolve(c.sym)
			}
		})
	}
}
