// Package unitfile stores custom unit definitions in a flat text file.
//
// Each line of a unit file holds one definition in the form
// "symbol|expression", where the expression is a unit expression like
// "kg*m^2". Blank lines and lines starting with # are ignored, as are lines
// missing either side of the bar.
package unitfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/zephyrtronium/units"
)

// Entry is one custom unit definition.
type Entry struct {
	Symbol string
	Expr   string
}

// String formats e as a line of a unit file, without the newline.
func (e Entry) String() string {
	return e.Symbol + "|" + e.Expr
}

// Read reads entries from a unit file. Malformed lines are skipped; the only
// errors are those from reading r.
func Read(r io.Reader) ([]Entry, error) {
	var v []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sym, expr, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		sym = strings.TrimSpace(sym)
		expr = strings.TrimSpace(expr)
		if sym == "" || expr == "" {
			continue
		}
		v = append(v, Entry{Symbol: sym, Expr: expr})
	}
	return v, sc.Err()
}

// Write writes entries in the format Read reads.
func Write(w io.Writer, entries []Entry) error {
	b := bufio.NewWriter(w)
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.Flush()
}

// DefaultPath is the location of the unit file in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".physics-unit-calculator", "custom-units.txt"), nil
}

// File is a unit file on disk.
type File struct {
	Path string
}

// Load reads all entries in the file. A missing file has no entries.
func (f File) Load() ([]Entry, error) {
	r, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer r.Close()
	v, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Path, err)
	}
	return v, nil
}

// Append adds one entry to the end of the file, creating the file and its
// directory if needed.
func (f File) Append(e Entry) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	w, err := os.OpenFile(f.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if err := Write(w, []Entry{e}); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return w.Close()
}

// Save replaces the contents of the file with entries. Saving no entries
// removes the file.
func (f File) Save(entries []Entry) error {
	if len(entries) == 0 {
		err := os.Remove(f.Path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	w, err := os.Create(f.Path)
	if err != nil {
		return err
	}
	if err := Write(w, entries); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return w.Close()
}

// Apply registers each entry in reg, in order. Entries whose symbols cannot
// appear in expressions or whose expressions do not evaluate are logged and
// skipped. The returned slice holds the entries that were registered.
//
// A later entry replaces an earlier one with the same symbol, as do entries
// naming built-in units.
func Apply(reg *units.Registry, entries []Entry, log *zap.Logger) []Entry {
	if log == nil {
		log = zap.NewNop()
	}
	v := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !symbolRunes(units.Fold(e.Symbol)) {
			log.Warn("skipping custom unit",
				zap.String("symbol", e.Symbol),
				zap.String("expr", e.Expr),
				zap.Error(ErrRunes),
			)
			continue
		}
		d, err := units.ParseDim(reg, e.Expr)
		if err != nil {
			log.Warn("skipping custom unit",
				zap.String("symbol", e.Symbol),
				zap.String("expr", e.Expr),
				zap.Error(err),
			)
			continue
		}
		reg.Register(e.Symbol, d)
		log.Debug("registered custom unit", zap.String("symbol", e.Symbol), zap.Stringer("dim", d))
		v = append(v, e)
	}
	return v
}

// Remove returns entries without those for sym, and whether there were any.
// The argument is not modified.
func Remove(entries []Entry, sym string) ([]Entry, bool) {
	sym = units.Fold(sym)
	v := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if units.Fold(e.Symbol) == sym {
			continue
		}
		v = append(v, e)
	}
	return v, len(v) != len(entries)
}
