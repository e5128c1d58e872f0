package wfc

import "fmt"

// Symbol is an opaque discrete value of an input cell. In the source
// material it was a 32-bit packed color; here it is just "a distinct thing",
// compared by bitwise equality.
type Symbol uint32

// SymbolGrid is a row-major rectangular array of symbols. It is immutable
// once constructed.
type SymbolGrid struct {
	Rows, Cols int
	symbols    []Symbol
}

// NewSymbolGrid builds a SymbolGrid from a flat row-major slice of length
// rows*cols. It copies values, so the caller's slice may be reused.
func NewSymbolGrid(rows, cols int, values []Symbol) (*SymbolGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions must be positive, got %dx%d", ErrInvalidInput, rows, cols)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%w: expected %d symbols for a %dx%d grid, got %d", ErrInvalidInput, rows*cols, rows, cols, len(values))
	}

	cells := make([]Symbol, len(values))
	copy(cells, values)

	return &SymbolGrid{Rows: rows, Cols: cols, symbols: cells}, nil
}

// InBounds reports whether (x, y) is a valid coordinate in the grid.
func (g *SymbolGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// At returns the symbol at (x, y). Out-of-bounds access returns
// ErrInvalidInput instead of panicking or aborting the process, unlike the
// source material's cellgrid_get_cell.
func (g *SymbolGrid) At(x, y int) (Symbol, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: grid coordinate (%d,%d) out of bounds for %dx%d grid", ErrInvalidInput, x, y, g.Cols, g.Rows)
	}
	return g.symbols[g.index(x, y)], nil
}

// index maps (x, y) to a row-major offset into symbols.
func (g *SymbolGrid) index(x, y int) int {
	return y*g.Cols + x
}

// Symbols returns a copy of the grid's flat row-major symbol array. How a
// caller renders it — PPM, an SDL texture, ANSI — is outside this package.
func (g *SymbolGrid) Symbols() []Symbol {
	out := make([]Symbol, len(g.symbols))
	copy(out, g.symbols)
	return out
}
