package wfc

import (
	"fmt"
	"slices"
)

// Pattern is an NxN tile of symbols, row-major, plus how many times it was
// observed while sliding the window over the example grid.
type Pattern struct {
	Cells []Symbol // len == n*n
	Count int
}

// at returns the symbol at local tile coordinate (x, y).
func (p Pattern) at(n, x, y int) Symbol {
	return p.Cells[y*n+x]
}

// equals reports whether p and other hold the same symbols in the same
// positions.
func (p Pattern) equals(other Pattern) bool {
	return slices.Equal(p.Cells, other.Cells)
}

// rotateClockwise returns the tile rotated 90 degrees clockwise:
// new[x1, x2] = old[x1, y] where x2 = n-1-y.
func rotateClockwise(p Pattern, n int) Pattern {
	out := make([]Symbol, n*n)
	for y := 0; y < n; y++ {
		x2 := n - 1 - y
		for x1 := 0; x1 < n; x1++ {
			out[x1*n+x2] = p.at(n, x1, y)
		}
	}
	return Pattern{Cells: out, Count: 1}
}

// PatternTable is the ordered, immutable sequence of distinct patterns
// extracted from an example grid. Index positions are the canonical pattern
// IDs used by the rule table, wave state, and reconstructor.
type PatternTable struct {
	N        int
	Patterns []Pattern
}

// ExtractPatterns slides an NxN window over every top-left position of grid
// (no wrapping, no reflection across the boundary), deduplicates tiles by
// value equality, tallies occurrences, and enumerates the three nontrivial
// 90-degree rotations of each newly seen tile as first-class patterns.
//
// Rotations never inflate the original tile's occurrence count: that count
// only grows when its own source window is revisited.
func ExtractPatterns(grid *SymbolGrid, n int) (*PatternTable, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: window size must be >= 1, got %d", ErrInvalidInput, n)
	}
	if grid.Rows < n || grid.Cols < n {
		return nil, fmt.Errorf("%w: %dx%d grid is smaller than window size %d", ErrInvalidInput, grid.Cols, grid.Rows, n)
	}

	table := &PatternTable{N: n}

	find := func(cells []Symbol) int {
		for i, p := range table.Patterns {
			if slices.Equal(p.Cells, cells) {
				return i
			}
		}
		return -1
	}

	for i := 0; i <= grid.Rows-n; i++ {
		for j := 0; j <= grid.Cols-n; j++ {
			tile := make([]Symbol, 0, n*n)
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					s, err := grid.At(j+l, i+k)
					if err != nil {
						return nil, err
					}
					tile = append(tile, s)
				}
			}

			if idx := find(tile); idx != -1 {
				table.Patterns[idx].Count++
				continue
			}

			table.Patterns = append(table.Patterns, Pattern{Cells: tile, Count: 1})

			rot := Pattern{Cells: tile, Count: 1}
			for r := 0; r < 3; r++ {
				rot = rotateClockwise(rot, n)
				if find(rot.Cells) == -1 {
					table.Patterns = append(table.Patterns, Pattern{Cells: slices.Clone(rot.Cells), Count: 1})
				}
			}
		}
	}

	return table, nil
}
