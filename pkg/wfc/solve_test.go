package wfc

import (
	"errors"
	"testing"
)

func seedOpts(seed int64) *Options {
	s := seed
	return &Options{Seed: &s}
}

func TestSolve_S1_UniformGridStaysUniform(t *testing.T) {
	g := mustGrid(t, 3, 3, []Symbol{0, 0, 0, 0, 0, 0, 0, 0, 0})

	out, err := Solve(g, 2, 4, 4, seedOpts(1))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for _, s := range out.Symbols() {
		if s != 0 {
			t.Fatalf("expected an all-zero output, found symbol %d", s)
		}
	}
}

func TestSolve_S2_CheckerboardStaysValid(t *testing.T) {
	g := mustGrid(t, 3, 3, []Symbol{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	})

	out, err := Solve(g, 2, 6, 6, seedOpts(2))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	for y := 0; y < out.Rows; y++ {
		for x := 0; x < out.Cols; x++ {
			s, _ := out.At(x, y)
			// every orthogonal neighbour must differ, i.e. it's a valid
			// checkerboard of either phase.
			if x+1 < out.Cols {
				r, _ := out.At(x+1, y)
				if r == s {
					t.Fatalf("checkerboard violated horizontally at (%d,%d)", x, y)
				}
			}
			if y+1 < out.Rows {
				d, _ := out.At(x, y+1)
				if d == s {
					t.Fatalf("checkerboard violated vertically at (%d,%d)", x, y)
				}
			}
		}
	}
}

func TestSolve_S3_HorizontalStripesAlternateVertically(t *testing.T) {
	g := mustGrid(t, 3, 3, []Symbol{
		0, 0, 0,
		1, 1, 1,
		0, 0, 0,
	})

	// Rotations of the stripe tiles are patterns too, so vertical stripes are
	// also a valid output; seed 4 forces a horizontal-stripe tile first.
	out, err := Solve(g, 2, 5, 8, seedOpts(4))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	for y := 0; y < out.Rows; y++ {
		first, _ := out.At(0, y)
		for x := 1; x < out.Cols; x++ {
			s, _ := out.At(x, y)
			if s != first {
				t.Fatalf("row %d is not uniform: col 0 = %d, col %d = %d", y, first, x, s)
			}
		}
	}
	for y := 0; y+1 < out.Rows; y++ {
		a, _ := out.At(0, y)
		b, _ := out.At(0, y+1)
		if a == b {
			t.Fatalf("rows %d and %d should alternate symbol, both are %d", y, y+1, a)
		}
	}
}

func TestSolve_S6_WindowLargerThanGrid(t *testing.T) {
	g := mustGrid(t, 2, 2, []Symbol{0, 1, 1, 0})

	_, err := Solve(g, 3, 10, 10, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSolve_DeterministicWithFixedSeed(t *testing.T) {
	// Invariant 6: two solves with identical inputs and seeds are
	// byte-identical.
	g := mustGrid(t, 3, 5, []Symbol{
		1, 0, 1, 0, 1,
		0, 4, 0, 4, 3,
		1, 0, 1, 2, 1,
	})

	a, err := Solve(g, 2, 9, 7, seedOpts(42))
	if err != nil {
		t.Fatalf("Solve a: %v", err)
	}
	b, err := Solve(g, 2, 9, 7, seedOpts(42))
	if err != nil {
		t.Fatalf("Solve b: %v", err)
	}

	sa, sb := a.Symbols(), b.Symbols()
	if len(sa) != len(sb) {
		t.Fatalf("length mismatch: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("output diverged at index %d: %d vs %d", i, sa[i], sb[i])
		}
	}
}

func TestSolve_CollapseConsistencyAndOverlapAgreement(t *testing.T) {
	// Invariants 4 and 5, checked directly against the reconstructed output
	// rather than internal wave state, since that is what callers observe.
	g := mustGrid(t, 3, 5, []Symbol{
		1, 0, 1, 0, 1,
		0, 4, 0, 4, 3,
		1, 0, 1, 2, 1,
	})
	n := 2

	out, err := Solve(g, n, 9, 7, seedOpts(7))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	table, err := ExtractPatterns(g, n)
	if err != nil {
		t.Fatalf("ExtractPatterns: %v", err)
	}
	rules := BuildRules(table)

	// Rebuild the wave-cell-to-pattern mapping implied by the output by
	// reading each n x n window directly from the output grid, then confirm
	// every horizontal/vertical neighbour pair is rule-allowed.
	waveW := out.Cols - (n - 1)
	waveH := out.Rows - (n - 1)

	patternAt := func(i, j int) []Symbol {
		cells := make([]Symbol, 0, n*n)
		for k := 0; k < n; k++ {
			for l := 0; l < n; l++ {
				s, err := out.At(j+l, i+k)
				if err != nil {
					t.Fatalf("At: %v", err)
				}
				cells = append(cells, s)
			}
		}
		return cells
	}
	idOf := func(cells []Symbol) int {
		for idx, p := range table.Patterns {
			if p.equals(Pattern{Cells: cells}) {
				return idx
			}
		}
		t.Fatalf("reconstructed tile %v has no matching pattern in the table", cells)
		return -1
	}

	for i := 0; i < waveH; i++ {
		for j := 0; j < waveW; j++ {
			a := idOf(patternAt(i, j))
			if j+1 < waveW {
				b := idOf(patternAt(i, j+1))
				if !rules.IsAllowed(a, Right, b) {
					t.Fatalf("horizontal adjacency at wave (%d,%d)->(%d,%d) not allowed by rules", i, j, i, j+1)
				}
			}
			if i+1 < waveH {
				b := idOf(patternAt(i+1, j))
				if !rules.IsAllowed(a, Down, b) {
					t.Fatalf("vertical adjacency at wave (%d,%d)->(%d,%d) not allowed by rules", i, j, i+1, j)
				}
			}
		}
	}
}

func TestSolve_S5_ContradictionDoesNotLoop(t *testing.T) {
	// An example with very few distinct tiles stresses both possible
	// terminal outcomes (success or ErrContradiction); either is acceptable,
	// the only requirement is that the solver terminates.
	g := mustGrid(t, 2, 2, []Symbol{0, 1, 2, 3})

	_, err := Solve(g, 2, 4, 4, seedOpts(99))
	if err != nil && !errors.Is(err, ErrContradiction) {
		t.Fatalf("unexpected error: %v", err)
	}
}
