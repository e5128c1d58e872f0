package wfc

import (
	"fmt"
	"math/rand"
	"time"
)

// maxWaveCells guards against a caller-supplied output size so large that
// allocating the wave grid's bitsets would exhaust memory; Go has no
// allocator-failure signal to catch here, so the check happens up front
// instead of letting make panic partway through a solve.
const maxWaveCells = 64 * 1024 * 1024

// Solve learns the adjacency structure of grid under an NxN sliding window
// and synthesizes an output symbol grid of outputWidth x outputHeight that
// is everywhere locally consistent with it.
//
// It returns ErrInvalidInput if grid is smaller than the window or the
// requested output is smaller than the window, and a *ContradictionError
// (wrapping ErrContradiction) if constraint propagation ever empties a wave
// cell's possibility set. A nil Options pointer uses the defaults described
// on Options.
func Solve(grid *SymbolGrid, n, outputWidth, outputHeight int, opts *Options) (*SymbolGrid, error) {
	if outputWidth < n || outputHeight < n {
		return nil, fmt.Errorf("%w: output %dx%d is smaller than window size %d", ErrInvalidInput, outputWidth, outputHeight, n)
	}

	table, err := ExtractPatterns(grid, n)
	if err != nil {
		return nil, err
	}
	rules := BuildRules(table)

	waveWidth := outputWidth - (n - 1)
	waveHeight := outputHeight - (n - 1)
	if waveWidth < 1 || waveHeight < 1 {
		return nil, fmt.Errorf("%w: output %dx%d yields a non-positive wave grid for window size %d", ErrInvalidInput, outputWidth, outputHeight, n)
	}
	if waveWidth*waveHeight > maxWaveCells {
		return nil, fmt.Errorf("%w: %dx%d wave grid exceeds the maximum of %d cells", ErrOutOfMemory, waveWidth, waveHeight, maxWaveCells)
	}

	wg := newWaveGrid(waveWidth, waveHeight, len(table.Patterns))

	rng := newRand(opts)
	if err := runObserver(wg, table, rules, rng, opts.strategy()); err != nil {
		return nil, err
	}

	return reconstruct(wg, table, outputWidth, outputHeight), nil
}

func newRand(opts *Options) *rand.Rand {
	if opts != nil && opts.Seed != nil {
		return rand.New(rand.NewSource(*opts.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
