package wfc

import (
	"container/heap"
	"math/rand"
)

// ObserverStrategy decides which wave cell to collapse next and which
// still-possible pattern to collapse it to. The default FirstUncollapsed
// matches the source material's linear scan; LowestEntropy is an optional
// enrichment (§4.5.1, §9) that is never required for a successful solve.
type ObserverStrategy interface {
	// next returns the index of the next cell to collapse, or -1 if every
	// cell already has exactly one remaining possibility.
	next(wg *WaveGrid) int
	// choose picks a pattern ID, from idx's current possibility set, to
	// collapse it to.
	choose(wg *WaveGrid, table *PatternTable, idx int, rng *rand.Rand) int
}

// FirstUncollapsed scans cells in index order for the first one with more
// than one remaining possibility, and collapses it to its first still
// possible pattern. This is the default, spec-exact strategy: deterministic
// given a fixed seed, with no occurrence-count weighting.
type FirstUncollapsed struct{}

func (FirstUncollapsed) next(wg *WaveGrid) int {
	return wg.firstUncollapsed()
}

func (FirstUncollapsed) choose(wg *WaveGrid, table *PatternTable, idx int, rng *rand.Rand) int {
	return wg.cells[idx].possible.first()
}

// entropyItem is one uncollapsed cell as seen by the LowestEntropy heap.
type entropyItem struct {
	idx       int
	remaining int
}

// entropyPQ is a container/heap.Interface min-heap ordered by remaining
// possibility count, ties broken by cell index for determinism — the same
// shape as a Dijkstra priority queue keyed by distance instead of entropy.
type entropyPQ []entropyItem

func (pq entropyPQ) Len() int { return len(pq) }
func (pq entropyPQ) Less(i, j int) bool {
	if pq[i].remaining != pq[j].remaining {
		return pq[i].remaining < pq[j].remaining
	}
	return pq[i].idx < pq[j].idx
}
func (pq entropyPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entropyPQ) Push(x any)   { *pq = append(*pq, x.(entropyItem)) }
func (pq *entropyPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// LowestEntropy collapses the cell with the fewest remaining possibilities
// (rebuilding its view of the wave each call, since the wave mutates between
// collapses), and chooses among still-possible patterns with probability
// proportional to their example-grid occurrence count.
type LowestEntropy struct{}

func (LowestEntropy) next(wg *WaveGrid) int {
	pq := make(entropyPQ, 0, len(wg.cells))
	for i := range wg.cells {
		if wg.cells[i].remaining > 1 {
			pq = append(pq, entropyItem{idx: i, remaining: wg.cells[i].remaining})
		}
	}
	if len(pq) == 0 {
		return -1
	}
	heap.Init(&pq)
	return heap.Pop(&pq).(entropyItem).idx
}

func (LowestEntropy) choose(wg *WaveGrid, table *PatternTable, idx int, rng *rand.Rand) int {
	var candidates []int
	total := 0
	wg.cells[idx].possible.forEach(func(p int) {
		candidates = append(candidates, p)
		total += table.Patterns[p].Count
	})
	if total <= 0 {
		return candidates[0]
	}

	r := rng.Intn(total)
	for _, p := range candidates {
		r -= table.Patterns[p].Count
		if r < 0 {
			return p
		}
	}
	return candidates[len(candidates)-1]
}

// runObserver drives the collapse/propagate loop (§4.5) to completion: an
// initial random cell and pattern are forced and propagated, then strategy
// repeatedly picks the next cell and pattern until none remain or a
// contradiction surfaces.
func runObserver(wg *WaveGrid, table *PatternTable, rules *RuleTable, rng *rand.Rand, strategy ObserverStrategy) error {
	start := rng.Intn(len(wg.cells))
	firstPattern := rng.Intn(len(table.Patterns))

	wg.force(start, firstPattern)
	if err := propagate(wg, rules, start); err != nil {
		return err
	}

	for {
		idx := strategy.next(wg)
		if idx == -1 {
			return nil
		}

		chosen := strategy.choose(wg, table, idx, rng)
		wg.force(idx, chosen)
		if err := propagate(wg, rules, idx); err != nil {
			return err
		}
	}
}
