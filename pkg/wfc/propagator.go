package wfc

// propagate drives the wave to arc-consistency starting from a single
// changed cell, using an explicit FIFO worklist rather than the source
// material's recursive History-stack walk: the iterative form keeps Go's
// call stack independent of W*H, and propagation is confluent (§4.4), so any
// deterministic drain order reaches the same fixed point.
func propagate(wg *WaveGrid, rules *RuleTable, seed int) error {
	queue := []int{seed}
	inQueue := make([]bool, len(wg.cells))
	inQueue[seed] = true

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		inQueue[idx] = false

		c := &wg.cells[idx]
		if !c.dirty {
			continue
		}
		c.dirty = false

		for _, d := range directions {
			nidx, ok := wg.neighbour(idx, d)
			if !ok {
				continue
			}

			allowed := newBitset(wg.numPatterns)
			c.possible.forEach(func(p int) {
				allowed.orInto(rules.Allowed(p, d))
			})

			nc := &wg.cells[nidx]
			var toBan []int
			nc.possible.forEach(func(q int) {
				if !allowed.has(q) {
					toBan = append(toBan, q)
				}
			})

			for _, q := range toBan {
				if err := wg.ban(nidx, q); err != nil {
					return err
				}
			}

			if len(toBan) > 0 && !inQueue[nidx] {
				queue = append(queue, nidx)
				inQueue[nidx] = true
			}
		}
	}

	return nil
}
