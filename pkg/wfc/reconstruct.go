package wfc

// reconstruct maps a fully collapsed wave grid back to an output symbol
// grid of outputWidth x outputHeight. Because adjacent wave cells' patterns
// agree on their overlap by construction (the rule invariant), only the
// interior top-left symbol of each wave cell needs to be written in the
// common case; the last row/column/corner emit their full overlap so every
// output cell is covered exactly once (§4.6).
func reconstruct(wg *WaveGrid, table *PatternTable, outputWidth, outputHeight int) *SymbolGrid {
	n := table.N
	out := make([]Symbol, outputWidth*outputHeight)
	put := func(x, y int, s Symbol) {
		out[y*outputWidth+x] = s
	}

	for j := 0; j < wg.Height; j++ {
		for i := 0; i < wg.Width; i++ {
			p := table.Patterns[wg.Collapsed(i, j)]

			lastCol := i == wg.Width-1
			lastRow := j == wg.Height-1

			switch {
			case lastCol && lastRow:
				// bottom-right corner: emit the whole n x n tile.
				for y := 0; y < n; y++ {
					for x := 0; x < n; x++ {
						put(i+x, j+y, p.at(n, x, y))
					}
				}
			case lastCol:
				// rightmost column: emit the top row, spanning n output columns.
				for x := 0; x < n; x++ {
					put(i+x, j, p.at(n, x, 0))
				}
			case lastRow:
				// bottom row: emit the left column, spanning n output rows.
				for y := 0; y < n; y++ {
					put(i, j+y, p.at(n, 0, y))
				}
			default:
				put(i, j, p.at(n, 0, 0))
			}
		}
	}

	return &SymbolGrid{Rows: outputHeight, Cols: outputWidth, symbols: out}
}
