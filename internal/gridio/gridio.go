// Package gridio loads an example symbol grid from a plain text file,
// standing in for the source material's SDL event loop that let a user
// paint an example grid interactively.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Jprebys/pictoro-go/pkg/wfc"
)

// ParseGrid reads one row per line, symbols separated by whitespace or
// commas, into a wfc.SymbolGrid. Blank lines and lines starting with '#' are
// skipped. All rows must have the same column count.
func ParseGrid(r io.Reader) (*wfc.SymbolGrid, error) {
	scanner := bufio.NewScanner(r)

	var rows [][]wfc.Symbol
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})

		row := make([]wfc.Symbol, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid symbol %q", wfc.ErrInvalidInput, f)
			}
			row = append(row, wfc.Symbol(v))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: grid file has no data rows", wfc.ErrInvalidInput)
	}

	cols := len(rows[0])
	flat := make([]wfc.Symbol, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: ragged grid, row has %d symbols, want %d", wfc.ErrInvalidInput, len(row), cols)
		}
		flat = append(flat, row...)
	}

	return wfc.NewSymbolGrid(len(rows), cols, flat)
}

// LoadGrid opens path and parses its contents with ParseGrid.
func LoadGrid(path string) (*wfc.SymbolGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grid file %s: %w", path, err)
	}
	defer f.Close()
	return ParseGrid(f)
}

// WriteGrid serializes grid back to the same text format ParseGrid accepts,
// one row per line, symbols comma-separated.
func WriteGrid(w io.Writer, grid *wfc.SymbolGrid) error {
	bw := bufio.NewWriter(w)
	symbols := grid.Symbols()
	for y := 0; y < grid.Rows; y++ {
		row := make([]string, grid.Cols)
		for x := 0; x < grid.Cols; x++ {
			row[x] = strconv.FormatUint(uint64(symbols[y*grid.Cols+x]), 10)
		}
		if _, err := bw.WriteString(strings.Join(row, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
