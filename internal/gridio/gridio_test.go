package gridio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Jprebys/pictoro-go/pkg/wfc"
)

func TestParseGrid(t *testing.T) {
	input := `# example grid
1, 0, 1
0, 4, 0

1 0 1
`
	grid, err := ParseGrid(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if grid.Rows != 3 || grid.Cols != 3 {
		t.Fatalf("dims = %dx%d, want 3x3", grid.Cols, grid.Rows)
	}
	s, _ := grid.At(1, 1)
	if s != 4 {
		t.Fatalf("At(1,1) = %d, want 4", s)
	}
}

func TestParseGrid_Ragged(t *testing.T) {
	_, err := ParseGrid(strings.NewReader("1,2,3\n4,5\n"))
	if err == nil {
		t.Fatalf("expected an error for a ragged grid")
	}
}

func TestParseGrid_Empty(t *testing.T) {
	_, err := ParseGrid(strings.NewReader("# only comments\n\n"))
	if err == nil {
		t.Fatalf("expected an error for a grid with no data rows")
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	grid, err := wfc.NewSymbolGrid(2, 3, []wfc.Symbol{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewSymbolGrid: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteGrid(&buf, grid); err != nil {
		t.Fatalf("WriteGrid: %v", err)
	}

	parsed, err := ParseGrid(&buf)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if parsed.Rows != grid.Rows || parsed.Cols != grid.Cols {
		t.Fatalf("dims mismatch: got %dx%d, want %dx%d", parsed.Cols, parsed.Rows, grid.Cols, grid.Rows)
	}
	want, got := grid.Symbols(), parsed.Symbols()
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("symbol %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
