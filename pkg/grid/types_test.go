package grid

import "testing"

func TestDirection_String(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Across, "across"},
		{Down, "down"},
		{Direction(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestNewEmptyGrid_Shape(t *testing.T) {
	blocks := map[[2]int]bool{{1, 1}: true}
	g := NewEmptyGrid(GridConfig{Size: 3, Blocks: blocks})

	if g.Size != 3 {
		t.Fatalf("expected Size 3, got %d", g.Size)
	}
	if len(g.Cells) != 3 || len(g.Cells[0]) != 3 {
		t.Fatalf("expected a 3x3 Cells matrix, got %dx%d", len(g.Cells), len(g.Cells[0]))
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell := g.Cells[r][c]
			if cell.Row != r || cell.Col != c {
				t.Errorf("cell at [%d][%d] reports coordinates (%d,%d)", r, c, cell.Row, cell.Col)
			}
			wantBlock := r == 1 && c == 1
			if (cell.State == CellBlock) != wantBlock {
				t.Errorf("cell (%d,%d): expected block=%v, got state %v", r, c, wantBlock, cell.State)
			}
		}
	}
}

func TestGrid_Cell_OutOfBounds(t *testing.T) {
	g := NewEmptyGrid(GridConfig{Size: 3})

	if g.Cell(0, 0) == nil {
		t.Error("expected (0,0) to be in bounds")
	}
	for _, coord := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if got := g.Cell(coord[0], coord[1]); got != nil {
			t.Errorf("Cell(%d,%d): expected nil out of bounds, got %+v", coord[0], coord[1], got)
		}
	}
}
