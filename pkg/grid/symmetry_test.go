package grid

import "testing"

func TestMirror180(t *testing.T) {
	tests := []struct {
		size     int
		row, col int
		wantRow  int
		wantCol  int
	}{
		{size: 5, row: 0, col: 0, wantRow: 4, wantCol: 4},
		{size: 5, row: 1, col: 2, wantRow: 3, wantCol: 2},
		{size: 5, row: 2, col: 2, wantRow: 2, wantCol: 2}, // center is self-mirroring
		{size: 4, row: 0, col: 1, wantRow: 3, wantCol: 2},
	}
	for _, tt := range tests {
		gotRow, gotCol := mirror180(tt.size, tt.row, tt.col)
		if gotRow != tt.wantRow || gotCol != tt.wantCol {
			t.Errorf("mirror180(%d, %d, %d) = (%d,%d), want (%d,%d)",
				tt.size, tt.row, tt.col, gotRow, gotCol, tt.wantRow, tt.wantCol)
		}
	}
}

func TestIsSymmetric_EmptyGridIsSymmetric(t *testing.T) {
	g := NewEmptyGrid(GridConfig{Size: 5})
	if !isSymmetric(g) {
		t.Error("expected an all-open grid to be symmetric")
	}
}

func TestIsSymmetric_MirroredPairIsSymmetric(t *testing.T) {
	blocks := map[[2]int]bool{{1, 2}: true, {3, 2}: true}
	g := NewEmptyGrid(GridConfig{Size: 5, Blocks: blocks})
	if !isSymmetric(g) {
		t.Error("expected a 180-degree-mirrored block pair to be symmetric")
	}
}

func TestIsSymmetric_UnmirroredBlockIsAsymmetric(t *testing.T) {
	blocks := map[[2]int]bool{{1, 2}: true}
	g := NewEmptyGrid(GridConfig{Size: 5, Blocks: blocks})
	if isSymmetric(g) {
		t.Error("expected a single unmirrored block to break symmetry")
	}
}

func TestIsSymmetric_CenterCellAloneIsSymmetric(t *testing.T) {
	// The center cell of an odd-sized grid mirrors to itself, so
	// blocking it alone can never break symmetry.
	blocks := map[[2]int]bool{{2, 2}: true}
	g := NewEmptyGrid(GridConfig{Size: 5, Blocks: blocks})
	if !isSymmetric(g) {
		t.Error("expected a blocked center cell alone to be symmetric")
	}
}
