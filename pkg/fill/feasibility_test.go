package fill

import (
	"testing"

	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/wordlist"
)

func buildDict(t *testing.T, words ...string) *wordlist.Dictionary {
	t.Helper()
	d, err := wordlist.Build(words, wordlist.BuildOptions{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return d
}

func threeByThreeOpen(t *testing.T) *grid.Grid {
	t.Helper()
	return grid.NewEmptyGrid(grid.GridConfig{Size: 3})
}

func acrossSlot(g *grid.Grid, row int) *grid.Slot {
	for _, s := range g.Slots {
		if s.Direction == grid.Across && s.StartRow == row {
			return s
		}
	}
	return nil
}

func downSlot(g *grid.Grid, col int) *grid.Slot {
	for _, s := range g.Slots {
		if s.Direction == grid.Down && s.StartCol == col {
			return s
		}
	}
	return nil
}

func TestFeasible_AcceptsCompatibleWord(t *testing.T) {
	dict := buildDict(t, "cat", "car", "arc", "tac", "cab", "rat")
	g := threeByThreeOpen(t)
	used := make(map[string]bool)

	row0 := acrossSlot(g, 0)
	if !Feasible(g, row0, "cat", used, dict) {
		t.Error("expected cat to be feasible on an empty grid")
	}
}

func TestFeasible_RejectsUsedWord(t *testing.T) {
	dict := buildDict(t, "cat", "car")
	g := threeByThreeOpen(t)
	used := map[string]bool{"cat": true}

	row0 := acrossSlot(g, 0)
	if Feasible(g, row0, "cat", used, dict) {
		t.Error("expected already-used word to be rejected")
	}
}

func TestFeasible_RejectsDeadCrossing(t *testing.T) {
	// "xyz" has no dictionary completions crossing any column, so
	// placing it in row 0 must strand every down-slot.
	dict := buildDict(t, "xyz", "cat")
	g := threeByThreeOpen(t)
	used := make(map[string]bool)

	row0 := acrossSlot(g, 0)
	if Feasible(g, row0, "xyz", used, dict) {
		t.Error("expected xyz to be infeasible: no column has any completion starting with x, y, or z")
	}
}

// blockedFiveByFive builds a 5x5 grid with blocks at (1,2) and (3,2) —
// a spec-legal, 180-degree-symmetric layout that C3's own generator
// would never produce, since it leaves (0,2), (2,2), and (4,2) each
// belonging to an Across slot with no crossing Down slot at all.
func blockedFiveByFive(t *testing.T) *grid.Grid {
	t.Helper()
	blocks := map[[2]int]bool{{1, 2}: true, {3, 2}: true}
	return grid.NewEmptyGrid(grid.GridConfig{Size: 5, Blocks: blocks})
}

func TestFeasible_NilCrossingDoesNotPanic(t *testing.T) {
	// Every down crossing row0 touches starts with 'a', so "aaaaa"
	// leaves each a live completion; column 2 has no Down slot at all
	// in this layout, exercising the nil-crossing skip directly.
	dict := buildDict(t, "aaaaa")
	g := blockedFiveByFive(t)
	used := make(map[string]bool)

	row0 := acrossSlot(g, 0)
	if row0.Crossings[2].Other != nil {
		t.Fatal("expected column 2 to have no crossing Down slot at row 0 in this layout")
	}

	if !Feasible(g, row0, "aaaaa", used, dict) {
		t.Error("expected aaaaa to be feasible: its only crossing-less cell is column 2")
	}
}

func TestFeasible_RequiresDictionaryWordWhenCrossingFullyFixed(t *testing.T) {
	dict := buildDict(t, "cat", "are", "ten", "art", "tar")
	g := threeByThreeOpen(t)
	used := make(map[string]bool)

	// Fill row 0 and row 1 so that row 2 fully determines column patterns.
	row0 := acrossSlot(g, 0)
	if _, err := g.Place(row0, "cat"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	row1 := acrossSlot(g, 1)
	if _, err := g.Place(row1, "are"); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	// Column 0 is now "ca_", column 1 "ar_", column 2 "te_" pending row 2.
	row2 := acrossSlot(g, 2)
	if !Feasible(g, row2, "ten", used, dict) {
		t.Error("expected ten to complete columns into dictionary words")
	}
	if Feasible(g, row2, "xyz", used, dict) {
		t.Error("expected xyz to be rejected: it does not match the fixed column constraints")
	}
}
