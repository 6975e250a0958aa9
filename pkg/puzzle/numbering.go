package puzzle

import (
	"sort"

	"github.com/crossplay/backend/pkg/grid"
)

// extractEntries reads every slot's placed word off a solved grid and
// groups them by direction, each sorted ascending by clue number.
// Slot numbering itself is computed by grid.NewEmptyGrid at
// construction time and is a pure function of the block layout; this
// only reads the result and pairs it with the final letters.
func extractEntries(g *grid.Grid) Entries {
	var entries Entries
	for _, slot := range g.Slots {
		e := Entry{
			Number: slot.Number,
			Length: slot.Length,
			Start:  [2]int{slot.StartRow, slot.StartCol},
			Word:   wordOf(slot),
		}
		if slot.Direction == grid.Across {
			entries.Across = append(entries.Across, e)
		} else {
			entries.Down = append(entries.Down, e)
		}
	}

	sort.Slice(entries.Across, func(i, j int) bool { return entries.Across[i].Number < entries.Across[j].Number })
	sort.Slice(entries.Down, func(i, j int) bool { return entries.Down[i].Number < entries.Down[j].Number })
	return entries
}

// numberingGrid builds the per-cell clue-number overlay: numberingGrid[r][c]
// holds the clue number if (r,c) begins any slot, 0 otherwise.
func numberingGrid(g *grid.Grid) [][]int {
	grid2D := make([][]int, g.Size)
	for r := range grid2D {
		grid2D[r] = make([]int, g.Size)
	}
	for _, slot := range g.Slots {
		grid2D[slot.StartRow][slot.StartCol] = slot.Number
	}
	return grid2D
}

func wordOf(s *grid.Slot) string {
	b := make([]byte, len(s.Cells))
	for i, cell := range s.Cells {
		b[i] = byte(cell.Letter)
	}
	return string(b)
}
