package grid

// computeSlots derives the deterministic slot list and per-cell/per-slot
// clue numbers from the block layout alone. It is independent of any
// letters currently placed in the grid.
//
// Ordering: across slots are enumerated in row-major (start_row,
// start_col) order, then down slots in column-major (start_col,
// start_row) order, matching the numbering pass below. Numbering itself
// follows spec.md's rule: a cell receives the next sequential number
// (starting at 1) iff it begins at least one slot of length >= 3,
// scanned in row-major order over the whole grid.
func computeSlots(g *Grid) []*Slot {
	across := scanDirection(g, Across)
	down := scanDirection(g, Down)

	starts := make(map[[2]int]bool, len(across)+len(down))
	for _, s := range across {
		starts[[2]int{s.StartRow, s.StartCol}] = true
	}
	for _, s := range down {
		starts[[2]int{s.StartRow, s.StartCol}] = true
	}

	clueNumber := 1
	numberOf := make(map[[2]int]int, len(starts))
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if starts[[2]int{r, c}] {
				numberOf[[2]int{r, c}] = clueNumber
				clueNumber++
			}
		}
	}

	id := 0
	for _, s := range across {
		s.ID = id
		s.Number = numberOf[[2]int{s.StartRow, s.StartCol}]
		id++
	}
	for _, s := range down {
		s.ID = id
		s.Number = numberOf[[2]int{s.StartRow, s.StartCol}]
		id++
	}

	slots := make([]*Slot, 0, len(across)+len(down))
	slots = append(slots, across...)
	slots = append(slots, down...)

	linkCrossings(slots)
	return slots
}

// scanDirection finds every maximal run of non-block cells of length
// >= MinSlotLength in the given direction, in the canonical order for
// that direction (row-major for Across, column-major for Down).
func scanDirection(g *Grid, dir Direction) []*Slot {
	var slots []*Slot

	primaryLen, secondaryLen := g.Size, g.Size
	for p := 0; p < primaryLen; p++ {
		s := 0
		for s < secondaryLen {
			if cellAt(g, dir, p, s).State == CellBlock {
				s++
				continue
			}
			start := s
			var cells []*Cell
			for s < secondaryLen && cellAt(g, dir, p, s).State != CellBlock {
				cells = append(cells, cellAt(g, dir, p, s))
				s++
			}
			if len(cells) >= MinSlotLength {
				slot := &Slot{Direction: dir, Length: len(cells), Cells: cells}
				if dir == Across {
					slot.StartRow, slot.StartCol = p, start
				} else {
					slot.StartRow, slot.StartCol = start, p
				}
				slots = append(slots, slot)
			}
		}
	}
	return slots
}

// cellAt maps (primary, secondary) coordinates to a grid cell for the
// given direction: for Across, primary is the row and secondary the
// column; for Down it is transposed.
func cellAt(g *Grid, dir Direction, primary, secondary int) *Cell {
	if dir == Across {
		return g.Cells[primary][secondary]
	}
	return g.Cells[secondary][primary]
}

// linkCrossings precomputes, for every slot cell, the perpendicular
// slot sharing that cell (if any) and each side's index into its own
// Cells slice.
func linkCrossings(slots []*Slot) {
	type owner struct {
		slot *Slot
		idx  int
	}
	byCell := make(map[*Cell]map[Direction]owner, len(slots)*4)
	for _, s := range slots {
		for i, cell := range s.Cells {
			if byCell[cell] == nil {
				byCell[cell] = make(map[Direction]owner, 2)
			}
			byCell[cell][s.Direction] = owner{slot: s, idx: i}
		}
	}

	perp := map[Direction]Direction{Across: Down, Down: Across}
	for _, s := range slots {
		s.Crossings = make([]Crossing, len(s.Cells))
		for i, cell := range s.Cells {
			if o, ok := byCell[cell][perp[s.Direction]]; ok {
				s.Crossings[i] = Crossing{Other: o.slot, MyIndex: i, OtherIndex: o.idx}
			} else {
				s.Crossings[i] = Crossing{} // Other == nil: no perpendicular slot at this cell
			}
		}
	}
}
