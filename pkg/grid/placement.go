package grid

import "fmt"

// ErrConflict is returned by Place when a cell already holds a letter
// that disagrees with the word being placed — a caller bug, since the
// feasibility checker must never endorse such a candidate.
type ErrConflict struct {
	Row, Col int
	Have     rune
	Want     rune
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("grid: conflict at (%d,%d): have %q, want %q", e.Row, e.Col, e.Have, e.Want)
}

// Place writes word into slot's cells. Every affected cell must be
// either CellEmpty or already CellLetter holding the same letter the
// word places there; any other state is a caller bug reported as
// *ErrConflict. It returns a Snapshot of each cell's prior state so
// the caller can Unplace exactly, even though Place itself never
// rewinds a partial write on error.
func (g *Grid) Place(s *Slot, word string) ([]Snapshot, error) {
	if len(word) != s.Length {
		return nil, fmt.Errorf("grid: word length %d does not match slot length %d", len(word), s.Length)
	}

	before := make([]Snapshot, s.Length)
	for i, cell := range s.Cells {
		before[i] = cell.snapshot()
		letter := rune(word[i])
		if cell.State == CellLetter && cell.Letter != letter {
			return nil, &ErrConflict{Row: cell.Row, Col: cell.Col, Have: cell.Letter, Want: letter}
		}
	}

	for i, cell := range s.Cells {
		cell.State = CellLetter
		cell.Letter = rune(word[i])
	}
	return before, nil
}

// Unplace restores slot's cells to the Snapshot captured by the
// matching Place call, undoing it exactly.
func (g *Grid) Unplace(s *Slot, before []Snapshot) {
	for i, cell := range s.Cells {
		cell.restore(before[i])
	}
}
