// Package puzzle exposes the engine's single public entry point,
// GenerateFilledGrid, tying together the dictionary index, the block
// layout generator, and the fill search into one generation attempt
// with restarts, and producing the numbered, word-extracted result.
package puzzle

import "github.com/crossplay/backend/pkg/grid"

// Entry is one completed slot: its clue number, length, starting
// coordinate, and the word it spells.
type Entry struct {
	Number int
	Length int
	Start  [2]int
	Word   string
}

// Entries separates a solution's completed slots by direction, each
// sorted ascending by Number.
type Entries struct {
	Across []Entry
	Down   []Entry
}

// FilledPuzzle is the output of a successful generation attempt.
type FilledPuzzle struct {
	Grid      *grid.Grid
	Slots     []*grid.Slot
	Entries   Entries
	Numbering [][]int // per-cell clue number, 0 where none applies
}
