package output

import (
	"testing"

	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/puzzle"
)

func threeByThreeFilled(t *testing.T) *puzzle.FilledPuzzle {
	t.Helper()
	g := grid.NewEmptyGrid(grid.GridConfig{Size: 3})
	rows := []string{"abc", "def", "ghi"}
	for r, word := range rows {
		for c, ch := range word {
			g.Cells[r][c].State = grid.CellLetter
			g.Cells[r][c].Letter = ch
		}
	}

	return &puzzle.FilledPuzzle{
		Grid:  g,
		Slots: g.Slots,
		Entries: puzzle.Entries{
			Across: []puzzle.Entry{
				{Number: 1, Length: 3, Start: [2]int{0, 0}, Word: "abc"},
				{Number: 4, Length: 3, Start: [2]int{1, 0}, Word: "def"},
				{Number: 5, Length: 3, Start: [2]int{2, 0}, Word: "ghi"},
			},
			Down: []puzzle.Entry{
				{Number: 1, Length: 3, Start: [2]int{0, 0}, Word: "adg"},
				{Number: 2, Length: 3, Start: [2]int{0, 1}, Word: "beh"},
				{Number: 3, Length: 3, Start: [2]int{0, 2}, Word: "cfi"},
			},
		},
		Numbering: [][]int{
			{1, 2, 3},
			{4, 0, 0},
			{5, 0, 0},
		},
	}
}

func TestNewDocument_CopiesGridAndEntries(t *testing.T) {
	fp := threeByThreeFilled(t)
	clueText := map[string]string{
		"1-across": "First row",
		"1-down":   "First column",
	}

	doc := NewDocument(fp, clueText, Metadata{Title: "Sample", Author: "Tester"})

	if doc.Width != 3 || doc.Height != 3 {
		t.Fatalf("expected 3x3 document, got %dx%d", doc.Width, doc.Height)
	}
	if doc.Grid[0][0] != "a" {
		t.Errorf("expected grid[0][0] to echo the placed letter, got %q", doc.Grid[0][0])
	}

	if len(doc.Across) != 3 || len(doc.Down) != 3 {
		t.Fatalf("expected 3 across and 3 down clues, got %d/%d", len(doc.Across), len(doc.Down))
	}
	if doc.Across[0].Text != "First row" {
		t.Errorf("expected across[0].Text to be 'First row', got %q", doc.Across[0].Text)
	}
	if doc.Across[0].Answer != "abc" {
		t.Errorf("expected across[0].Answer to be 'abc', got %q", doc.Across[0].Answer)
	}
	if doc.Down[0].Text != "First column" {
		t.Errorf("expected down[0].Text to be 'First column', got %q", doc.Down[0].Text)
	}
	if doc.Across[1].Text != "" {
		t.Errorf("expected across[1].Text to default to empty when no clue supplied, got %q", doc.Across[1].Text)
	}
}

func TestNewMetadata_FillsDefaults(t *testing.T) {
	meta := NewMetadata(Metadata{Title: "Sample", Author: "Tester"})

	if meta.ID == "" {
		t.Error("expected NewMetadata to generate a non-empty ID")
	}
	if meta.CreatedAt.IsZero() {
		t.Error("expected NewMetadata to stamp a non-zero CreatedAt")
	}
}

func TestNewMetadata_PreservesSuppliedValues(t *testing.T) {
	meta := NewMetadata(Metadata{ID: "fixed-id", Title: "Sample", Author: "Tester"})

	if meta.ID != "fixed-id" {
		t.Errorf("expected caller-supplied ID to be preserved, got %q", meta.ID)
	}
}
