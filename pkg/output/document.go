// Package output converts a solved puzzle.FilledPuzzle, together with
// its clue text, into the export payloads downstream consumers expect:
// a JSON document, the ipuz interchange format, and the AcrossLite
// .puz binary format. It has no persistence or HTTP concerns of its
// own; it only shapes the engine's output into the formats those
// layers would consume.
package output

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/puzzle"
)

// Clue is one numbered, directional clue paired with its answer.
type Clue struct {
	Number    int
	Text      string
	Answer    string
	Length    int
	Direction string
}

// Document is the export-ready view of a generated puzzle: the solved
// grid plus whatever identifying metadata and clue text the caller
// has gathered for it. NewDocument never invents metadata; Metadata is
// supplied by the orchestrating caller (the CLI, in this repo), which
// may fill in a missing ID and CreatedAt with NewMetadata.
type Document struct {
	ID         string
	Title      string
	Author     string
	Difficulty string
	CreatedAt  time.Time

	Width  int
	Height int
	// Grid holds one letter per filled cell, "." for a block cell.
	Grid      [][]string
	Numbering [][]int

	Across []Clue
	Down   []Clue
}

// Metadata is the caller-supplied identifying information a FilledPuzzle
// doesn't carry on its own.
type Metadata struct {
	ID         string
	Title      string
	Author     string
	Difficulty string
	CreatedAt  time.Time
}

// NewMetadata fills in an ID via uuid.NewString and a CreatedAt of now
// when the caller leaves them zero, mirroring how the orchestration
// boundary stamps a freshly generated puzzle.
func NewMetadata(m Metadata) Metadata {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return m
}

// NewDocument builds a Document from a solved FilledPuzzle, a map of
// clue text keyed "<number>-<direction>" (the shape clues.Generator
// returns), and caller-supplied metadata.
func NewDocument(fp *puzzle.FilledPuzzle, clueText map[string]string, meta Metadata) *Document {
	doc := &Document{
		ID:         meta.ID,
		Title:      meta.Title,
		Author:     meta.Author,
		Difficulty: meta.Difficulty,
		CreatedAt:  meta.CreatedAt,
		Width:      fp.Grid.Size,
		Height:     fp.Grid.Size,
		Numbering:  fp.Numbering,
	}

	doc.Grid = make([][]string, fp.Grid.Size)
	for r, row := range fp.Grid.Cells {
		doc.Grid[r] = make([]string, len(row))
		for c, cell := range row {
			if cell.State == grid.CellBlock {
				doc.Grid[r][c] = "."
			} else {
				doc.Grid[r][c] = string(cell.Letter)
			}
		}
	}

	doc.Across = cluesFor(fp.Entries.Across, "across", clueText)
	doc.Down = cluesFor(fp.Entries.Down, "down", clueText)
	return doc
}

func cluesFor(entries []puzzle.Entry, direction string, clueText map[string]string) []Clue {
	out := make([]Clue, len(entries))
	for i, e := range entries {
		out[i] = Clue{
			Number:    e.Number,
			Text:      clueText[clueKey(e.Number, direction)],
			Answer:    e.Word,
			Length:    e.Length,
			Direction: direction,
		}
	}
	return out
}

func clueKey(number int, direction string) string {
	return fmt.Sprintf("%d-%s", number, direction)
}
