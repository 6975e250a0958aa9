package output

import (
	"encoding/json"
	"fmt"
)

// IPuzDimensions represents the puzzle dimensions
type IPuzDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IPuzCell represents a cell in the ipuz puzzle grid. It can be null
// (omitted), "#" (block), a number (clue label), or an object with
// cell properties.
type IPuzCell struct {
	Cell      *int    `json:"cell,omitempty"`
	Style     *string `json:"style,omitempty"`
	IsCircled bool    `json:"isCircled,omitempty"`
}

// IPuzClue represents a clue in ipuz format [number, "clue text"]
type IPuzClue []interface{}

// IPuzClues represents the clues section with Across and Down
type IPuzClues struct {
	Across []IPuzClue `json:"Across"`
	Down   []IPuzClue `json:"Down"`
}

// IPuzPuzzle represents the complete ipuz format structure
type IPuzPuzzle struct {
	Version    string          `json:"version"`
	Kind       []string        `json:"kind"`
	Title      string          `json:"title,omitempty"`
	Author     string          `json:"author,omitempty"`
	Copyright  string          `json:"copyright,omitempty"`
	Difficulty string          `json:"difficulty,omitempty"`
	Dimensions IPuzDimensions  `json:"dimensions"`
	Puzzle     [][]interface{} `json:"puzzle"`
	Solution   [][]interface{} `json:"solution"`
	Clues      IPuzClues       `json:"clues"`
}

// FormatIPuz converts a Document to ipuz format. The ipuz format is
// used by modern web solvers; see http://ipuz.org/.
func FormatIPuz(doc *Document) (*IPuzPuzzle, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", doc.Width, doc.Height)
	}
	if len(doc.Grid) != doc.Height {
		return nil, fmt.Errorf("grid height mismatch: expected %d, got %d", doc.Height, len(doc.Grid))
	}

	puzzleGrid := make([][]interface{}, doc.Height)
	for y := 0; y < doc.Height; y++ {
		if len(doc.Grid[y]) != doc.Width {
			return nil, fmt.Errorf("grid width mismatch at row %d: expected %d, got %d", y, doc.Width, len(doc.Grid[y]))
		}

		puzzleGrid[y] = make([]interface{}, doc.Width)
		for x := 0; x < doc.Width; x++ {
			letter := doc.Grid[y][x]
			number := 0
			if doc.Numbering != nil {
				number = doc.Numbering[y][x]
			}

			switch {
			case letter == ".":
				puzzleGrid[y][x] = "#"
			case number > 0:
				n := number
				puzzleGrid[y][x] = IPuzCell{Cell: &n}
			default:
				puzzleGrid[y][x] = 0
			}
		}
	}

	solutionGrid := make([][]interface{}, doc.Height)
	for y := 0; y < doc.Height; y++ {
		solutionGrid[y] = make([]interface{}, doc.Width)
		for x := 0; x < doc.Width; x++ {
			letter := doc.Grid[y][x]
			if letter == "." {
				solutionGrid[y][x] = "#"
			} else {
				solutionGrid[y][x] = letter
			}
		}
	}

	acrossClues := make([]IPuzClue, 0, len(doc.Across))
	for _, clue := range doc.Across {
		acrossClues = append(acrossClues, IPuzClue{clue.Number, clue.Text})
	}

	downClues := make([]IPuzClue, 0, len(doc.Down))
	for _, clue := range doc.Down {
		downClues = append(downClues, IPuzClue{clue.Number, clue.Text})
	}

	copyright := fmt.Sprintf("© %s", doc.Author)
	if !doc.CreatedAt.IsZero() {
		copyright = fmt.Sprintf("© %d %s", doc.CreatedAt.Year(), doc.Author)
	}

	return &IPuzPuzzle{
		Version:    "http://ipuz.org/v2",
		Kind:       []string{"http://ipuz.org/crossword#1"},
		Title:      doc.Title,
		Author:     doc.Author,
		Copyright:  copyright,
		Difficulty: doc.Difficulty,
		Dimensions: IPuzDimensions{Width: doc.Width, Height: doc.Height},
		Puzzle:     puzzleGrid,
		Solution:   solutionGrid,
		Clues: IPuzClues{
			Across: acrossClues,
			Down:   downClues,
		},
	}, nil
}

// ToIPuz converts a Document to ipuz JSON bytes
func ToIPuz(doc *Document) ([]byte, error) {
	ipuzPuzzle, err := FormatIPuz(doc)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(ipuzPuzzle, "", "  ")
}

// ValidateIPuz checks that a Document carries everything ipuz export
// requires.
func ValidateIPuz(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("document cannot be nil")
	}
	if doc.Title == "" {
		return fmt.Errorf("puzzle title is required")
	}
	if doc.Author == "" {
		return fmt.Errorf("puzzle author is required")
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("invalid grid dimensions: %dx%d", doc.Width, doc.Height)
	}
	if len(doc.Grid) != doc.Height {
		return fmt.Errorf("grid height mismatch: expected %d, got %d", doc.Height, len(doc.Grid))
	}
	for y := 0; y < doc.Height; y++ {
		if len(doc.Grid[y]) != doc.Width {
			return fmt.Errorf("grid width mismatch at row %d: expected %d, got %d", y, doc.Width, len(doc.Grid[y]))
		}
	}
	if len(doc.Across) == 0 && len(doc.Down) == 0 {
		return fmt.Errorf("puzzle must have at least one clue")
	}
	return nil
}

// FromIPuz parses ipuz JSON bytes back into a Document. It recovers
// only what the ipuz structure carries directly: answers come from the
// solution grid, not from re-running the solver.
func FromIPuz(data []byte) (*Document, error) {
	var ipuz IPuzPuzzle
	if err := json.Unmarshal(data, &ipuz); err != nil {
		return nil, fmt.Errorf("failed to parse ipuz: %w", err)
	}

	doc := &Document{
		Title:      ipuz.Title,
		Author:     ipuz.Author,
		Difficulty: ipuz.Difficulty,
		Width:      ipuz.Dimensions.Width,
		Height:     ipuz.Dimensions.Height,
	}

	doc.Grid = make([][]string, doc.Height)
	doc.Numbering = make([][]int, doc.Height)
	for y := 0; y < doc.Height; y++ {
		doc.Grid[y] = make([]string, doc.Width)
		doc.Numbering[y] = make([]int, doc.Width)
		for x := 0; x < doc.Width; x++ {
			if y < len(ipuz.Solution) && x < len(ipuz.Solution[y]) {
				if sol, ok := ipuz.Solution[y][x].(string); ok {
					doc.Grid[y][x] = sol
				}
			}
			if y < len(ipuz.Puzzle) && x < len(ipuz.Puzzle[y]) {
				switch cell := ipuz.Puzzle[y][x].(type) {
				case float64:
					doc.Numbering[y][x] = int(cell)
				case map[string]interface{}:
					if n, ok := cell["cell"].(float64); ok {
						doc.Numbering[y][x] = int(n)
					}
				}
			}
		}
	}

	doc.Across = parseIPuzClues(ipuz.Clues.Across, "across")
	doc.Down = parseIPuzClues(ipuz.Clues.Down, "down")
	return doc, nil
}

func parseIPuzClues(raw []IPuzClue, direction string) []Clue {
	clues := make([]Clue, 0, len(raw))
	for _, c := range raw {
		if len(c) < 2 {
			continue
		}
		number := 0
		if n, ok := c[0].(float64); ok {
			number = int(n)
		}
		text, _ := c[1].(string)
		clues = append(clues, Clue{Number: number, Text: text, Direction: direction})
	}
	return clues
}
