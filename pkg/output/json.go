package output

import (
	"encoding/json"
	"time"
)

// ClueJSON represents a clue in the JSON format
type ClueJSON struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Answer string `json:"answer"`
	Length int    `json:"length"`
}

// PuzzleJSON represents a puzzle in the JSON format for export
type PuzzleJSON struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"createdAt"`

	Grid      [][]string `json:"grid"`
	Numbering [][]int    `json:"numbering"`

	Across []ClueJSON `json:"across"`
	Down   []ClueJSON `json:"down"`
}

// FormatJSON converts a Document to a PuzzleJSON struct
func FormatJSON(doc *Document) *PuzzleJSON {
	across := make([]ClueJSON, len(doc.Across))
	for i, clue := range doc.Across {
		across[i] = ClueJSON{Number: clue.Number, Text: clue.Text, Answer: clue.Answer, Length: clue.Length}
	}

	down := make([]ClueJSON, len(doc.Down))
	for i, clue := range doc.Down {
		down[i] = ClueJSON{Number: clue.Number, Text: clue.Text, Answer: clue.Answer, Length: clue.Length}
	}

	return &PuzzleJSON{
		ID:         doc.ID,
		Title:      doc.Title,
		Author:     doc.Author,
		Difficulty: doc.Difficulty,
		CreatedAt:  doc.CreatedAt,
		Grid:       doc.Grid,
		Numbering:  doc.Numbering,
		Across:     across,
		Down:       down,
	}
}

// ToJSON converts a Document to indented JSON bytes
func ToJSON(doc *Document) ([]byte, error) {
	return json.MarshalIndent(FormatJSON(doc), "", "  ")
}

// FromJSON parses a PuzzleJSON document back into a Document, the
// inverse of ToJSON/FormatJSON.
func FromJSON(data []byte) (*Document, error) {
	var pj PuzzleJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return nil, err
	}

	across := make([]Clue, len(pj.Across))
	for i, c := range pj.Across {
		across[i] = Clue{Number: c.Number, Text: c.Text, Answer: c.Answer, Length: c.Length, Direction: "across"}
	}
	down := make([]Clue, len(pj.Down))
	for i, c := range pj.Down {
		down[i] = Clue{Number: c.Number, Text: c.Text, Answer: c.Answer, Length: c.Length, Direction: "down"}
	}

	height := len(pj.Grid)
	width := 0
	if height > 0 {
		width = len(pj.Grid[0])
	}

	return &Document{
		ID:         pj.ID,
		Title:      pj.Title,
		Author:     pj.Author,
		Difficulty: pj.Difficulty,
		CreatedAt:  pj.CreatedAt,
		Width:      width,
		Height:     height,
		Grid:       pj.Grid,
		Numbering:  pj.Numbering,
		Across:     across,
		Down:       down,
	}, nil
}
