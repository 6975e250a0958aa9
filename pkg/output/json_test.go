package output

import (
	"encoding/json"
	"testing"
	"time"
)

func sampleDocument() *Document {
	return &Document{
		ID:         "test-puzzle-123",
		Title:      "Test Puzzle",
		Author:     "Test Author",
		Difficulty: "medium",
		CreatedAt:  time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Width:      3,
		Height:     3,
		Grid: [][]string{
			{"A", "C", "E"},
			{".", ".", "."},
			{"T", "E", "A"},
		},
		Numbering: [][]int{
			{1, 0, 0},
			{0, 0, 0},
			{2, 0, 0},
		},
		Across: []Clue{
			{Number: 1, Text: "Expert", Answer: "ACE", Length: 3, Direction: "across"},
			{Number: 2, Text: "Beverage", Answer: "TEA", Length: 3, Direction: "across"},
		},
		Down: []Clue{
			{Number: 1, Text: "Consumed", Answer: "ATE", Length: 3, Direction: "down"},
		},
	}
}

func TestFormatJSON(t *testing.T) {
	doc := sampleDocument()
	result := FormatJSON(doc)

	if result.ID != "test-puzzle-123" {
		t.Errorf("Expected ID to be 'test-puzzle-123', got '%s'", result.ID)
	}
	if result.Title != "Test Puzzle" {
		t.Errorf("Expected Title to be 'Test Puzzle', got '%s'", result.Title)
	}
	if result.Difficulty != "medium" {
		t.Errorf("Expected Difficulty to be 'medium', got '%s'", result.Difficulty)
	}

	if len(result.Grid) != 3 {
		t.Fatalf("Expected grid height to be 3, got %d", len(result.Grid))
	}
	expectedGrid := [][]string{
		{"A", "C", "E"},
		{".", ".", "."},
		{"T", "E", "A"},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if result.Grid[y][x] != expectedGrid[y][x] {
				t.Errorf("Expected grid[%d][%d] to be '%s', got '%s'",
					y, x, expectedGrid[y][x], result.Grid[y][x])
			}
		}
	}

	if len(result.Across) != 2 {
		t.Fatalf("Expected 2 across clues, got %d", len(result.Across))
	}
	if result.Across[0].Answer != "ACE" {
		t.Errorf("Expected across[0].Answer to be 'ACE', got '%s'", result.Across[0].Answer)
	}
	if len(result.Down) != 1 {
		t.Fatalf("Expected 1 down clue, got %d", len(result.Down))
	}
	if result.Down[0].Answer != "ATE" {
		t.Errorf("Expected down[0].Answer to be 'ATE', got '%s'", result.Down[0].Answer)
	}
}

func TestFormatJSON_AllBlackCells(t *testing.T) {
	doc := &Document{
		Title: "All Black", Author: "Tester", Width: 2, Height: 2,
		Grid: [][]string{{".", "."}, {".", "."}},
	}

	result := FormatJSON(doc)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if result.Grid[y][x] != "." {
				t.Errorf("Expected grid[%d][%d] to be '.', got '%s'", y, x, result.Grid[y][x])
			}
		}
	}
}

func TestFormatJSON_NoClues(t *testing.T) {
	doc := &Document{Title: "No Clues", Author: "Tester", Width: 1, Height: 1, Grid: [][]string{{"A"}}}

	result := FormatJSON(doc)

	if len(result.Across) != 0 {
		t.Errorf("Expected 0 across clues, got %d", len(result.Across))
	}
	if len(result.Down) != 0 {
		t.Errorf("Expected 0 down clues, got %d", len(result.Down))
	}
}

func TestToJSON(t *testing.T) {
	doc := &Document{
		Title: "JSON Test", Author: "JSON Author", Difficulty: "easy",
		Width: 2, Height: 1,
		Grid: [][]string{{"H", "I"}},
		Across: []Clue{
			{Number: 1, Text: "Greeting", Answer: "HI", Length: 2, Direction: "across"},
		},
	}

	jsonBytes, err := ToJSON(doc)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if parsed["title"] != "JSON Test" {
		t.Errorf("Expected title to be 'JSON Test', got '%v'", parsed["title"])
	}
	if parsed["difficulty"] != "easy" {
		t.Errorf("Expected difficulty to be 'easy', got '%v'", parsed["difficulty"])
	}

	grid, ok := parsed["grid"].([]interface{})
	if !ok {
		t.Fatal("Expected grid to be an array")
	}
	if len(grid) != 1 {
		t.Fatalf("Expected grid to have 1 row, got %d", len(grid))
	}
	row := grid[0].([]interface{})
	if row[0] != "H" || row[1] != "I" {
		t.Errorf("Expected grid row to be [H, I], got %v", row)
	}

	across, ok := parsed["across"].([]interface{})
	if !ok {
		t.Fatal("Expected across to be an array")
	}
	if len(across) != 1 {
		t.Fatalf("Expected 1 across clue, got %d", len(across))
	}
}

func TestFormatJSON_LargePuzzle(t *testing.T) {
	gridRows := make([][]string, 15)
	for y := 0; y < 15; y++ {
		gridRows[y] = make([]string, 15)
		for x := 0; x < 15; x++ {
			if (y*15+x)%5 == 0 {
				gridRows[y][x] = "."
			} else {
				gridRows[y][x] = "A"
			}
		}
	}

	doc := &Document{Title: "Large Puzzle", Author: "Large Author", Width: 15, Height: 15, Grid: gridRows}

	result := FormatJSON(doc)

	if len(result.Grid) != 15 {
		t.Fatalf("Expected grid height to be 15, got %d", len(result.Grid))
	}
	for y := 0; y < 15; y++ {
		for x := 0; x < 15; x++ {
			expected := "A"
			if (y*15+x)%5 == 0 {
				expected = "."
			}
			if result.Grid[y][x] != expected {
				t.Errorf("Expected grid[%d][%d] to be '%s', got '%s'", y, x, expected, result.Grid[y][x])
			}
		}
	}
}
