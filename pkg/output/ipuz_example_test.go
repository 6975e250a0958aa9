package output

import (
	"encoding/json"
	"fmt"
	"testing"
)

// TestIPuzFormatExampleOutput prints a sample ipuz document to stdout for
// manual verification and checks its required top-level fields
func TestIPuzFormatExampleOutput(t *testing.T) {
	doc := &Document{
		Title: "Sample Crossword", Author: "Test Author", Difficulty: "easy",
		Width: 5, Height: 5,
		Grid: [][]string{
			{"C", "A", "T", ".", "D"},
			{"O", ".", "O", ".", "O"},
			{"G", ".", "G", ".", "G"},
			{".", "G", "R", "I", "D"},
			{".", ".", ".", ".", "."},
		},
		Numbering: [][]int{
			{1, 0, 0, 0, 2},
			{3, 0, 4, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 5, 0, 0, 0},
			{0, 0, 0, 0, 0},
		},
		Across: []Clue{
			{Number: 1, Text: "Feline", Answer: "CAT", Length: 3, Direction: "across"},
			{Number: 2, Text: "Canine", Answer: "DOG", Length: 3, Direction: "across"},
			{Number: 3, Text: "Sprocket", Answer: "COG", Length: 3, Direction: "across"},
			{Number: 5, Text: "Lattice", Answer: "GRID", Length: 4, Direction: "across"},
		},
		Down: []Clue{
			{Number: 1, Text: "Sprocket", Answer: "COG", Length: 3, Direction: "down"},
			{Number: 2, Text: "Canine", Answer: "DOG", Length: 3, Direction: "down"},
			{Number: 4, Text: "Canine", Answer: "DOG", Length: 3, Direction: "down"},
		},
	}

	ipuzPuzzle, err := FormatIPuz(doc)
	if err != nil {
		t.Fatalf("FormatIPuz failed: %v", err)
	}

	jsonBytes, err := json.MarshalIndent(ipuzPuzzle, "", "  ")
	if err != nil {
		t.Fatalf("JSON marshal failed: %v", err)
	}

	fmt.Println("Sample ipuz output:")
	fmt.Println(string(jsonBytes))

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	requiredFields := []string{"version", "kind", "dimensions", "puzzle", "solution", "clues"}
	for _, field := range requiredFields {
		if _, ok := parsed[field]; !ok {
			t.Errorf("Required field '%s' is missing from ipuz output", field)
		}
	}

	if parsed["version"] != "http://ipuz.org/v2" {
		t.Errorf("Expected version 'http://ipuz.org/v2', got '%v'", parsed["version"])
	}

	kind, ok := parsed["kind"].([]interface{})
	if !ok || len(kind) == 0 {
		t.Fatal("Expected kind to be a non-empty array")
	}
	if kind[0] != "http://ipuz.org/crossword#1" {
		t.Errorf("Expected kind[0] to be 'http://ipuz.org/crossword#1', got '%v'", kind[0])
	}

	t.Log("ipuz format validation successful!")
}
