package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/wordlist"
	"github.com/spf13/cobra"
)

var (
	validateInput    string
	validateWordlist string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate filled crossword grids against a dictionary",
	Long: `Validate one or more generated grid JSON files by independently re-checking
the properties generation is supposed to guarantee:

  - every across and down slot of length >= 3 spells a dictionary word
  - no word is used more than once across the whole grid
  - letters shared between a crossing across/down slot pair agree

Examples:
  # Validate a single grid file
  crossgen validate --input puzzle_001.json --wordlist words.txt

  # Validate every grid in a directory
  crossgen validate --input ./puzzles --wordlist words.txt`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "input file or directory to validate (required)")
	validateCmd.Flags().StringVarP(&validateWordlist, "wordlist", "w", "", "path to wordlist file, Peter Broda format (required)")
	validateCmd.MarkFlagRequired("input")
	validateCmd.MarkFlagRequired("wordlist")
}

func runValidate(cmd *cobra.Command, args []string) error {
	dict, err := wordlist.LoadBroda(validateWordlist, wordlist.BuildOptions{})
	if err != nil {
		return fmt.Errorf("failed to load wordlist: %w", err)
	}

	info, err := os.Stat(validateInput)
	if err != nil {
		return fmt.Errorf("failed to access input path: %w", err)
	}

	var filesToValidate []string
	if info.IsDir() {
		files, err := filepath.Glob(filepath.Join(validateInput, "*.json"))
		if err != nil {
			return fmt.Errorf("failed to list directory: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no .json files found in directory: %s", validateInput)
		}
		filesToValidate = files
	} else {
		filesToValidate = []string{validateInput}
	}

	validFiles, invalidFiles := 0, 0
	for _, filePath := range filesToValidate {
		violations, err := validatePuzzleFile(filePath, dict)
		if err != nil {
			fmt.Printf("%s: ERROR - %v\n", filepath.Base(filePath), err)
			invalidFiles++
			continue
		}
		if len(violations) > 0 {
			fmt.Printf("%s: INVALID\n", filepath.Base(filePath))
			for _, v := range violations {
				fmt.Printf("   - %s\n", v)
			}
			invalidFiles++
			continue
		}
		if verbosity > 0 {
			fmt.Printf("%s: VALID\n", filepath.Base(filePath))
		}
		validFiles++
	}

	fmt.Printf("\nValidation Summary:\n")
	fmt.Printf("  Total files:   %d\n", len(filesToValidate))
	fmt.Printf("  Valid:         %d\n", validFiles)
	fmt.Printf("  Invalid:       %d\n", invalidFiles)

	if invalidFiles > 0 {
		os.Exit(1)
	}
	return nil
}

type puzzleFile struct {
	Grid [][]string `json:"grid"`
}

// validatePuzzleFile rebuilds a grid.Grid from the JSON grid (a "." or
// empty entry becomes a block cell, anything else a placed letter), then
// re-derives the slot structure and checks every testable property
// spec.md §8 names, independent of whatever clue/entry lists the file
// also carries.
func validatePuzzleFile(filePath string, dict *wordlist.Dictionary) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var pf puzzleFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}
	if len(pf.Grid) == 0 {
		return []string{"empty grid"}, nil
	}

	g, err := gridFromLetters(pf.Grid)
	if err != nil {
		return nil, err
	}

	var violations []string
	seen := make(map[string]bool)

	for _, slot := range g.Slots {
		word := slotWord(slot)
		if word == "" {
			violations = append(violations, fmt.Sprintf("%s at (%d,%d): incomplete", slot.Direction, slot.StartRow, slot.StartCol))
			continue
		}
		if !dict.Contains(word) {
			violations = append(violations, fmt.Sprintf("%s at (%d,%d): %q is not a dictionary word", slot.Direction, slot.StartRow, slot.StartCol, word))
		}
		if seen[word] {
			violations = append(violations, fmt.Sprintf("%s at (%d,%d): %q is used more than once", slot.Direction, slot.StartRow, slot.StartCol, word))
		}
		seen[word] = true

		for i, crossing := range slot.Crossings {
			if crossing.Other == nil {
				continue
			}
			mine := slot.Cells[i].Letter
			theirs := crossing.Other.Cells[crossing.OtherIndex].Letter
			if mine != theirs {
				violations = append(violations, fmt.Sprintf("%s at (%d,%d): crossing letter mismatch with %s at (%d,%d)",
					slot.Direction, slot.StartRow, slot.StartCol, crossing.Other.Direction, crossing.Other.StartRow, crossing.Other.StartCol))
			}
		}
	}

	return violations, nil
}

func slotWord(slot *grid.Slot) string {
	buf := make([]byte, len(slot.Cells))
	for i, cell := range slot.Cells {
		if cell.State != grid.CellLetter {
			return ""
		}
		buf[i] = byte(cell.Letter)
	}
	return string(buf)
}

func gridFromLetters(rows [][]string) (*grid.Grid, error) {
	size := len(rows)
	blocks := make(map[[2]int]bool)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, expected %d (grid must be square)", r, len(row), size)
		}
		for c, cell := range row {
			if cell == "." || cell == "" {
				blocks[[2]int{r, c}] = true
			}
		}
	}

	g := grid.NewEmptyGrid(grid.GridConfig{Size: size, Blocks: blocks})
	for r, row := range rows {
		for c, cell := range row {
			if blocks[[2]int{r, c}] {
				continue
			}
			g.Cells[r][c].State = grid.CellLetter
			g.Cells[r][c].Letter = []rune(cell)[0]
		}
	}
	return g, nil
}
