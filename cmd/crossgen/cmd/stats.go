package cmd

import (
	"fmt"

	"github.com/crossplay/backend/pkg/puzzle"
	"github.com/crossplay/backend/pkg/wordlist"
	"github.com/spf13/cobra"
)

var (
	statsWordlist string
	statsSize     int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report dictionary word counts per length bucket",
	Long: `Load a wordlist and report, for every populated length bucket, how many
distinct words it holds and whether that bucket clears the sufficiency
threshold generation enforces for a requested grid size.

Examples:
  # Report bucket sizes for the default threshold check (size 5)
  crossgen stats --wordlist words.txt

  # Check sufficiency against a specific grid size
  crossgen stats --wordlist words.txt --size 7`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsWordlist, "wordlist", "w", "", "path to wordlist file, Peter Broda format (required)")
	statsCmd.Flags().IntVarP(&statsSize, "size", "s", 5, "grid size to check bucket sufficiency against, 3-7")
	statsCmd.MarkFlagRequired("wordlist")
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsSize < 3 || statsSize > 7 {
		return fmt.Errorf("--size must be between 3 and 7, got %d", statsSize)
	}

	dict, err := wordlist.LoadBroda(statsWordlist, wordlist.BuildOptions{})
	if err != nil {
		return fmt.Errorf("failed to load wordlist: %w", err)
	}

	threshold := puzzle.MinWordsPerLength(statsSize)

	fmt.Printf("\nDictionary Statistics\n")
	fmt.Printf("======================\n")
	fmt.Printf("Wordlist:           %s\n", statsWordlist)
	fmt.Printf("Total words:        %d\n", dict.Size())
	fmt.Printf("Sufficiency check:  grid size %d, threshold %d words/length\n\n", statsSize, threshold)

	fmt.Printf("%-8s %-8s %-12s\n", "Length", "Count", "Sufficient?")
	fmt.Printf("%-8s %-8s %-12s\n", "------", "-----", "-----------")

	allSufficient := true
	for _, length := range dict.Lengths() {
		count := dict.LengthCount(length)
		sufficient := count >= threshold
		mark := "yes"
		if !sufficient {
			mark = "no"
			if length >= 3 && length <= statsSize {
				allSufficient = false
			}
		}
		fmt.Printf("%-8d %-8d %-12s\n", length, count, mark)
	}

	fmt.Println()
	if allSufficient {
		fmt.Printf("Dictionary clears the sufficiency threshold for grid size %d.\n", statsSize)
	} else {
		fmt.Printf("Dictionary is below the sufficiency threshold for one or more lengths needed at grid size %d.\n", statsSize)
	}

	return nil
}
