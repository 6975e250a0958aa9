package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/crossplay/backend/pkg/clues"
	"github.com/crossplay/backend/pkg/clues/providers"
	"github.com/crossplay/backend/pkg/fill"
	"github.com/crossplay/backend/pkg/output"
	"github.com/crossplay/backend/pkg/puzzle"
	"github.com/crossplay/backend/pkg/wordlist"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

var (
	genCount        int
	genSize         int
	genDifficulty   string
	genOutput       string
	genFormat       string
	genWordlist     string
	genLLM          string
	genSeed         int64
	genCandidateCap int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate crossword grids",
	Long: `Generate one or more filled crossword grids using constraint satisfaction and LLM-generated clues.

Examples:
  # Generate 10 5x5 grids in JSON format
  crossgen generate --wordlist words.txt --count 10 --size 5 --format json --output ./puzzles

  # Generate a single 7x7 grid in every format
  crossgen generate --wordlist words.txt --size 7 --format all --output ./puzzle

  # Generate using cache-only mode (no LLM API calls)
  crossgen generate --wordlist words.txt --llm cache-only --count 5`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Flag defaults fall back to environment variables (and, via
	// godotenv in root.go, a .env file) before the hardcoded default,
	// so a deployment can pin a wordlist/output directory without
	// repeating flags on every invocation.
	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of grids to generate")
	generateCmd.Flags().IntVarP(&genSize, "size", "s", 5, "grid size, 3-7")
	generateCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "medium", "clue difficulty (easy, medium, hard)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", getEnv("CROSSGEN_OUTPUT_DIR", "."), "output directory")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "json", "output format (json, puz, ipuz, all)")
	generateCmd.Flags().StringVarP(&genWordlist, "wordlist", "w", getEnv("CROSSGEN_WORDLIST", ""), "path to wordlist file (Peter Broda format)")
	generateCmd.Flags().StringVarP(&genLLM, "llm", "l", "cache-only", "LLM provider (anthropic, ollama, cache-only)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", getEnvInt64("CROSSGEN_SEED", 0), "base PRNG seed; each generated grid offsets from it")
	generateCmd.Flags().IntVar(&genCandidateCap, "candidate-cap", getEnvInt("CROSSGEN_CANDIDATE_CAP", 150), "max candidate words considered per slot during search")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	clueDifficulty, err := parseDifficulty(genDifficulty)
	if err != nil {
		return fmt.Errorf("invalid difficulty: %w", err)
	}

	formats, err := parseFormats(genFormat)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	if genWordlist == "" {
		return fmt.Errorf("--wordlist flag is required")
	}
	if genSize < 3 || genSize > 7 {
		return fmt.Errorf("--size must be between 3 and 7, got %d", genSize)
	}

	if verbosity > 0 {
		fmt.Printf("Loading wordlist from: %s\n", genWordlist)
	}

	dict, err := wordlist.LoadBroda(genWordlist, wordlist.BuildOptions{})
	if err != nil {
		return fmt.Errorf("failed to load wordlist: %w", err)
	}

	if verbosity > 0 {
		fmt.Printf("Loaded %d words\n", dict.Size())
	}

	clueGen, err := setupClueGenerator(genLLM, clueDifficulty)
	if err != nil {
		return fmt.Errorf("failed to setup clue generator: %w", err)
	}

	if err := os.MkdirAll(genOutput, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Generating %d %dx%d grid(s)\n", genCount, genSize, genSize)

	for i := 1; i <= genCount; i++ {
		startTime := time.Now()
		fmt.Printf("[%d/%d] Generating grid... ", i, genCount)

		config := puzzle.Config{
			Size:         genSize,
			Dictionary:   dict,
			Seed:         genSeed + int64(i),
			Ordering:     fill.OrderingHeuristic,
			CandidateCap: genCandidateCap,
		}

		filled, err := puzzle.GenerateFilledGrid(config)
		if err != nil {
			fmt.Printf("FAILED\n")
			return fmt.Errorf("failed to generate grid %d: %w", i, err)
		}

		clueText := map[string]string{}
		if clueGen != nil {
			clueText, err = clueGen.GenerateClues(ctx, filled.Entries)
			if err != nil {
				fmt.Printf("FAILED\n")
				return fmt.Errorf("failed to generate clues for grid %d: %w", i, err)
			}
		}

		meta := output.NewMetadata(output.Metadata{
			Title:      fmt.Sprintf("Crossword %d - %s", i, time.Now().Format("2006-01-02")),
			Author:     "crossgen",
			Difficulty: string(clueDifficulty),
		})
		doc := output.NewDocument(filled, clueText, meta)

		if err := writeOutputFiles(doc, genOutput, i, formats); err != nil {
			fmt.Printf("FAILED\n")
			return fmt.Errorf("failed to write output files for grid %d: %w", i, err)
		}

		elapsed := time.Since(startTime)
		fmt.Printf("OK (%.1fs)\n", elapsed.Seconds())
	}

	fmt.Printf("\nSuccessfully generated %d grid(s) in %s\n", genCount, genOutput)
	return nil
}

// parseDifficulty converts the --difficulty flag to a clues.Difficulty
func parseDifficulty(diff string) (clues.Difficulty, error) {
	switch strings.ToLower(diff) {
	case "easy":
		return clues.DifficultyEasy, nil
	case "medium":
		return clues.DifficultyMedium, nil
	case "hard":
		return clues.DifficultyHard, nil
	default:
		return clues.DifficultyMedium, fmt.Errorf("invalid difficulty: %s (must be easy, medium, or hard)", diff)
	}
}

// parseFormats converts format string to list of formats
func parseFormats(format string) ([]string, error) {
	format = strings.ToLower(format)
	if format == "all" {
		return []string{"json", "puz", "ipuz"}, nil
	}

	validFormats := map[string]bool{
		"json": true,
		"puz":  true,
		"ipuz": true,
	}

	if !validFormats[format] {
		return nil, fmt.Errorf("invalid format: %s (must be json, puz, ipuz, or all)", format)
	}

	return []string{format}, nil
}

// setupClueGenerator creates a clue generator based on the LLM provider.
// It returns either a Generator or an error, never a nil Generator
// without an error: an unrecognized llmProvider is an error, and
// cache-only returns a Generator whose llmClient is nil, so cache hits
// are still served.
func setupClueGenerator(llmProvider string, difficulty clues.Difficulty) (*clues.Generator, error) {
	cacheDB, err := sql.Open("sqlite3", "./clue_cache.db")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if err := clues.InitDB(cacheDB); err != nil {
		return nil, fmt.Errorf("failed to initialize cache database: %w", err)
	}

	cache, err := clues.NewClueCache(cacheDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create clue cache: %w", err)
	}

	var llmClient providers.LLMClient
	switch strings.ToLower(llmProvider) {
	case "cache-only":
		llmClient = nil
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		var clientErr error
		llmClient, clientErr = providers.NewAnthropicClient(providers.AnthropicConfig{
			APIKey: apiKey,
			Model:  providers.ModelHaiku,
		})
		if clientErr != nil {
			return nil, fmt.Errorf("failed to create Anthropic client: %w", clientErr)
		}
	case "ollama":
		var clientErr error
		llmClient, clientErr = providers.NewOllamaClient(providers.OllamaConfig{
			BaseURL: "http://localhost:11434/api/generate",
			Model:   providers.ModelLlama2,
		})
		if clientErr != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", clientErr)
		}
	default:
		return nil, fmt.Errorf("invalid LLM provider: %s (must be anthropic, ollama, or cache-only)", llmProvider)
	}

	return clues.NewGenerator(cache, llmClient, difficulty), nil
}

// writeOutputFiles writes a Document to disk in the specified formats
func writeOutputFiles(doc *output.Document, outputDir string, puzzleNum int, formats []string) error {
	baseName := fmt.Sprintf("puzzle_%03d", puzzleNum)

	for _, format := range formats {
		var filePath string
		var data []byte
		var err error

		switch format {
		case "json":
			filePath = filepath.Join(outputDir, baseName+".json")
			data, err = output.ToJSON(doc)
		case "puz":
			filePath = filepath.Join(outputDir, baseName+".puz")
			data, err = output.FormatPuz(doc)
		case "ipuz":
			filePath = filepath.Join(outputDir, baseName+".ipuz")
			data, err = output.ToIPuz(doc)
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return fmt.Errorf("failed to format grid as %s: %w", format, err)
		}

		if err := os.WriteFile(filePath, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s file: %w", format, err)
		}
	}

	return nil
}
