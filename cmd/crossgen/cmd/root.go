package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile   string
	verbosity int
)

// dotenvErr holds the result of loading .env. Package variables are
// initialized before any init function runs, so the .env values are in
// the environment by the time generate.go's init reads its flag
// defaults through getEnv.
var dotenvErr = godotenv.Load()

// getEnv returns the environment variable named by key, or defaultValue
// when it is unset or empty, mirroring the project's existing
// cmd/server/main.go configuration pattern.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

var rootCmd = &cobra.Command{
	Use:   "crossgen",
	Short: "Crossword puzzle generator CLI",
	Long: `crossgen is a command-line tool for generating, validating, and converting crossword puzzles.

It uses constraint satisfaction to fill grids with words from Peter Broda's wordlist
and generates clues using LLM providers (Anthropic Claude or Ollama).`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (echoed to stderr; the file is not read)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
}

func initConfig() {
	if dotenvErr != nil {
		log.Println("No .env file found, using environment variables")
	}

	if cfgFile != "" {
		// Only the path is reported; no configuration is read from it
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", cfgFile)
	}

	// Set up verbosity level if needed
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "Verbosity level: %d\n", verbosity)
	}
}
