package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadBroda reads a word list in Peter Broda's format (one entry per
// line, "WORD;SCORE") and builds a Dictionary from the word column.
// Scores are accepted for format compatibility with published Broda
// lists but are not retained: spec.md's candidate ordering scores
// words by in-dictionary letter frequency, not by an externally
// supplied popularity score.
func LoadBroda(path string, opts BuildOptions) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := line
		if i := strings.IndexByte(line, ';'); i >= 0 {
			word = line[:i]
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read %s: %w", path, err)
	}

	return Build(words, opts)
}

// LoadLines reads a plain word list, one word per line with no score
// column, and builds a Dictionary from it.
func LoadLines(path string, opts BuildOptions) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read %s: %w", path, err)
	}

	return Build(words, opts)
}
