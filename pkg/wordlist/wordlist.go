// Package wordlist implements the dictionary index (spec.md C1): a
// canonical, length-bucketed, trie-backed word set supporting exact
// membership and pattern-match queries in time proportional to the
// size of the pruned search rather than the size of the dictionary.
//
// A linear scan-and-compare over a flat word list (the teacher
// project's original approach) is explicitly not good enough here:
// the search engine calls pattern queries on every candidate slot at
// every recursion step, so query cost must scale with the branching
// factor of the trie, not with dictionary size.
package wordlist

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedWord is returned by Build in strict mode when a
// candidate string contains non-alphabetic characters.
var ErrMalformedWord = errors.New("wordlist: malformed word")

// BuildOptions configures Build.
type BuildOptions struct {
	// Strict, if true, makes Build fail on the first malformed
	// candidate instead of silently skipping it (the default).
	Strict bool
}

// Dictionary is the immutable, length-bucketed word index. Once built
// it is safe for concurrent read-only use by any number of searches.
type Dictionary struct {
	byLength map[int]*trieNode
	counts   map[int]int
}

// Build normalizes, deduplicates, and indexes words into a Dictionary.
// Each candidate is trimmed and lowercased; candidates containing any
// non-alphabetic rune are rejected. In lenient mode (the default,
// BuildOptions{}) rejects are silently skipped; in strict mode Build
// returns ErrMalformedWord on the first one. Words are partitioned by
// length and inserted into one trie per length bucket.
func Build(words []string, opts BuildOptions) (*Dictionary, error) {
	d := &Dictionary{
		byLength: make(map[int]*trieNode),
		counts:   make(map[int]int),
	}

	seen := make(map[string]bool)
	for _, raw := range words {
		w := strings.ToLower(strings.TrimSpace(raw))
		if w == "" {
			continue
		}
		if !isAlphabetic(w) {
			if opts.Strict {
				return nil, fmt.Errorf("%w: %q", ErrMalformedWord, raw)
			}
			continue
		}
		if seen[w] {
			continue
		}
		seen[w] = true

		length := len(w)
		if d.byLength[length] == nil {
			d.byLength[length] = newTrieNode()
		}
		d.byLength[length].insert(w)
		d.counts[length]++
	}

	return d, nil
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether word is present in the dictionary, in
// O(len(word)).
func (d *Dictionary) Contains(word string) bool {
	w := strings.ToLower(word)
	root := d.byLength[len(w)]
	if root == nil {
		return false
	}
	node := root
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
		node = node.child(r)
		if node == nil {
			return false
		}
	}
	return node.terminal
}

// LengthCount returns how many distinct dictionary words have the
// given length.
func (d *Dictionary) LengthCount(length int) int {
	return d.counts[length]
}

// Size returns the total number of distinct words indexed across every
// length bucket.
func (d *Dictionary) Size() int {
	total := 0
	for _, c := range d.counts {
		total += c
	}
	return total
}

// Lengths returns every word length with at least one indexed word, in
// ascending order.
func (d *Dictionary) Lengths() []int {
	lengths := make([]int, 0, len(d.counts))
	for l := range d.counts {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// Matching enumerates every dictionary word of exactly length whose
// letters agree with pattern ('_' is a wildcard, any other byte is a
// fixed lowercase letter), in lexicographic order. Panics if
// len(pattern) != length: a pattern/length mismatch is a programming
// error, not a dictionary miss. Returns nil for length <= 0 or an
// unpopulated length bucket.
func (d *Dictionary) Matching(length int, pattern string) []string {
	if len(pattern) != length {
		panic(fmt.Sprintf("wordlist: pattern length %d does not match requested length %d", len(pattern), length))
	}
	if length <= 0 {
		return nil
	}
	root := d.byLength[length]
	if root == nil {
		return nil
	}

	var out []string
	buf := make([]byte, length)
	var walk func(node *trieNode, depth int)
	walk = func(node *trieNode, depth int) {
		if depth == length {
			if node.terminal {
				out = append(out, string(buf))
			}
			return
		}
		if pattern[depth] == '_' {
			for i, child := range node.children {
				if child == nil {
					continue
				}
				buf[depth] = byte('a' + i)
				walk(child, depth+1)
			}
			return
		}
		child := node.child(rune(pattern[depth]))
		if child == nil {
			return
		}
		buf[depth] = pattern[depth]
		walk(child, depth+1)
	}
	walk(root, 0)
	return out
}

// CountMatching returns len(Matching(length, pattern)) without
// materializing the result slice.
func (d *Dictionary) CountMatching(length int, pattern string) int {
	if len(pattern) != length {
		panic(fmt.Sprintf("wordlist: pattern length %d does not match requested length %d", len(pattern), length))
	}
	if length <= 0 {
		return 0
	}
	root := d.byLength[length]
	if root == nil {
		return 0
	}

	var count func(node *trieNode, depth int) int
	count = func(node *trieNode, depth int) int {
		if depth == length {
			if node.terminal {
				return 1
			}
			return 0
		}
		if pattern[depth] == '_' {
			total := 0
			for _, child := range node.children {
				if child != nil {
					total += count(child, depth+1)
				}
			}
			return total
		}
		child := node.child(rune(pattern[depth]))
		if child == nil {
			return 0
		}
		return count(child, depth+1)
	}
	return count(root, 0)
}

// HasMatch reports whether at least one dictionary word of length
// satisfies pattern, short-circuiting on the first hit. This backs the
// feasibility checker's "at least one completion exists" test, which
// needs existence, not a count.
func (d *Dictionary) HasMatch(length int, pattern string) bool {
	if len(pattern) != length {
		panic(fmt.Sprintf("wordlist: pattern length %d does not match requested length %d", len(pattern), length))
	}
	if length <= 0 {
		return false
	}
	root := d.byLength[length]
	if root == nil {
		return false
	}

	var has func(node *trieNode, depth int) bool
	has = func(node *trieNode, depth int) bool {
		if depth == length {
			return node.terminal
		}
		if pattern[depth] == '_' {
			for _, child := range node.children {
				if child != nil && has(child, depth+1) {
					return true
				}
			}
			return false
		}
		child := node.child(rune(pattern[depth]))
		return child != nil && has(child, depth+1)
	}
	return has(root, 0)
}
