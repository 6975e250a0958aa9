// Package fill implements the grid-filling search: a most-constrained-
// variable backtracking solver that selects slots, orders candidate
// words by a letter-frequency heuristic (or a seeded shuffle), and
// places/unplaces under an explicit backtrack budget.
package fill

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/wordlist"
)

// ErrUnsolvable is returned when a single search invocation exhausts
// its backtrack budget or its root-level candidates without finding a
// solution. It covers both true infeasibility and budget exhaustion;
// the two are not distinguished.
var ErrUnsolvable = errors.New("fill: search exhausted without a solution")

// Ordering selects how candidate words are ranked within a slot.
type Ordering int

const (
	// OrderingHeuristic ranks candidates by summed letter-frequency
	// weight over the positions that were wildcards.
	OrderingHeuristic Ordering = iota
	// OrderingRandom shuffles candidates using the search's seeded rng.
	OrderingRandom
)

const (
	defaultMaxBacktracks = 10_000
	defaultCandidateCap  = 150
)

// Config configures one Solve invocation.
type Config struct {
	MaxBacktracks int // default 10_000
	CandidateCap  int // default 150
	Ordering      Ordering
	Rng           *rand.Rand // required for reproducibility; caller seeds it
}

func (c Config) withDefaults() Config {
	if c.MaxBacktracks <= 0 {
		c.MaxBacktracks = defaultMaxBacktracks
	}
	if c.CandidateCap <= 0 {
		c.CandidateCap = defaultCandidateCap
	}
	if c.Rng == nil {
		c.Rng = rand.New(rand.NewSource(1))
	}
	return c
}

// Seed pre-places one word on a named slot before the first recursion,
// supporting a warmup like "pick a random long word for the first row".
type Seed struct {
	Slot *grid.Slot
	Word string
}

// state carries one search invocation's mutable bookkeeping down the
// recursion: the grid it mutates in place, the words already placed
// anywhere in it, and which slots have a word explicitly assigned
// (distinct from a slot merely appearing fully-lettered via crossings).
type state struct {
	grid       *grid.Grid
	dictionary *wordlist.Dictionary
	config     Config
	used       map[string]bool
	assigned   map[*grid.Slot]bool
	backtracks int
}

// Solve runs one backtracking attempt against g using dictionary,
// optionally pre-placing seed first. It mutates g in place: on success
// every slot holds a dictionary word; on ErrUnsolvable, g is left
// exactly as it was before Solve was called (seed included).
func Solve(g *grid.Grid, dictionary *wordlist.Dictionary, cfg Config, seed *Seed) error {
	cfg = cfg.withDefaults()
	st := &state{
		grid:       g,
		dictionary: dictionary,
		config:     cfg,
		used:       make(map[string]bool),
		assigned:   make(map[*grid.Slot]bool, len(g.Slots)),
	}

	if seed != nil {
		before, err := g.Place(seed.Slot, seed.Word)
		if err != nil {
			return err
		}
		st.used[seed.Word] = true
		st.assigned[seed.Slot] = true

		if st.search() {
			return nil
		}
		g.Unplace(seed.Slot, before)
		return ErrUnsolvable
	}

	if st.search() {
		return nil
	}
	return ErrUnsolvable
}

// search is the recursive Selecting/Trying/Backtracking step. It
// returns true iff every slot is now assigned a dictionary word.
func (st *state) search() bool {
	slot := st.selectSlot()
	if slot == nil {
		return true
	}

	pattern := grid.PatternOf(slot).String()
	candidates := st.dictionary.Matching(slot.Length, pattern)
	candidates = st.orderCandidates(candidates, slot, pattern)

	for _, word := range candidates {
		if !Feasible(st.grid, slot, word, st.used, st.dictionary) {
			continue
		}

		before, err := st.grid.Place(slot, word)
		if err != nil {
			continue
		}
		st.used[word] = true
		st.assigned[slot] = true

		if st.search() {
			return true
		}

		st.grid.Unplace(slot, before)
		delete(st.used, word)
		delete(st.assigned, slot)
		st.backtracks++
		if st.backtracks > st.config.MaxBacktracks {
			return false
		}
	}

	return false
}

// selectSlot implements the MRV-style ordering from most-constrained
// pattern down to deterministic slot order, returning nil once every
// slot is assigned.
func (st *state) selectSlot() *grid.Slot {
	var best *grid.Slot
	bestWildcards := -1
	bestCount := -1

	for _, slot := range st.grid.Slots {
		if st.assigned[slot] {
			continue
		}

		pattern := grid.PatternOf(slot).String()
		wildcards := countWildcards(pattern)
		count := st.dictionary.CountMatching(slot.Length, pattern)

		if best == nil || wildcards < bestWildcards || (wildcards == bestWildcards && count < bestCount) {
			best = slot
			bestWildcards = wildcards
			bestCount = count
		}
	}

	return best
}

func countWildcards(pattern string) int {
	n := 0
	for _, r := range pattern {
		if r == '_' {
			n++
		}
	}
	return n
}

// orderCandidates drops already-used words, ranks the remainder, and
// truncates to the configured candidate cap.
func (st *state) orderCandidates(candidates []string, slot *grid.Slot, pattern string) []string {
	fresh := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !st.used[c] {
			fresh = append(fresh, c)
		}
	}

	switch st.config.Ordering {
	case OrderingRandom:
		st.config.Rng.Shuffle(len(fresh), func(i, j int) {
			fresh[i], fresh[j] = fresh[j], fresh[i]
		})
	default:
		scores := make(map[string]float64, len(fresh))
		for _, c := range fresh {
			scores[c] = scoreCandidate(c, pattern)
		}
		sort.SliceStable(fresh, func(i, j int) bool {
			if scores[fresh[i]] != scores[fresh[j]] {
				return scores[fresh[i]] > scores[fresh[j]]
			}
			return fresh[i] < fresh[j]
		})
	}

	if len(fresh) > st.config.CandidateCap {
		fresh = fresh[:st.config.CandidateCap]
	}
	return fresh
}

// scoreCandidate sums letterFrequency over the positions that were
// wildcards in pattern — filled letters contribute nothing since the
// heuristic only measures how "open" a word keeps its crossings.
func scoreCandidate(word, pattern string) float64 {
	score := 0.0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '_' {
			score += letterFrequency[word[i]]
		}
	}
	return score
}

// letterFrequency holds approximate English letter-frequency weights,
// used only to rank equally-valid candidates toward ones that keep
// crossing slots maximally fillable.
var letterFrequency = map[byte]float64{
	'a': 8.2, 'b': 1.5, 'c': 2.8, 'd': 4.3, 'e': 12.7, 'f': 2.2,
	'g': 2.0, 'h': 6.1, 'i': 7.0, 'j': 0.15, 'k': 0.77, 'l': 4.0,
	'm': 2.4, 'n': 6.7, 'o': 7.5, 'p': 1.9, 'q': 0.095, 'r': 6.0,
	's': 6.3, 't': 9.1, 'u': 2.8, 'v': 0.98, 'w': 2.4, 'x': 0.15,
	'y': 2.0, 'z': 0.074,
}
