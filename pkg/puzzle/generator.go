package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/crossplay/backend/pkg/fill"
	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/wordlist"
)

// ErrorKind classifies a GenerationError.
type ErrorKind int

const (
	// MalformedWord: a dictionary candidate failed the alphabetic
	// invariant under strict construction. Surfaced by wordlist.Build,
	// not by this package, but named here for the shared error type.
	MalformedWord ErrorKind = iota
	// InsufficientDictionary: fewer than the required admissible words
	// of some needed length.
	InsufficientDictionary
	// LayoutUnreachable: the block layout generator could not produce a
	// layout whose slots are all length >= 3.
	LayoutUnreachable
	// Unsolvable: the search exhausted every restart without finding a
	// solution. Covers both true infeasibility and budget exhaustion.
	Unsolvable
	// Invariant: an internal precondition was violated. This is a bug,
	// not a user error.
	Invariant
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedWord:
		return "malformed word"
	case InsufficientDictionary:
		return "insufficient dictionary"
	case LayoutUnreachable:
		return "layout unreachable"
	case Unsolvable:
		return "unsolvable"
	case Invariant:
		return "invariant violation"
	default:
		return "unknown"
	}
}

// GenerationError is the single error type GenerateFilledGrid returns.
// Coord is populated only for Invariant, reporting the offending cell.
type GenerationError struct {
	Kind  ErrorKind
	Coord [2]int
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("puzzle: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("puzzle: %s", e.Kind)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// MinWordsPerLength is the heuristic sufficiency threshold from
// spec.md: a conforming implementation may raise it, but must not
// lower it silently. Exported so reporting tools can reproduce the
// same threshold checkSufficiency enforces without duplicating it.
func MinWordsPerLength(n int) int {
	if 2*n > 10 {
		return 2 * n
	}
	return 10
}

// Config configures one GenerateFilledGrid invocation.
type Config struct {
	Size          int // 3..7
	Dictionary    *wordlist.Dictionary
	Seed          int64
	MaxBacktracks int          // default 10_000
	MaxRestarts   int          // default 3
	CandidateCap  int          // default 150
	Ordering      fill.Ordering
	BlockLayout   grid.BlockSet // nil: C3 generates one (N>=5) or all-open (N<=4)

	// SeedDirection, SeedStartRow, SeedStartCol and SeedWord optionally
	// pre-place one word before
	// the first recursion of every attempt, identifying the slot by
	// its (direction, start row, start col) rather than by index.
	SeedDirection grid.Direction
	SeedStartRow  int
	SeedStartCol  int
	SeedWord      string
}

const (
	defaultMaxRestarts = 3
)

// GenerateFilledGrid is the engine's single public entry point: it
// builds (or accepts) a block layout, runs the fill search up to
// MaxRestarts independent attempts, and on success extracts the
// numbered entry lists.
func GenerateFilledGrid(config Config) (*FilledPuzzle, error) {
	if err := checkSufficiency(config); err != nil {
		return nil, err
	}

	blocks := config.BlockLayout
	if blocks == nil {
		layout, err := grid.GenerateBlockLayout(config.Size, config.Seed)
		if err != nil {
			return nil, &GenerationError{Kind: LayoutUnreachable, Err: err}
		}
		blocks = layout
	}

	gridConfig := grid.GridConfig{Size: config.Size, Blocks: map[[2]int]bool(blocks)}

	maxRestarts := config.MaxRestarts
	if maxRestarts <= 0 {
		maxRestarts = defaultMaxRestarts
	}

	var lastErr error
	for attempt := 0; attempt < maxRestarts; attempt++ {
		g := grid.NewEmptyGrid(gridConfig)

		var seed *fill.Seed
		if config.SeedWord != "" {
			slot := findSlot(g, config.SeedDirection, config.SeedStartRow, config.SeedStartCol)
			if slot == nil {
				return nil, &GenerationError{
					Kind: Invariant,
					Err:  fmt.Errorf("no slot at (%d,%d) direction %s", config.SeedStartRow, config.SeedStartCol, config.SeedDirection),
				}
			}
			seed = &fill.Seed{Slot: slot, Word: config.SeedWord}
		}

		fillCfg := fill.Config{
			MaxBacktracks: config.MaxBacktracks,
			CandidateCap:  config.CandidateCap,
			Ordering:      config.Ordering,
			Rng:           rand.New(rand.NewSource(config.Seed + int64(attempt))),
		}

		err := fill.Solve(g, config.Dictionary, fillCfg, seed)
		if err == nil {
			return &FilledPuzzle{
				Grid:      g,
				Slots:     g.Slots,
				Entries:   extractEntries(g),
				Numbering: numberingGrid(g),
			}, nil
		}
		lastErr = err
	}

	return nil, &GenerationError{Kind: Unsolvable, Err: lastErr}
}

// checkSufficiency enforces the InsufficientDictionary entry check:
// the dictionary must hold at least MinWordsPerLength(N) admissible
// words of every slot length that will actually occur.
func checkSufficiency(config Config) error {
	lengths := map[int]bool{config.Size: true}
	if config.Size >= 5 {
		// A symmetric block layout can still produce full-length runs
		// plus shorter ones down to MinSlotLength; require sufficiency
		// across the whole admissible range to stay conservative.
		for l := grid.MinSlotLength; l <= config.Size; l++ {
			lengths[l] = true
		}
	}

	threshold := MinWordsPerLength(config.Size)
	for length := range lengths {
		if config.Dictionary.LengthCount(length) < threshold {
			return &GenerationError{
				Kind: InsufficientDictionary,
				Err:  fmt.Errorf("need >= %d words of length %d, have %d", threshold, length, config.Dictionary.LengthCount(length)),
			}
		}
	}
	return nil
}

func findSlot(g *grid.Grid, dir grid.Direction, row, col int) *grid.Slot {
	for _, s := range g.Slots {
		if s.Direction == dir && s.StartRow == row && s.StartCol == col {
			return s
		}
	}
	return nil
}
