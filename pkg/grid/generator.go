package grid

import (
	"errors"
	"math/rand"
)

// ErrLayoutUnreachable is returned when no symmetric block layout could
// be found whose every row/column run is either a single block-free
// stretch of length >= MinSlotLength or has no white cells at all.
var ErrLayoutUnreachable = errors.New("grid: no block layout found with all slots of length >= 3")

// maxPlacementAttempts bounds how many candidate layouts are tried at
// a given pair count before the pair count is increased.
const maxPlacementAttempts = 200

// maxPairGrowth bounds how many times the pair count may be increased
// before GenerateBlockLayout gives up with ErrLayoutUnreachable.
const maxPairGrowth = 6

// BlockSet is the set of (row, col) cells that are blocks in a layout,
// in the representation GridConfig.Blocks expects.
type BlockSet map[[2]int]bool

// GenerateBlockLayout produces a block layout for an N x N grid per
// spec.md C3. For N <= 4 every cell is open (no blocks; every row and
// column is itself a single length-N slot). For N >= 5 it seeds
// symmetric pairs of interior blocks — starting from p = N/2 pairs,
// growing p and retrying if the result leaves any row/column run of
// length 1 or 2, or disconnects the open cells (spec.md §9: typical
// layouts keep the white cells connected, even though the core doesn't
// require it) — and surfaces ErrLayoutUnreachable if no layout is
// found within the attempt budget.
//
// Given the same n and seed, GenerateBlockLayout always returns the
// same BlockSet.
func GenerateBlockLayout(n int, seed int64) (BlockSet, error) {
	if n <= 4 {
		return BlockSet{}, nil
	}

	rng := rand.New(rand.NewSource(seed))
	pairs := n / 2

	for growth := 0; growth < maxPairGrowth; growth++ {
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			blocks := placeSymmetricPairs(n, pairs, rng)
			if hasShortRun(n, blocks) {
				continue
			}
			g := NewEmptyGrid(GridConfig{Size: n, Blocks: map[[2]int]bool(blocks)})
			if !isConnected(g) {
				continue
			}
			return blocks, nil
		}
		pairs++
	}

	return nil, ErrLayoutUnreachable
}

// placeSymmetricPairs places up to `pairs` 180-degree-symmetric block
// pairs at distinct interior cells (1..n-2), chosen by shuffling the
// interior cell list with rng and taking the first available ones.
// Interior-only placement keeps every slot touching row/column 0 or
// n-1 intact, per spec.md's default heuristic.
func placeSymmetricPairs(n, pairs int, rng *rand.Rand) BlockSet {
	blocks := make(BlockSet, pairs*2)

	var interior [][2]int
	for r := 1; r <= n-2; r++ {
		for c := 1; c <= n-2; c++ {
			interior = append(interior, [2]int{r, c})
		}
	}
	rng.Shuffle(len(interior), func(i, j int) {
		interior[i], interior[j] = interior[j], interior[i]
	})

	placed := 0
	for _, pos := range interior {
		if placed >= pairs {
			break
		}
		r, c := pos[0], pos[1]
		if blocks[[2]int{r, c}] {
			continue
		}
		mr, mc := mirror180(n, r, c)
		blocks[[2]int{r, c}] = true
		blocks[[2]int{mr, mc}] = true
		placed++
	}

	return blocks
}

// hasShortRun reports whether the given block layout leaves any
// row or column run of non-block cells with length 1 or 2 — a run
// too short ever to become a slot, which would strand those cells
// unfillable for the life of the search.
func hasShortRun(n int, blocks BlockSet) bool {
	isBlock := func(r, c int) bool { return blocks[[2]int{r, c}] }

	for r := 0; r < n; r++ {
		run := 0
		for c := 0; c < n; c++ {
			if isBlock(r, c) {
				if run == 1 || run == 2 {
					return true
				}
				run = 0
			} else {
				run++
			}
		}
		if run == 1 || run == 2 {
			return true
		}
	}

	for c := 0; c < n; c++ {
		run := 0
		for r := 0; r < n; r++ {
			if isBlock(r, c) {
				if run == 1 || run == 2 {
					return true
				}
				run = 0
			} else {
				run++
			}
		}
		if run == 1 || run == 2 {
			return true
		}
	}

	return false
}
