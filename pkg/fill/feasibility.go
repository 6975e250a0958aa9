package fill

import (
	"strings"

	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/wordlist"
)

// Feasible reports whether placing word into slot keeps every crossing
// slot satisfiable: each crossing slot must either already be a
// dictionary word after the placement, or still have at least one
// dictionary completion. It also refuses word if it is already in
// used, or if the placement completes a crossing slot that then spells
// out an already-used word. Crossing slots whose shared cell already
// held a letter are not changed by the placement and are not rechecked.
//
// Feasible mutates grid only transiently: it places word, inspects the
// resulting crossings, and unplaces before returning, regardless of
// the verdict.
func Feasible(g *grid.Grid, slot *grid.Slot, word string, used map[string]bool, dict *wordlist.Dictionary) bool {
	if used[word] {
		return false
	}

	before, err := g.Place(slot, word)
	if err != nil {
		return false
	}
	defer g.Unplace(slot, before)

	for i, crossing := range slot.Crossings {
		other := crossing.Other
		if other == nil || before[i].State == grid.CellLetter {
			continue
		}
		pattern := grid.PatternOf(other).String()

		if strings.ContainsRune(pattern, '_') {
			if !dict.HasMatch(other.Length, pattern) {
				return false
			}
			continue
		}

		if !dict.Contains(pattern) {
			return false
		}
		if pattern != word && used[pattern] {
			return false
		}
	}

	return true
}
