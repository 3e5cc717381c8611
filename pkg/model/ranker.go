package model

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

type rankedCombination struct {
	combination
	shift int // period-days within the preferred shift
}

// rankCombinations orders combinations by ascending overlap and, when a shift is preferred, breaks ties
// by descending number of period-occurrences in that shift. Remaining ties keep their input order.
func rankCombinations(combinations []combination, candidates [][]Section, options Options, preference ShiftPreference) []combination {
	ranked := lo.Map(combinations, func(combination combination, _ int) rankedCombination {
		return rankedCombination{combination: combination}
	})

	if shift, preferred := options.Shift(preference); preferred {
		scores := lo.Map(candidates, func(sections []Section, _ int) []int {
			return lo.Map(sections, func(section Section, _ int) int { return shiftSessionDays(section, shift) })
		})
		for i := range ranked {
			for subject, section := range ranked[i].choices {
				ranked[i].shift += scores[subject][section]
			}
		}
	}

	slices.SortStableFunc(ranked, func(a, b rankedCombination) int {
		return cmp.Or(
			cmp.Compare(a.overlap, b.overlap),
			cmp.Compare(b.shift, a.shift),
		)
	})

	return lo.Map(ranked, func(ranked rankedCombination, _ int) combination { return ranked.combination })
}

// selectCombination picks the ordinal-th ranked combination, wrapping around the list in both directions
func selectCombination(ranked []combination, ordinal int) (selected combination, index int, ok bool) {
	if len(ranked) == 0 {
		return combination{}, 0, false
	}
	index = (ordinal%len(ranked) + len(ranked)) % len(ranked)
	return ranked[index], index, true
}
