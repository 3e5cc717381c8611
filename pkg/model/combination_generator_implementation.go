package model

import (
	"slices"

	"github.com/samber/lo"
)

const unchosen = -1

type combinationGeneratorImplementation struct {
	candidates [][]Section
	indexer    indexer
	overlaps   [][]int // period-days
	threshold  float64 // period-days
}

func (generator *combinationGeneratorImplementation) Combinations() []combination {
	combinations := make([]combination, 0)
	if len(generator.candidates) == 0 || lo.SomeBy(generator.candidates, func(sections []Section) bool { return len(sections) == 0 }) {
		return combinations
	}

	current := make([]int, len(generator.candidates))
	for i := range current {
		current[i] = unchosen
	}
	generator.combinations(0, current, 0, &combinations)
	return combinations
}

func (generator *combinationGeneratorImplementation) combinations(
	subject int,
	current []int,
	overlap int,
	combinations *[]combination) {

	if subject >= len(generator.candidates) {
		*combinations = append(*combinations, combination{overlap: overlap, choices: slices.Clone(current)})
		return
	}

	for section := range generator.candidates[subject] {
		index := generator.indexer.Index(subject, section)

		// Add the overlap between this section and every section chosen at shallower depths
		partial := overlap
		for previous := range subject {
			partial += generator.overlaps[generator.indexer.Index(previous, current[previous])][index]
			if float64(partial) > generator.threshold {
				break
			}
		}

		if float64(partial) > generator.threshold {
			continue
		}

		current[subject] = section
		generator.combinations(subject+1, current, partial, combinations)
	}

	current[subject] = unchosen
}
