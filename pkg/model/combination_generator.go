package model

// combination holds one chosen candidate position per subject, in subject order, together with its total overlap
type combination struct {
	overlap int // period-days
	choices []int
}

type combinationGenerator interface {
	// Returns every combination (one candidate per subject) whose accumulated overlap never exceeds the threshold.
	// A branch is abandoned as soon as its partial overlap goes above the threshold: overlap only grows as more
	// subjects are chosen, so no completion of that branch could come back under it.
	// The returned combinations are in no particular order. If any subject has no candidates the result is empty.
	//
	// Example:
	//
	//	generator := newCombinationGenerator([][]Section{mathSections, physicsSections}, 16, 12)
	//	for _, combination := range generator.Combinations() {
	//		math, physics := mathSections[combination.choices[0]], physicsSections[combination.choices[1]]
	//	}
	Combinations() []combination
}

func newCombinationGenerator(candidates [][]Section, periods int, threshold float64) combinationGenerator {
	indexer := newIndexer(candidates)

	// Pairwise section overlaps across different subjects, read by the search's inner loop
	overlaps := make([][]int, indexer.Size())
	for i := range overlaps {
		overlaps[i] = make([]int, indexer.Size())
	}
	for subject1 := range len(candidates) - 1 {
		for section1, first := range candidates[subject1] {
			index1 := indexer.Index(subject1, section1)
			for subject2 := subject1 + 1; subject2 < len(candidates); subject2++ {
				for section2, second := range candidates[subject2] {
					index2 := indexer.Index(subject2, section2)
					overlap := sectionOverlapDays(first, second, periods)
					overlaps[index1][index2] = overlap
					overlaps[index2][index1] = overlap
				}
			}
		}
	}

	return &combinationGeneratorImplementation{
		candidates: candidates,
		indexer:    indexer,
		overlaps:   overlaps,
		threshold:  threshold * daysPerWeek,
	}
}
