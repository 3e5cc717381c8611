package model

// indexer interface is design to give a unique flat index to a (subject, section) candidate and vice versa
type indexer interface {
	// Returns a unique index for the section-th candidate of the subject-th subject
	Index(subject, section int) int
	// Returns the subject and section positions of a flat index
	Attributes(index int) (subject, section int)
	// Returns the number of indexed candidates
	Size() int
}

func newIndexer(candidates [][]Section) indexer {
	offsets := make([]int, len(candidates)+1)
	for i, sections := range candidates {
		offsets[i+1] = offsets[i] + len(sections)
	}
	return &indexerImplementation{offsets: offsets}
}
