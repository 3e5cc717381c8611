package model

import "sort"

type indexerImplementation struct {
	offsets []int // offsets[i] is the flat index of subject i's first candidate; the last entry is the total size
}

func (indexer *indexerImplementation) Index(subject, section int) int {
	return indexer.offsets[subject] + section
}

func (indexer *indexerImplementation) Attributes(index int) (subject, section int) {
	// Last offset not greater than index, which skips subjects without candidates
	subject = sort.SearchInts(indexer.offsets, index+1) - 1
	return subject, index - indexer.offsets[subject]
}

func (indexer *indexerImplementation) Size() int {
	return indexer.offsets[len(indexer.offsets)-1]
}
