package model

import "log"

type indexerImplementation struct {
	size  int
	count uint64
}

func (indexer *indexerImplementation) Count() uint64 {
	return indexer.count
}

// Index ranks the permutation through its Lehmer code: digit i counts the positions to the right of i that are smaller than permutation[i]
func (indexer *indexerImplementation) Index(permutation []int) uint64 {
	if len(permutation) != indexer.size {
		log.Panicf("permutation %v does not have %d positions", permutation, indexer.size)
	}

	var index uint64
	for i := range indexer.size {
		var smaller uint64
		for j := i + 1; j < indexer.size; j++ {
			if permutation[j] < permutation[i] {
				smaller++
			}
		}
		index = index*uint64(indexer.size-i) + smaller
	}
	return index
}

func (indexer *indexerImplementation) Permutation(index uint64) []int {
	if index >= indexer.count {
		log.Panicf("index %d is out of range: there are only %d permutations", index, indexer.count)
	}

	// Decompose the index in the factorial number system, least significant digit first
	digits := make([]uint64, indexer.size)
	for i := indexer.size - 1; i >= 0; i-- {
		base := uint64(indexer.size - i)
		digits[i] = index % base
		index = index / base
	}

	remaining := make([]int, indexer.size)
	for i := range remaining {
		remaining[i] = i
	}

	permutation := make([]int, 0, indexer.size)
	for _, digit := range digits {
		permutation = append(permutation, remaining[digit])
		remaining = append(remaining[:digit], remaining[digit+1:]...)
	}
	return permutation
}
