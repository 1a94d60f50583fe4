package model

// indexer interface is design to give a unique index to a permutation of positions and vice versa.
// Indices follow the generation order of permutationGenerator, so index 0 is the identity and index Count()-1 the reversed identity
type indexer interface {
	// Returns the generation-order index of a permutation of the positions 0..size-1
	Index(permutation []int) uint64
	// Returns the permutation of the positions 0..size-1 that sits at the given generation-order index
	Permutation(index uint64) []int
	// Returns the total number of permutations (i.e. size!)
	Count() uint64
}

func newIndexer(size int) indexer {
	return &indexerImplementation{
		size:  size,
		count: factorial(size),
	}
}
