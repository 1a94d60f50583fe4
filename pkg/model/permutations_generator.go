package model

import "iter"

// Marks a position of a partial permutation that has not been assigned yet
const unassigned = -1

type permutationGenerator interface {
	// Returns every permutation of the positions 0..size-1 that holds the constraints, in lexicographic order over positions.
	// Distinctness of positions is always enforced, callers only add extra pruning.
	// All the constraints must take into account that if the value of permutation[i] is unassigned then the permutation is not ready to be evaluated if this evaluation involves permutation[i]
	//
	// Example:
	//
	//	generator := newPermutationGenerator(5)
	//
	//	permutations := generator.ConstrainedPermutations([]func(permutation []int) bool{
	//				func(permutation []int) bool {
	//	       		// Verify "permutation[0] == unassigned", since the predicate "permutation[0] == 1" relies in this index
	//					return permutation[0] == unassigned || permutation[0] == 1
	//				},
	//			})
	ConstrainedPermutations(constraints []func(permutation []int) bool) [][]int

	// Lazily yields the same sequence as ConstrainedPermutations(nil). Every yielded slice is owned by the consumer
	Permutations() iter.Seq[[]int]

	// Number of positions being permuted
	Size() int
}

func newPermutationGenerator(size int) permutationGenerator {
	return &permutationGeneratorImplementation{size: size}
}
