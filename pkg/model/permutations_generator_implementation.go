package model

import (
	"iter"
	"slices"
)

type permutationGeneratorImplementation struct {
	size int
}

func (generator permutationGeneratorImplementation) Size() int {
	return generator.size
}

func (generator permutationGeneratorImplementation) ConstrainedPermutations(constraints []func(permutation []int) bool) [][]int {
	permutations := make([][]int, 0, factorial(generator.size))
	generator.constrainedPermutations(
		constraints,
		0,
		generator.emptyPermutation(),
		make([]bool, generator.size),
		func(permutation []int) bool {
			permutations = append(permutations, slices.Clone(permutation))
			return true
		},
	)
	return permutations
}

func (generator permutationGeneratorImplementation) Permutations() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		generator.constrainedPermutations(
			nil,
			0,
			generator.emptyPermutation(),
			make([]bool, generator.size),
			func(permutation []int) bool {
				return yield(slices.Clone(permutation))
			},
		)
	}
}

func (generator permutationGeneratorImplementation) emptyPermutation() []int {
	permutation := make([]int, generator.size)
	for i := range permutation {
		permutation[i] = unassigned
	}
	return permutation
}

// Fills permutation from currentPosition onwards trying positions in increasing order, which yields lexicographic order.
// Returns false as soon as emit asks to stop
func (generator permutationGeneratorImplementation) constrainedPermutations(
	constraints []func(permutation []int) bool,
	currentPosition int,
	permutation []int,
	used []bool,
	emit func(permutation []int) bool) bool {

	if currentPosition >= generator.size {
		return emit(permutation)
	}

	for i := range generator.size {
		if used[i] {
			continue
		}

		permutation[currentPosition] = i
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(permutation) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		used[i] = true
		proceed := generator.constrainedPermutations(constraints, currentPosition+1, permutation, used, emit)
		used[i] = false
		if !proceed {
			permutation[currentPosition] = unassigned
			return false
		}
	}

	permutation[currentPosition] = unassigned
	return true
}

func factorial(n int) uint64 {
	var result uint64 = 1
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result
}
