package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

func applyPermutation(values []int64, permutation []int) []int64 {
	return lo.Map(permutation, func(position int, _ int) int64 {
		return values[position]
	})
}

func errIncomplete(evaluated, expected uint64) error {
	return fmt.Errorf("search evaluated %d permutations but %d were expected", evaluated, expected)
}

// Renders values as a tuple, e.g. "(9, 2, 5, 7, 3)"
func FormatTuple(values []int64) string {
	return "(" + strings.Join(lo.Map(values, func(value int64, _ int) string {
		return strconv.FormatInt(value, 10)
	}), ", ") + ")"
}

// Rebuilds the match set through the indexer and compares it with the given matches
func verify(matches []Match, searchInput SearchInput, expression Expression) bool {
	evaluator := newPredicateEvaluator(expression, searchInput.Target)
	indexer := newIndexer(len(searchInput.Values))

	// Matches must be in strictly increasing generation order
	if !slices.IsSortedFunc(matches, func(a, b Match) int {
		return compareIndices(a.Index, b.Index)
	}) || len(lo.UniqBy(matches, func(match Match) uint64 { return match.Index })) != len(matches) {
		return false
	}

	// Every match must be the ordering its index stands for, and satisfy the predicate
	if lo.SomeBy(matches, func(match Match) bool {
		if match.Index >= indexer.Count() {
			return true
		}
		values := applyPermutation(searchInput.Values, indexer.Permutation(match.Index))
		if !slices.Equal(values, match.Values) {
			return true
		}
		ok, err := evaluator.Matches(match.Values)
		return err != nil || !ok
	}) {
		return false
	}

	// No matching ordering may be missing
	expected := 0
	for index := range indexer.Count() {
		ok, err := evaluator.Matches(applyPermutation(searchInput.Values, indexer.Permutation(index)))
		if err != nil {
			return false
		}
		if ok {
			expected++
		}
	}
	return expected == len(matches)
}

func compareIndices(a, b uint64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
