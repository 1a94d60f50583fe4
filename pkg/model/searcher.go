package model

// A single ordering of the input values whose expression equals the target
type Match struct {
	Index  uint64 // Generation-order index of the ordering
	Values []int64
}

type Searcher interface {
	// Evaluates every ordering of the input values and returns the matching ones in generation order, together with the number of evaluated orderings
	Search(
		searchInput SearchInput,
	) (matches []Match, evaluated uint64, err error)

	Verify(
		matches []Match,
		searchInput SearchInput,
	) bool
}
