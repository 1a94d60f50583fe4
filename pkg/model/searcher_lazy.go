package model

type lazySearcher struct {
	expression Expression
}

// NewLazySearcher builds a searcher that evaluates permutations as they are generated
func NewLazySearcher(expression Expression) Searcher {
	return &lazySearcher{
		expression: expression,
	}
}

func (searcher *lazySearcher) Search(searchInput SearchInput) ([]Match, uint64, error) {
	evaluator := newPredicateEvaluator(searcher.expression, searchInput.Target)
	generator := newPermutationGenerator(len(searchInput.Values))
	indexer := newIndexer(generator.Size())

	matches := []Match{}
	var evaluated uint64
	for permutation := range generator.Permutations() {
		values := applyPermutation(searchInput.Values, permutation)
		ok, err := evaluator.Matches(values)
		if err != nil {
			return nil, evaluated, err
		}

		if ok {
			matches = append(matches, Match{
				Index:  evaluated,
				Values: values,
			})
		}
		evaluated++
	}

	if evaluated != indexer.Count() {
		return nil, evaluated, errIncomplete(evaluated, indexer.Count())
	}
	return matches, evaluated, nil
}

func (searcher *lazySearcher) Verify(matches []Match, searchInput SearchInput) bool {
	return verify(matches, searchInput, searcher.expression)
}
