package model

type eagerSearcher struct {
	expression Expression
}

// NewEagerSearcher builds a searcher that materializes every permutation before evaluating them
func NewEagerSearcher(expression Expression) Searcher {
	return &eagerSearcher{
		expression: expression,
	}
}

func (searcher *eagerSearcher) Search(searchInput SearchInput) ([]Match, uint64, error) {
	//** Initialize dependencies
	evaluator := newPredicateEvaluator(searcher.expression, searchInput.Target)
	generator := newPermutationGenerator(len(searchInput.Values))
	indexer := newIndexer(generator.Size())

	//** Generate permutations
	permutations := generator.ConstrainedPermutations(nil)

	//** Evaluate permutations
	matches := []Match{}
	var evaluated uint64
	for index, permutation := range permutations {
		values := applyPermutation(searchInput.Values, permutation)
		ok, err := evaluator.Matches(values)
		if err != nil {
			return nil, evaluated, err
		}
		evaluated++

		if ok {
			matches = append(matches, Match{
				Index:  uint64(index),
				Values: values,
			})
		}
	}

	if evaluated != indexer.Count() {
		return nil, evaluated, errIncomplete(evaluated, indexer.Count())
	}
	return matches, evaluated, nil
}

func (searcher *eagerSearcher) Verify(matches []Match, searchInput SearchInput) bool {
	return verify(matches, searchInput, searcher.expression)
}
