package model

type predicateEvaluator interface {
	// Returns the value of the expression over the given ordering of values
	Value(values []int64) (int64, error)

	// Checks whether the expression over the given ordering of values equals the target
	Matches(values []int64) (bool, error)
}

type predicateEvaluatorStandard struct {
	expression Expression
	target     int64
}

func newPredicateEvaluator(expression Expression, target int64) predicateEvaluator {
	return &predicateEvaluatorStandard{
		expression: expression,
		target:     target,
	}
}

func (evaluator *predicateEvaluatorStandard) Value(values []int64) (int64, error) {
	return evaluator.expression.Evaluate(values)
}

func (evaluator *predicateEvaluatorStandard) Matches(values []int64) (bool, error) {
	value, err := evaluator.Value(values)
	if err != nil {
		return false, err
	}
	return value == evaluator.target, nil
}
