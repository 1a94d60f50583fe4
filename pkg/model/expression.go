package model

import (
	"errors"
	"fmt"
	"math"
)

// Number of values the polynomial expression consumes
const Arity = 5

var ErrOverflow = errors.New("integer overflow")

type Expression interface {
	// Evaluates the expression over an ordering of values. It fails if len(values) != Arity() or the result does not fit in 64 bits
	Evaluate(values []int64) (int64, error)
	Arity() int
}

type polynomialExpression struct{}

// NewPolynomialExpression returns the expression a0 + a1*a2^2 + a3^3 - a4
func NewPolynomialExpression() Expression {
	return polynomialExpression{}
}

func (polynomialExpression) Arity() int {
	return Arity
}

func (expression polynomialExpression) Evaluate(values []int64) (int64, error) {
	if len(values) != Arity {
		return 0, fmt.Errorf("%w: expression takes %d values but got %d", ErrArity, Arity, len(values))
	}
	a0, a1, a2, a3, a4 := values[0], values[1], values[2], values[3], values[4]

	square, err := power(a2, 2)
	if err != nil {
		return 0, err
	}
	product, err := multiply(a1, square)
	if err != nil {
		return 0, err
	}
	cube, err := power(a3, 3)
	if err != nil {
		return 0, err
	}

	result, err := add(a0, product)
	if err != nil {
		return 0, err
	}
	if result, err = add(result, cube); err != nil {
		return 0, err
	}
	return subtract(result, a4)
}

func add(a, b int64) (int64, error) {
	result := a + b
	if (b > 0 && result < a) || (b < 0 && result > a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return result, nil
}

func subtract(a, b int64) (int64, error) {
	result := a - b
	if (b > 0 && result > a) || (b < 0 && result < a) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return result, nil
}

func multiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	result := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || result/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return result, nil
}

// Integer exponentiation for non-negative exponents
func power(base int64, exponent uint) (int64, error) {
	var result int64 = 1
	for range exponent {
		var err error
		if result, err = multiply(result, base); err != nil {
			return 0, err
		}
	}
	return result, nil
}
