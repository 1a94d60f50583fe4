package main

import (
	"bytes"
	"testing"

	"github.com/limaJavier/ordersearch/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputsTestDirectory = "../../test/inputs/"

func TestBuildInput(t *testing.T) {
	input, err := buildInput("", "", "")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultInput(), input)

	input, err = buildInput(inputsTestDirectory+"unreachable.json", "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), input.Target)

	input, err = buildInput(inputsTestDirectory+"unreachable.json", "", "399")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultInput(), input)

	input, err = buildInput("", " 1, 1, 2, 2, 3 ", "18")
	require.NoError(t, err)
	assert.Equal(t, model.SearchInput{Values: []int64{1, 1, 2, 2, 3}, Target: 18}, input)

	_, err = buildInput("", "1,2,3", "")
	assert.ErrorIs(t, err, model.ErrArity)

	_, err = buildInput("", "1,2,x,4,5", "")
	assert.Error(t, err)

	_, err = buildInput("", "", "3.5")
	assert.Error(t, err)
}

func TestWriteMatchesAsTuples(t *testing.T) {
	var buffer bytes.Buffer
	matches := []model.Match{{Index: 24, Values: []int64{9, 2, 5, 7, 3}}}

	require.NoError(t, writeMatches(&buffer, matches, "tuple"))

	assert.Equal(t, "(9, 2, 5, 7, 3)\n", buffer.String())
}

func TestWriteMatchesAsJson(t *testing.T) {
	var buffer bytes.Buffer
	matches := []model.Match{
		{Index: 10, Values: []int64{1, 2, 3, 1, 2}},
		{Index: 53, Values: []int64{2, 1, 3, 2, 1}},
	}

	require.NoError(t, writeMatches(&buffer, matches, "json"))

	assert.Equal(t, "[[1,2,3,1,2],[2,1,3,2,1]]\n", buffer.String())
}

func TestWriteNoMatches(t *testing.T) {
	var tuples, jsonBuffer bytes.Buffer

	require.NoError(t, writeMatches(&tuples, []model.Match{}, "tuple"))
	require.NoError(t, writeMatches(&jsonBuffer, []model.Match{}, "json"))

	assert.Empty(t, tuples.String())
	assert.Equal(t, "[]\n", jsonBuffer.String())
}

func TestEndToEndGoldenOutput(t *testing.T) {
	var buffer bytes.Buffer
	input := model.DefaultInput()

	for _, newSearcher := range searchers {
		buffer.Reset()
		searcher := newSearcher(model.NewPolynomialExpression())
		matches, _, err := searcher.Search(input)
		require.NoError(t, err)
		require.NoError(t, writeMatches(&buffer, matches, "tuple"))

		assert.Equal(t, "(9, 2, 5, 7, 3)\n", buffer.String())
	}
}
