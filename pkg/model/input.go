package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultTarget int64 = 399
)

var (
	DefaultValues = []int64{2, 9, 5, 7, 3}

	ErrArity = errors.New("wrong number of values")
)

type RawSearchInput struct {
	Values []int64 `mapstructure:"values"`
	Target *int64  `mapstructure:"target"`
}

type SearchInput struct {
	Values []int64
	Target int64
}

func DefaultInput() SearchInput {
	return SearchInput{
		Values: slices.Clone(DefaultValues),
		Target: DefaultTarget,
	}
}

func InputFromJson(file string) (SearchInput, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return SearchInput{}, err
	}

	// Keep numbers as json.Number so that fractional values are rejected instead of truncated
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()
	var inputJson map[string]any
	if err := decoder.Decode(&inputJson); err != nil {
		return SearchInput{}, err
	}

	var rawInput RawSearchInput
	mapDecoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &rawInput,
		ErrorUnused: true,
	})
	if err != nil {
		return SearchInput{}, err
	}
	if err := mapDecoder.Decode(inputJson); err != nil {
		return SearchInput{}, fmt.Errorf("cannot decode input file \"%v\": %w", file, err)
	}

	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawSearchInput) (SearchInput, error) {
	input := DefaultInput()

	if rawInput.Values != nil {
		input.Values = slices.Clone(rawInput.Values)
	}
	if rawInput.Target != nil {
		input.Target = *rawInput.Target
	}

	if len(input.Values) != Arity {
		return SearchInput{}, fmt.Errorf("%w: expected %d values but got %d: %v", ErrArity, Arity, len(input.Values), input.Values)
	}

	return input, nil
}
