package model

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestInputFromJson(t *testing.T) {
	g := NewWithT(t)

	input, err := InputFromJson(inputsTestDirectory + "default.json")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(input).To(Equal(DefaultInput()))

	input, err = InputFromJson(inputsTestDirectory + "unreachable.json")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(input.Values).To(Equal([]int64{2, 9, 5, 7, 3}))
	g.Expect(input.Target).To(Equal(int64(1000)))

	input, err = InputFromJson(inputsTestDirectory + "target_only.json")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(input.Values).To(Equal(DefaultValues))
	g.Expect(input.Target).To(Equal(int64(567)))

	input, err = InputFromJson(inputsTestDirectory + "duplicates.json")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(input.Values).To(Equal([]int64{1, 1, 2, 2, 3}))
}

func TestInputFromJsonRejectsInvalidFiles(t *testing.T) {
	g := NewWithT(t)

	_, err := InputFromJson(inputsTestDirectory + "short.json")
	g.Expect(err).To(MatchError(ErrArity))

	_, err = InputFromJson(inputsTestDirectory + "fractional.json")
	g.Expect(err).To(HaveOccurred())

	_, err = InputFromJson(inputsTestDirectory + "unknown_key.json")
	g.Expect(err).To(HaveOccurred())

	_, err = InputFromJson(inputsTestDirectory + "missing.json")
	g.Expect(err).To(HaveOccurred())
}

func TestProcessRawInput(t *testing.T) {
	g := NewWithT(t)
	target := int64(18)

	input, err := ProcessRawInput(RawSearchInput{})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(input).To(Equal(DefaultInput()))

	values := []int64{1, 1, 2, 2, 3}
	input, err = ProcessRawInput(RawSearchInput{Values: values, Target: &target})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(input).To(Equal(SearchInput{Values: []int64{1, 1, 2, 2, 3}, Target: 18}))

	// The input owns its values
	values[0] = 42
	g.Expect(input.Values[0]).To(Equal(int64(1)))

	_, err = ProcessRawInput(RawSearchInput{Values: []int64{}})
	g.Expect(err).To(MatchError(ErrArity))
}

func TestDefaultInputIsNotShared(t *testing.T) {
	g := NewWithT(t)

	input := DefaultInput()
	input.Values[0] = 100

	g.Expect(DefaultInput().Values).To(Equal([]int64{2, 9, 5, 7, 3}))
}
