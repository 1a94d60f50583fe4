package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/limaJavier/ordersearch/pkg/model"
	"github.com/samber/lo"
)

var (
	validStrategies = []string{"eager", "lazy"}
	validFormats    = []string{"tuple", "json"}
	searchers       = map[string]func(model.Expression) model.Searcher{
		"eager": model.NewEagerSearcher,
		"lazy":  model.NewLazySearcher,
	}
)

func main() {
	// Define arguments
	strategyPtr := flag.String("strategy", "lazy", `Strategy to enumerate the orderings. Allowed values are:
- "eager" (All orderings are materialized before being evaluated) and
- "lazy" (Orderings are evaluated as they are generated), where "lazy" is the default`)
	filePathPtr := flag.String("file", "", "Path to a JSON input file with \"values\" and \"target\"; if empty, the default instance is used")
	valuesPtr := flag.String("values", "", "Comma-separated list of the five values to order; overrides the input file")
	targetPtr := flag.String("target", "", "Value the expression must equal; overrides the input file")
	formatPtr := flag.String("format", "tuple", "Output format. Allowed values are: \"tuple\" (one line per ordering) and \"json\", where \"tuple\" is the default")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	verbosePtr := flag.Bool("verbose", false, "Log search statistics into the Standard Error")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)
	format := strings.ToLower(*formatPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	} else if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid format", format)
	}

	// Extract input
	input, err := buildInput(filePath, *valuesPtr, *targetPtr)
	if err != nil {
		log.Fatalf("cannot build input: %v", err)
	}

	// Initialize engines
	searcher := searchers[strategy](model.NewPolynomialExpression())

	// Search orderings
	matches, evaluated, err := searcher.Search(input)
	if err != nil {
		log.Fatalf("an error occurred during the search: %v", err)
	}

	// Verify search correctness
	if !searcher.Verify(matches, input) {
		log.Fatal("Verification failed")
	}

	if *verbosePtr {
		log.Printf("Strategy: %v, Values: %v, Target: %v, Evaluated: %v, Matches: %v", strategy, input.Values, input.Target, evaluated, len(matches))
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	var writer io.Writer = os.Stdout
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			log.Fatalf("an error occurred while creating the output file: %v", err)
		}
		defer file.Close()
		writer = file
	}

	if err := writeMatches(writer, matches, format); err != nil {
		log.Fatalf("an error occurred while writing the output: %v", err)
	}
}

// Flags take precedence over the input file, which takes precedence over the defaults
func buildInput(filePath, valuesStr, targetStr string) (model.SearchInput, error) {
	var rawInput model.RawSearchInput
	if filePath != "" {
		input, err := model.InputFromJson(filePath)
		if err != nil {
			return model.SearchInput{}, err
		}
		rawInput = model.RawSearchInput{Values: input.Values, Target: &input.Target}
	}

	if valuesStr != "" {
		values, err := parseValues(valuesStr)
		if err != nil {
			return model.SearchInput{}, err
		}
		rawInput.Values = values
	}

	if targetStr != "" {
		target, err := strconv.ParseInt(strings.TrimSpace(targetStr), 10, 64)
		if err != nil {
			return model.SearchInput{}, fmt.Errorf("invalid target \"%v\": %w", targetStr, err)
		}
		rawInput.Target = &target
	}

	return model.ProcessRawInput(rawInput)
}

func parseValues(valuesStr string) ([]int64, error) {
	values := make([]int64, 0)
	for _, valueStr := range strings.Split(valuesStr, ",") {
		value, err := strconv.ParseInt(strings.TrimSpace(valueStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value \"%v\": %w", valueStr, err)
		}
		values = append(values, value)
	}
	return values, nil
}

func writeMatches(writer io.Writer, matches []model.Match, format string) error {
	if format == "json" {
		matchesJson, err := json.Marshal(lo.Map(matches, func(match model.Match, _ int) []int64 { return match.Values }))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(writer, string(matchesJson))
		return err
	}

	for _, match := range matches {
		if _, err := fmt.Fprintln(writer, model.FormatTuple(match.Values)); err != nil {
			return err
		}
	}
	return nil
}
