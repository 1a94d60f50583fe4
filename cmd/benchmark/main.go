package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/limaJavier/ordersearch/pkg/model"
	"github.com/rs/xid"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"
)

const (
	inputsTestDirectory         = "../../test/inputs/"
	repetitions                 = 1000
	MB                  float32 = 1024 * 1024
)

type StrategyType int

const (
	eager StrategyType = iota
	lazy
)

type ResultType int

const (
	matched ResultType = iota
	unmatched
)

var (
	strategyTypes = map[StrategyType]string{
		eager: "eager",
		lazy:  "lazy",
	}
	searchers = map[StrategyType]func(model.Expression) model.Searcher{
		eager: model.NewEagerSearcher,
		lazy:  model.NewLazySearcher,
	}
	resultTypes = map[ResultType]string{
		matched:   "matched",
		unmatched: "unmatched",
	}
	// Targets swept over the default values: the minimum, the default, the maximum and two unreachable ones
	sweepTargets = []int64{44, 45, model.DefaultTarget, 975, 1000}
)

type TestMetadata struct {
	Name   string
	Values []int64
	Target int64
}

type BenchmarkResult struct {
	RunId         string
	Strategy      StrategyType
	Test          TestMetadata
	Duration      int64 // Average duration per search in nanoseconds
	Memory        float32
	CpuPercentage float64
	Evaluated     uint64
	Matches       int
	Result        ResultType
}

func main() {
	runId := xid.New().String()
	tests := getTests(inputsTestDirectory)
	strategies := getStrategies()
	results := make([]BenchmarkResult, 0, len(tests)*len(strategies))

	for _, test := range tests {
		for _, strategy := range strategies {
			fmt.Printf("Benchmarking test \"%v\" with strategy \"%v\" and target \"%v\"\n", test.Name, strategyTypes[strategy], test.Target)

			result := measure(strategy, test)
			result.RunId = runId
			results = append(results, result)
		}
	}

	toCsv(results, "benchmark_results_"+runId+".csv")
}

// Collects every valid input file in directory plus a sweep of targets over the default values
func getTests(directory string) []TestMetadata {
	tests := make([]TestMetadata, 0)

	testFiles, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	for _, file := range testFiles {
		filename := directory + file.Name()
		input, err := model.InputFromJson(filename)
		if err != nil {
			log.Printf("skipping input file \"%v\": %v", filename, err)
			continue
		}

		tests = append(tests, TestMetadata{
			Name:   filename,
			Values: input.Values,
			Target: input.Target,
		})
	}

	for _, tuple := range lo.Zip2(lo.Times(len(sweepTargets), func(i int) string { return fmt.Sprintf("sweep-%d", i) }), sweepTargets) {
		name, target := tuple.A, tuple.B
		tests = append(tests, TestMetadata{
			Name:   name,
			Values: model.DefaultValues,
			Target: target,
		})
	}

	return tests
}

func getStrategies() []StrategyType {
	return []StrategyType{eager, lazy}
}

func measure(strategy StrategyType, test TestMetadata) BenchmarkResult {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Fatalf("cannot inspect the current process: %v", err)
	}

	searcher := searchers[strategy](model.NewPolynomialExpression())
	input := model.SearchInput{Values: test.Values, Target: test.Target}

	var matches []model.Match
	var evaluated uint64
	start := time.Now()
	for range repetitions {
		matches, evaluated, err = searcher.Search(input)
		if err != nil {
			log.Fatalf("an error occurred during the search at test \"%v\" using strategy \"%v\": %v", test.Name, strategyTypes[strategy], err)
		}
	}
	duration := time.Since(start).Nanoseconds() / repetitions

	if !searcher.Verify(matches, input) {
		log.Fatalf("verification failed at test \"%v\" using strategy \"%v\"", test.Name, strategyTypes[strategy])
	}

	cpuPercentage, err := proc.CPUPercent()
	if err != nil {
		log.Fatalf("cannot read CPU usage: %v", err)
	}
	memory, err := proc.MemoryInfo()
	if err != nil {
		log.Fatalf("cannot read memory usage: %v", err)
	}

	result := unmatched
	if len(matches) > 0 {
		result = matched
	}

	return BenchmarkResult{
		Strategy:      strategy,
		Test:          test,
		Duration:      duration,
		Memory:        float32(memory.RSS) / MB,
		CpuPercentage: cpuPercentage,
		Evaluated:     evaluated,
		Matches:       len(matches),
		Result:        result,
	}
}

func toCsv(results []BenchmarkResult, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader()); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func csvHeader() []string {
	return []string{"Run", "Strategy", "Test", "Values", "Target", "Duration(ns)", "Memory(MB)", "CPU(%)", "Evaluated", "Matches", "Result"}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.RunId,
		strategyTypes[result.Strategy],
		result.Test.Name,
		strings.Trim(model.FormatTuple(result.Test.Values), "()"),
		fmt.Sprintf("%d", result.Test.Target),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.1f", result.Memory),
		fmt.Sprintf("%.1f", result.CpuPercentage),
		fmt.Sprintf("%d", result.Evaluated),
		fmt.Sprintf("%d", result.Matches),
		resultTypes[result.Result],
	}
}
