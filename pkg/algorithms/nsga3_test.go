package algorithms_test

import (
	"testing"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
	"github.com/mihai-snyk/nsga3/pkg/benchmarks"
	"github.com/mihai-snyk/nsga3/pkg/framework"
	"github.com/mihai-snyk/nsga3/pkg/metrics"
	"github.com/mihai-snyk/nsga3/pkg/util"
)

func TestNSGAIIIWithDTLZ2(t *testing.T) {
	numObjectives := 3
	dtlz2 := benchmarks.NewDTLZ2(12, numObjectives)

	refPoints := algorithms.UniformReferencePoints(numObjectives, 12)
	config := algorithms.NSGA3Config{
		MaxGenerations:       100,
		CrossoverProbability: 1.0,
		ReferencePoints:      refPoints,
		Seed:                 42,
		KeepHistory:          true,
	}

	nsga := algorithms.NewNSGA3(config, dtlz2)
	if nsga.PopSize != 92 {
		t.Errorf("Expected population size 92 derived from 91 reference points, got %d", nsga.PopSize)
	}

	finalPop, err := nsga.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(finalPop) != nsga.PopSize {
		t.Errorf("Expected population size %d, got %d", nsga.PopSize, len(finalPop))
	}
	if len(nsga.History) != config.MaxGenerations {
		t.Errorf("Expected history for %d generations, got %d", config.MaxGenerations, len(nsga.History))
	}

	fronts := algorithms.NonDominatedSort(finalPop)
	if len(fronts) == 0 {
		t.Fatal("No fronts found in final population")
	}
	firstFront := fronts[0]
	for i := 0; i < len(firstFront); i++ {
		for j := 0; j < len(firstFront); j++ {
			if i != j && algorithms.Dominates(firstFront[i], firstFront[j]) {
				t.Error("First front contains dominated solutions")
			}
		}
	}

	front := algorithms.GetParetoFront(finalPop)
	igd := metrics.IGD(front, dtlz2.TrueParetoFront(500), false)
	t.Logf("DTLZ2 IGD after %d generations: %.6f", config.MaxGenerations, igd)
	if igd > 0.5 {
		t.Errorf("Expected IGD below 0.5 on DTLZ2, got %v", igd)
	}
}

func TestNSGAIIIWithZDT1(t *testing.T) {
	numVars := 30
	zdt1 := benchmarks.NewZDT1(numVars)

	config := algorithms.NSGA3Config{
		MaxGenerations:       100,
		CrossoverProbability: 1.0,
		MutationProbability:  1.0 / float64(numVars),
		ReferencePoints:      algorithms.UniformReferencePoints(2, 99),
		Seed:                 7,
	}

	nsga := algorithms.NewNSGA3(config, zdt1)
	if nsga.PopSize != 100 {
		t.Errorf("Expected population size 100 derived from 100 reference points, got %d", nsga.PopSize)
	}

	finalPop, err := nsga.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(finalPop) != nsga.PopSize {
		t.Errorf("Expected population size %d, got %d", nsga.PopSize, len(finalPop))
	}

	fronts := algorithms.NonDominatedSort(finalPop)
	if len(fronts) == 0 {
		t.Fatal("No fronts found in final population")
	}

	firstFront := fronts[0]
	results := make([]framework.ObjectiveSpacePoint, len(firstFront))
	for i := range firstFront {
		results[i] = firstFront[i].Value
	}
	err = util.PlotResults(results, zdt1, algorithms.Name) // Uses default location
	if err != nil {
		t.Errorf("Plot failed: %v", err)
	}

	for i := 0; i < len(firstFront); i++ {
		for j := 0; j < len(firstFront); j++ {
			if i != j && algorithms.Dominates(firstFront[i], firstFront[j]) {
				t.Error("First front contains dominated solutions")
			}
		}
	}
}

func TestNSGAIIIParallelExecution(t *testing.T) {
	dtlz2 := benchmarks.NewDTLZ2(12, 3)

	config := algorithms.NSGA3Config{
		MaxGenerations:       10,
		CrossoverProbability: 1.0,
		ReferencePoints:      algorithms.UniformReferencePoints(3, 12),
		ParallelExecution:    true,
		Seed:                 42,
	}

	nsga := algorithms.NewNSGA3(config, dtlz2)
	finalPop, err := nsga.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(finalPop) != nsga.PopSize {
		t.Errorf("Expected population size %d, got %d", nsga.PopSize, len(finalPop))
	}
	for _, sol := range finalPop {
		if len(sol.Value) != 3 {
			t.Fatalf("Expected 3 objective values per solution, got %d", len(sol.Value))
		}
	}
}
