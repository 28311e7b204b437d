// Package experiments runs the NSGA-III benchmark grid: each configured DTLZ
// problem at each objective count, several seeded runs per cell, and IGD of
// every final front against the analytic Pareto front.
package experiments

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
	"github.com/mihai-snyk/nsga3/pkg/benchmarks"
	"github.com/mihai-snyk/nsga3/pkg/framework"
	"github.com/mihai-snyk/nsga3/pkg/metrics"
	"github.com/mihai-snyk/nsga3/pkg/util"
)

// trueFrontSamples is how many points of the analytic Pareto front IGD is
// measured against.
const trueFrontSamples = 500

// generationTable holds the generation budget for each problem and objective
// count, following the NSGA-III paper. Harder problems get more generations.
var generationTable = map[string]map[int]int{
	"DTLZ1": {3: 400, 5: 600, 8: 750, 10: 1000, 15: 1500},
	"DTLZ2": {3: 250, 5: 350, 8: 500, 10: 750, 15: 1000},
	"DTLZ3": {3: 1000, 5: 1000, 8: 1000, 10: 1500, 15: 2000},
	"DTLZ4": {3: 600, 5: 1000, 8: 1250, 10: 2000, 15: 3000},
}

// newProblem builds the named benchmark with its customary variable count,
// numVars = numObjectives + k - 1 with k=5 for DTLZ1 and k=10 for the rest.
func newProblem(name string, numObjectives int) (framework.Problem, error) {
	switch name {
	case "DTLZ1":
		return benchmarks.NewDTLZ1(numObjectives+4, numObjectives), nil
	case "DTLZ2":
		return benchmarks.NewDTLZ2(numObjectives+9, numObjectives), nil
	case "DTLZ3":
		return benchmarks.NewDTLZ3(numObjectives+9, numObjectives), nil
	case "DTLZ4":
		return benchmarks.NewDTLZ4(numObjectives+9, numObjectives), nil
	}
	return nil, fmt.Errorf("unknown problem %q", name)
}

// Runner executes an experiment grid.
type Runner struct {
	config Config
}

func NewRunner(config Config) *Runner {
	return &Runner{config: config}
}

// Run executes every cell of the configured grid and returns the collected
// per-run and per-cell results.
func (r *Runner) Run() (*Results, error) {
	if err := r.config.Validate(); err != nil {
		return nil, err
	}
	if r.config.Plots {
		if err := os.MkdirAll(r.config.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	baseSeed := r.config.Seed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}

	results := &Results{
		ID:        uuid.NewString(),
		Config:    r.config,
		StartedAt: time.Now().UTC(),
	}
	klog.InfoS("Starting experiments", "id", results.ID,
		"problems", r.config.Problems, "objectives", r.config.Objectives,
		"runs", r.config.Runs, "baseSeed", baseSeed)

	for _, name := range r.config.Problems {
		for _, numObjectives := range r.config.Objectives {
			cell, err := r.runCell(results, name, numObjectives, baseSeed)
			if err != nil {
				return nil, err
			}
			results.Cells = append(results.Cells, cell)
			baseSeed += uint64(r.config.Runs)
		}
	}

	results.FinishedAt = time.Now().UTC()
	klog.InfoS("Experiments finished", "id", results.ID,
		"cells", len(results.Cells), "elapsed", results.FinishedAt.Sub(results.StartedAt))
	return results, nil
}

// runCell performs all runs of one problem/objective combination and
// summarizes the IGD statistics.
func (r *Runner) runCell(results *Results, name string, numObjectives int, baseSeed uint64) (CellSummary, error) {
	problem, err := newProblem(name, numObjectives)
	if err != nil {
		return CellSummary{}, err
	}

	refPoints := algorithms.StandardReferencePoints(numObjectives)
	popSize := algorithms.PopulationSizeFor(len(refPoints))
	generations := generationTable[name][numObjectives]
	trueFront := problem.TrueParetoFront(trueFrontSamples)

	klog.InfoS("Running cell", "problem", name, "objectives", numObjectives,
		"generations", generations, "population", popSize,
		"referencePoints", len(refPoints), "runs", r.config.Runs)

	igds := make([]float64, 0, r.config.Runs)
	for run := 0; run < r.config.Runs; run++ {
		seed := baseSeed + uint64(run)
		config := algorithms.NSGA3Config{
			PopulationSize:       popSize,
			MaxGenerations:       generations,
			CrossoverProbability: 1.0,
			ReferencePoints:      refPoints,
			ParallelExecution:    r.config.Parallel,
			Seed:                 seed,
		}

		start := time.Now()
		finalPop, err := algorithms.NewNSGA3(config, problem).Run()
		if err != nil {
			return CellSummary{}, fmt.Errorf("%s with %d objectives, run %d: %w", name, numObjectives, run, err)
		}
		front := algorithms.GetParetoFront(finalPop)
		igd := metrics.IGD(front, trueFront, true)
		igds = append(igds, igd)

		results.Runs = append(results.Runs, RunResult{
			Problem:        name,
			Objectives:     numObjectives,
			Run:            run,
			Seed:           seed,
			IGD:            igd,
			FrontSize:      len(front),
			ElapsedSeconds: time.Since(start).Seconds(),
		})
		klog.InfoS("Run finished", "problem", name, "objectives", numObjectives,
			"run", run, "igd", igd, "frontSize", len(front), "elapsed", time.Since(start))

		if r.config.Plots && numObjectives == 3 && run == 0 {
			plotPath := filepath.Join(r.config.OutputDir, fmt.Sprintf("%s_m3_run0.html", name))
			if err := util.PlotResults3D(front, problem, algorithms.Name, plotPath); err != nil {
				klog.ErrorS(err, "Plotting failed", "problem", name)
			}
		}
	}

	sort.Float64s(igds)
	return CellSummary{
		Problem:         name,
		Objectives:      numObjectives,
		Generations:     generations,
		PopulationSize:  popSize,
		ReferencePoints: len(refPoints),
		Runs:            r.config.Runs,
		BestIGD:         igds[0],
		MedianIGD:       stat.Quantile(0.5, stat.Empirical, igds, nil),
		WorstIGD:        igds[len(igds)-1],
	}, nil
}
