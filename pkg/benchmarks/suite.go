package benchmarks

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
	"github.com/mihai-snyk/nsga3/pkg/framework"
	"github.com/mihai-snyk/nsga3/pkg/metrics"
	"github.com/mihai-snyk/nsga3/pkg/util"
)

// TestSuite runs a set of benchmark problems
type TestSuite struct {
	problems []framework.Problem
	config   algorithms.NSGA3Config
}

// NewTestSuite creates a new benchmark test suite. The config's reference
// points and population size are rebuilt per problem to match each problem's
// objective count.
func NewTestSuite(config algorithms.NSGA3Config) *TestSuite {
	return &TestSuite{
		config: config,
	}
}

// AddProblem adds a problem to the test suite
func (ts *TestSuite) AddProblem(p framework.Problem) {
	ts.problems = append(ts.problems, p)
}

// AddStandardProblems adds common benchmark problems
func (ts *TestSuite) AddStandardProblems() {
	// ZDT problems with 30 variables (standard)
	ts.AddProblem(NewZDT1(30))
	ts.AddProblem(NewZDT2(30))
	ts.AddProblem(NewZDT3(30))

	// DTLZ problems with 3 objectives and numVars = M + k - 1
	// (k=5 for DTLZ1, k=10 for the rest)
	ts.AddProblem(NewDTLZ1(7, 3))
	ts.AddProblem(NewDTLZ2(12, 3))
	ts.AddProblem(NewDTLZ3(12, 3))
	ts.AddProblem(NewDTLZ4(12, 3))
}

// Run executes the test suite
func (ts *TestSuite) Run(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, problem := range ts.problems {
		log.Printf("Running NSGA-III on %s...", problem.Name())

		numObjectives := len(problem.ObjectiveFuncs())
		config := ts.config
		config.ReferencePoints = algorithms.StandardReferencePoints(numObjectives)
		config.PopulationSize = 0 // derive from the reference set

		nsga3 := algorithms.NewNSGA3(config, problem)
		finalPop, err := nsga3.Run()
		if err != nil {
			return fmt.Errorf("%s: %w", problem.Name(), err)
		}

		// Extract Pareto front
		paretoFront := algorithms.GetParetoFront(finalPop)

		outputFile := filepath.Join(outputDir, fmt.Sprintf("%s_NSGA-III_results", problem.Name()))

		switch numObjectives {
		case 2:
			if err := util.PlotResults(paretoFront, problem, nsga3.Name(), outputFile+".html"); err != nil {
				log.Printf("Failed to plot results for %s: %v", problem.Name(), err)
			}
		case 3:
			if err := util.PlotResults3D(paretoFront, problem, nsga3.Name(), outputFile+".html"); err != nil {
				log.Printf("Failed to plot results for %s: %v", problem.Name(), err)
			}
		}

		// Calculate metrics if true front is available
		trueFront := problem.TrueParetoFront(500)
		if trueFront != nil {
			igd := metrics.IGD(paretoFront, trueFront, false)
			log.Printf("%s - IGD: %.6f", problem.Name(), igd)
		}
	}

	return nil
}
