package benchmarks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
	"github.com/mihai-snyk/nsga3/pkg/benchmarks"
)

func TestSuiteRun(t *testing.T) {
	config := algorithms.NSGA3Config{
		MaxGenerations:       5,
		CrossoverProbability: 1.0,
		Seed:                 3,
	}
	suite := benchmarks.NewTestSuite(config)
	suite.AddProblem(benchmarks.NewZDT1(30))
	suite.AddProblem(benchmarks.NewDTLZ2(12, 3))

	outputDir := t.TempDir()
	if err := suite.Run(outputDir); err != nil {
		t.Fatalf("Expected the suite to finish, got %v", err)
	}

	// One plot per problem: a 2D scatter for ZDT1, a 3D one for DTLZ2.
	for _, name := range []string{"ZDT1_NSGA-III_results.html", "DTLZ2_NSGA-III_results.html"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Errorf("Expected plot %s to be written: %v", name, err)
		}
	}
}
