package algorithms

import (
	"math"

	"github.com/mihai-snyk/nsga3/pkg/framework"
)

// GetParetoFront extracts the Pareto front (first non-dominated front) from a
// population. Penalized solutions carrying non-finite objectives are skipped.
func GetParetoFront(population []*NSGA3Solution) []framework.ObjectiveSpacePoint {
	if len(population) == 0 {
		return nil
	}

	fronts := NonDominatedSort(population)
	if len(fronts) == 0 || len(fronts[0]) == 0 {
		return nil
	}

	paretoFront := make([]framework.ObjectiveSpacePoint, 0, len(fronts[0]))
	for _, sol := range fronts[0] {
		finite := true
		for _, v := range sol.Value {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				finite = false
				break
			}
		}
		if !finite {
			continue
		}
		point := make(framework.ObjectiveSpacePoint, len(sol.Value))
		copy(point, sol.Value)
		paretoFront = append(paretoFront, point)
	}

	return paretoFront
}
