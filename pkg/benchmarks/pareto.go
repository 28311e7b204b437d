package benchmarks

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
	"github.com/mihai-snyk/nsga3/pkg/framework"
)

// latticeDivisions picks the smallest simplex-lattice resolution whose point
// count reaches numPoints.
func latticeDivisions(numObjectives, numPoints int) int {
	divisions := 1
	for combin.Binomial(numObjectives+divisions-1, divisions) < numPoints {
		divisions++
	}
	return divisions
}

// planarParetoFront samples the linear front sum(f) = scale of the DTLZ1
// family with the same simplex lattice the reference points come from.
func planarParetoFront(numObjectives, numPoints int, scale float64) []framework.ObjectiveSpacePoint {
	lattice := algorithms.UniformReferencePoints(numObjectives, latticeDivisions(numObjectives, numPoints))
	points := make([]framework.ObjectiveSpacePoint, len(lattice))
	for i, ref := range lattice {
		point := make(framework.ObjectiveSpacePoint, len(ref))
		for j, v := range ref {
			point[j] = v * scale
		}
		points[i] = point
	}
	return points
}

// sphericalParetoFront samples the unit-sphere front shared by DTLZ2, DTLZ3
// and DTLZ4 by projecting simplex-lattice points radially onto the sphere.
func sphericalParetoFront(numObjectives, numPoints int) []framework.ObjectiveSpacePoint {
	lattice := algorithms.UniformReferencePoints(numObjectives, latticeDivisions(numObjectives, numPoints))
	points := make([]framework.ObjectiveSpacePoint, len(lattice))
	for i, ref := range lattice {
		point := make(framework.ObjectiveSpacePoint, len(ref))
		copy(point, ref)
		// Lattice points lie on the unit simplex, so the norm is never zero.
		norm := floats.Norm(point, 2)
		for j := range point {
			point[j] /= norm
		}
		points[i] = point
	}
	return points
}
