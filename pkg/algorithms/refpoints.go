package algorithms

import (
	"gonum.org/v1/gonum/stat/combin"
)

// ReferencePoint is a direction in normalized objective space: non-negative
// components summing to 1, a point on the unit simplex. The reference set is
// built once at setup and treated as immutable by the selection pipeline.
type ReferencePoint []float64

// UniformReferencePoints generates the Das-Dennis simplex-lattice design:
// every vector of M non-negative components that are integer multiples of
// 1/divisions and sum to 1. The result has C(M+divisions-1, divisions)
// points, e.g. 91 for M=3 with 12 divisions.
func UniformReferencePoints(numObjectives, divisions int) []ReferencePoint {
	points := make([]ReferencePoint, 0, combin.Binomial(numObjectives+divisions-1, divisions))
	current := make([]float64, numObjectives)

	var build func(dim, remaining int)
	build = func(dim, remaining int) {
		if dim == numObjectives-1 {
			current[dim] = float64(remaining) / float64(divisions)
			point := make(ReferencePoint, numObjectives)
			copy(point, current)
			points = append(points, point)
			return
		}
		for i := 0; i <= remaining; i++ {
			current[dim] = float64(i) / float64(divisions)
			build(dim+1, remaining-i)
		}
	}
	build(0, divisions)

	return points
}

// TwoLayerReferencePoints combines a boundary layer with an inner layer shrunk
// halfway toward the simplex centroid. For many objectives (M >= 8) a single
// lattice dense enough to cover the simplex interior needs far too many
// points, so two sparse layers are used instead.
func TwoLayerReferencePoints(numObjectives, outerDivisions, innerDivisions int) []ReferencePoint {
	outer := UniformReferencePoints(numObjectives, outerDivisions)
	inner := UniformReferencePoints(numObjectives, innerDivisions)

	shift := 1.0 / (2.0 * float64(numObjectives))
	for _, point := range inner {
		for j := range point {
			point[j] = point[j]/2 + shift
		}
	}

	return append(outer, inner...)
}

// StandardReferencePoints returns the reference set customarily used with the
// given objective count: single-layer lattices for a few objectives,
// two-layer for many, giving 91 points for 3 objectives, 210 for 5, 156 for
// 8, 275 for 10 and 135 for 15.
func StandardReferencePoints(numObjectives int) []ReferencePoint {
	switch numObjectives {
	case 3:
		return UniformReferencePoints(3, 12)
	case 5:
		return UniformReferencePoints(5, 6)
	case 8:
		return TwoLayerReferencePoints(8, 3, 2)
	case 10:
		return TwoLayerReferencePoints(10, 3, 2)
	case 15:
		return TwoLayerReferencePoints(15, 2, 1)
	}

	// Off-table objective counts get the smallest lattice with at least 100
	// points.
	divisions := 1
	for combin.Binomial(numObjectives+divisions-1, divisions) < 100 {
		divisions++
	}
	return UniformReferencePoints(numObjectives, divisions)
}

// PopulationSizeFor returns the smallest multiple of 4 covering the given
// reference set size, the population sizing rule used with NSGA-III.
func PopulationSizeFor(numRefPoints int) int {
	size := numRefPoints
	if rem := size % 4; rem != 0 {
		size += 4 - rem
	}
	return size
}
