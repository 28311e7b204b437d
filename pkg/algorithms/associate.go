package algorithms

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Associate maps every solution in the union to its nearest reference
// direction, storing the reference point index and the perpendicular distance
// on the solution. Exact distance ties keep the lowest reference point index.
func Associate(union []*NSGA3Solution, norm *Normalizer, refPoints []ReferencePoint) {
	for _, sol := range union {
		v := norm.Normalize(sol.Value)

		best := 0
		bestDist := math.Inf(1)
		for j, ref := range refPoints {
			if d := PerpendicularDistance(v, ref); d < bestDist {
				best = j
				bestDist = d
			}
		}

		sol.RefPoint = best
		sol.RefDist = bestDist
	}
}

// PerpendicularDistance returns the distance from v to the line spanned by
// the reference direction ref through the origin.
func PerpendicularDistance(v, ref []float64) float64 {
	proj := floats.Dot(v, ref) / floats.Dot(ref, ref)

	sum := 0.0
	for i := range v {
		d := v[i] - proj*ref[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
