// Package metrics provides quality indicators for comparing obtained Pareto
// fronts against reference fronts.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/nsga3/pkg/framework"
)

// IGD computes the inverted generational distance: the mean over the
// reference front of the distance to the nearest obtained point. Lower is
// better; zero means the reference front is fully covered. With normalize
// set, both fronts are first scaled by the reference front's per-axis range,
// which makes values comparable across problems and objective counts.
func IGD(obtained, reference []framework.ObjectiveSpacePoint, normalize bool) float64 {
	if len(obtained) == 0 || len(reference) == 0 {
		return math.NaN()
	}

	if normalize {
		lo, hi := axisRanges(reference)
		obtained = rescale(obtained, lo, hi)
		reference = rescale(reference, lo, hi)
	}

	total := 0.0
	for _, ref := range reference {
		minDist := math.Inf(1)
		for _, point := range obtained {
			if d := floats.Distance(ref, point, 2); d < minDist {
				minDist = d
			}
		}
		total += minDist
	}
	return total / float64(len(reference))
}

func axisRanges(points []framework.ObjectiveSpacePoint) (lo, hi []float64) {
	m := len(points[0])
	lo = make([]float64, m)
	hi = make([]float64, m)
	copy(lo, points[0])
	copy(hi, points[0])
	for _, p := range points[1:] {
		for j, v := range p {
			if v < lo[j] {
				lo[j] = v
			}
			if v > hi[j] {
				hi[j] = v
			}
		}
	}
	return lo, hi
}

func rescale(points []framework.ObjectiveSpacePoint, lo, hi []float64) []framework.ObjectiveSpacePoint {
	scaled := make([]framework.ObjectiveSpacePoint, len(points))
	for i, p := range points {
		s := make(framework.ObjectiveSpacePoint, len(p))
		for j, v := range p {
			r := hi[j] - lo[j]
			if r == 0 {
				r = 1
			}
			s[j] = (v - lo[j]) / r
		}
		scaled[i] = s
	}
	return scaled
}
