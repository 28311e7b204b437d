package algorithms

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/nsga3/pkg/framework"
)

const (
	// asfWeightEpsilon is the off-axis weight of the achievement scalarizing
	// function used to locate extreme points.
	asfWeightEpsilon = 1e-6

	// interceptFloor keeps normalization finite when an axis is constant
	// across the whole union (nadir equals ideal).
	interceptFloor = 1e-12
)

// Normalizer rescales objective vectors into comparable [0, ~1] units using
// the per-generation ideal point and the intercepts of the hyperplane through
// the extreme points. It is rebuilt from scratch every generation; nothing
// carries over between calls.
type Normalizer struct {
	ideal      []float64
	intercepts []float64
}

// NewNormalizer derives the normalization transform from the union of the
// accepted fronts and the splitting front.
func NewNormalizer(union []*NSGA3Solution) (*Normalizer, error) {
	if len(union) == 0 {
		return nil, fmt.Errorf("normalizer: empty population")
	}
	m := len(union[0].Value)
	for _, sol := range union {
		if len(sol.Value) != m {
			return nil, fmt.Errorf("normalizer: solution has %d objectives, want %d: %w",
				len(sol.Value), m, ErrDimensionMismatch)
		}
	}

	ideal := idealPoint(union)

	// Translate so the ideal point sits at the origin. All translated
	// components are >= 0 by construction.
	translated := make([][]float64, len(union))
	for i, sol := range union {
		t := make([]float64, m)
		for j := range t {
			t[j] = sol.Value[j] - ideal[j]
		}
		translated[i] = t
	}

	extremes := extremePoints(translated, m)
	intercepts := hyperplaneIntercepts(extremes, translated, m)

	return &Normalizer{ideal: ideal, intercepts: intercepts}, nil
}

// Normalize returns the objective vector translated by the ideal point and
// scaled by the intercepts. Components are >= 0 for any vector no better than
// the ideal; values above 1 are possible for individuals beyond the extremes.
func (n *Normalizer) Normalize(value framework.ObjectiveSpacePoint) framework.ObjectiveSpacePoint {
	normalized := make(framework.ObjectiveSpacePoint, len(value))
	for j := range value {
		normalized[j] = (value[j] - n.ideal[j]) / n.intercepts[j]
	}
	return normalized
}

// Ideal returns the componentwise minimum over the union this normalizer was
// built from.
func (n *Normalizer) Ideal() []float64 { return n.ideal }

// Intercepts returns the per-axis scaling denominators.
func (n *Normalizer) Intercepts() []float64 { return n.intercepts }

func idealPoint(union []*NSGA3Solution) []float64 {
	ideal := make([]float64, len(union[0].Value))
	copy(ideal, union[0].Value)
	for _, sol := range union[1:] {
		for j, v := range sol.Value {
			if v < ideal[j] {
				ideal[j] = v
			}
		}
	}
	return ideal
}

// extremePoints finds, per axis, the translated vector minimizing the
// achievement scalarizing function with weight 1 on that axis and a small
// epsilon elsewhere, i.e. the member lying closest to the axis. Ties keep the
// first member encountered.
func extremePoints(translated [][]float64, m int) [][]float64 {
	extremes := make([][]float64, m)
	for axis := 0; axis < m; axis++ {
		bestASF := math.Inf(1)
		for _, t := range translated {
			asf := 0.0
			for j, v := range t {
				w := asfWeightEpsilon
				if j == axis {
					w = 1.0
				}
				if s := v / w; s > asf {
					asf = s
				}
			}
			if asf < bestASF {
				bestASF = asf
				extremes[axis] = t
			}
		}
	}
	return extremes
}

// hyperplaneIntercepts solves for the axis crossings of the hyperplane through
// the M extreme points: with A holding the extreme points as rows, solve
// A*beta = 1 and take intercept_j = 1/beta_j. A singular system or any
// non-positive or non-finite intercept switches to the nadir fallback.
func hyperplaneIntercepts(extremes, translated [][]float64, m int) []float64 {
	data := make([]float64, 0, m*m)
	for _, e := range extremes {
		data = append(data, e...)
	}
	a := mat.NewDense(m, m, data)
	b := mat.NewVecDense(m, ones(m))

	var x mat.VecDense
	if err := x.SolveVec(a, b); err == nil {
		intercepts := make([]float64, m)
		valid := true
		for j := 0; j < m; j++ {
			v := 1.0 / x.AtVec(j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				valid = false
				break
			}
			intercepts[j] = v
		}
		if valid {
			return intercepts
		}
	}

	return nadirIntercepts(translated, m)
}

// nadirIntercepts is the degenerate fallback: scale by the worst translated
// value per axis, floored so a constant axis does not divide by zero.
func nadirIntercepts(translated [][]float64, m int) []float64 {
	intercepts := make([]float64, m)
	for _, t := range translated {
		for j, v := range t {
			if v > intercepts[j] {
				intercepts[j] = v
			}
		}
	}
	for j := range intercepts {
		if intercepts[j] < interceptFloor {
			intercepts[j] = interceptFloor
		}
	}
	return intercepts
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}
	return v
}
