package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/mihai-snyk/nsga3/pkg/framework"
)

// dtlz4Alpha is the bias exponent applied to the position variables. The
// usual setting of 100 concentrates random solutions near the f_M axis, so
// the problem tests whether an algorithm can maintain spread anyway.
const dtlz4Alpha = 100.0

// DTLZ4 is DTLZ2 with a strongly biased density of solutions along the front
type DTLZ4 struct {
	numVars       int
	numObjectives int
}

func NewDTLZ4(numVars, numObjectives int) *DTLZ4 {
	// Recommended: numVars = numObjectives + k - 1, where k = 10 for DTLZ4
	return &DTLZ4{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ4) Name() string {
	return "DTLZ4"
}

func (p *DTLZ4) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		idx := i // Capture loop variable
		funcs[i] = func(x framework.Solution) float64 {
			return p.objective(x, idx)
		}
	}
	return funcs
}

func (p *DTLZ4) g(x []float64) float64 {
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

func (p *DTLZ4) objective(sol framework.Solution, objIdx int) float64 {
	x := sol.(*framework.RealSolution).Variables
	g := p.g(x)

	f := 1 + g

	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= math.Cos(math.Pow(x[i], dtlz4Alpha) * math.Pi / 2)
	}
	if objIdx > 0 {
		f *= math.Sin(math.Pow(x[p.numObjectives-objIdx-1], dtlz4Alpha) * math.Pi / 2)
	}

	return f
}

func (p *DTLZ4) Constraints() []framework.Constraint {
	return nil
}

func (p *DTLZ4) Bounds() []framework.Bounds {
	b := make([]framework.Bounds, p.numVars)
	for i := range p.numVars {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}

func (p *DTLZ4) Initialize(popSize int) []framework.Solution {
	population := make([]framework.Solution, popSize)
	b := p.Bounds()
	for i := 0; i < popSize; i++ {
		vars := make([]float64, p.numVars)
		for j := 0; j < p.numVars; j++ {
			vars[j] = b[j].L + rand.Float64()*(b[j].H-b[j].L)
		}
		population[i] = framework.NewRealSolution(vars, b)
	}
	return population
}

func (p *DTLZ4) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// The bias changes where solutions land, not the front itself: still the
	// unit sphere
	if p.numObjectives == 2 {
		points := make([]framework.ObjectiveSpacePoint, numPoints)
		for i := 0; i < numPoints; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
			points[i] = framework.ObjectiveSpacePoint{
				math.Cos(theta),
				math.Sin(theta),
			}
		}
		return points
	}
	return sphericalParetoFront(p.numObjectives, numPoints)
}
