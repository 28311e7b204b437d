package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/mihai-snyk/nsga3/pkg/framework"
)

// DTLZ3 combines DTLZ2's spherical front with DTLZ1's multimodal g function,
// which introduces a large number of local fronts parallel to the global one
type DTLZ3 struct {
	numVars       int
	numObjectives int
}

func NewDTLZ3(numVars, numObjectives int) *DTLZ3 {
	// Recommended: numVars = numObjectives + k - 1, where k = 10 for DTLZ3
	return &DTLZ3{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ3) Name() string {
	return "DTLZ3"
}

func (p *DTLZ3) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		idx := i // Capture loop variable
		funcs[i] = func(x framework.Solution) float64 {
			return p.objective(x, idx)
		}
	}
	return funcs
}

func (p *DTLZ3) g(x []float64) float64 {
	k := p.numVars - p.numObjectives + 1
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
	}
	return 100 * (float64(k) + sum)
}

func (p *DTLZ3) objective(sol framework.Solution, objIdx int) float64 {
	x := sol.(*framework.RealSolution).Variables
	g := p.g(x)

	f := 1 + g

	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= math.Cos(x[i] * math.Pi / 2)
	}
	if objIdx > 0 {
		f *= math.Sin(x[p.numObjectives-objIdx-1] * math.Pi / 2)
	}

	return f
}

func (p *DTLZ3) Constraints() []framework.Constraint {
	return nil
}

func (p *DTLZ3) Bounds() []framework.Bounds {
	b := make([]framework.Bounds, p.numVars)
	for i := range p.numVars {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}

func (p *DTLZ3) Initialize(popSize int) []framework.Solution {
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

func (p *DTLZ3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// Same front as DTLZ2: the unit sphere, reached when g = 0
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
