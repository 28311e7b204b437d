package framework

import (
	"math"
	"math/rand/v2"
)

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	ObjectiveFuncs() []ObjectiveFunc
	Constraints() []Constraint
	Bounds() []Bounds
	Initialize(int) []Solution

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

type Solution interface {
	Clone() Solution
	Crossover(Solution, float64) (Solution, Solution)
	Mutate(float64)
}

// Algorithm describes the contract that a MOO algorithm needs to implement.
// TODO: add a Run method so suites can accept any algorithm, not just NSGA-III
type Algorithm interface {
	Name() string
}

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func(Solution) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Constraint returns true if the constraint is satisfied and false otherwise.
type Constraint func(Solution) bool

// Distribution indices for the real-coded variation operators. These are the
// standard settings for continuous benchmark problems (eta_c=30, eta_m=20).
const (
	etaCrossover = 30.0
	etaMutation  = 20.0
)

// BinarySolution uses a binary encoding scheme, where each bit
// or group of bits can have a meaning in the context of the problem.
type BinarySolution struct {
	Bits []bool
}

func NewBinarySolution(bits []bool) *BinarySolution {
	return &BinarySolution{
		Bits: bits,
	}
}

func (sol *BinarySolution) Clone() Solution {
	newBits := make([]bool, len(sol.Bits))
	copy(newBits, sol.Bits)
	return &BinarySolution{
		Bits: newBits,
	}
}

// Crossover implements Solution interface using single-point crossover
func (s *BinarySolution) Crossover(other Solution, crossoverRate float64) (Solution, Solution) {
	o := other.(*BinarySolution)
	child1 := s.Clone().(*BinarySolution)
	child2 := o.Clone().(*BinarySolution)

	if rand.Float64() < crossoverRate { // crossover probability
		// Single point crossover
		point := rand.IntN(len(s.Bits))
		for i := point; i < len(s.Bits); i++ {
			child1.Bits[i], child2.Bits[i] = child2.Bits[i], child1.Bits[i]
		}
	}

	return child1, child2
}

// Mutate implements Solution interface using bit-flip mutation
func (s *BinarySolution) Mutate(mutationRate float64) {
	for i := range s.Bits {
		if rand.Float64() < mutationRate {
			s.Bits[i] = !s.Bits[i]
		}
	}
}

// RealSolution represents a solution with real-valued variables.
type RealSolution struct {
	Variables []float64
	Bounds    []Bounds
}

type Bounds struct {
	L float64
	H float64
}

func NewRealSolution(vars []float64, b []Bounds) *RealSolution {
	return &RealSolution{
		Variables: vars,
		Bounds:    b,
	}
}

func (sol *RealSolution) Clone() Solution {
	newVars := make([]float64, len(sol.Variables))
	copy(newVars, sol.Variables)
	return &RealSolution{
		Variables: newVars,
		Bounds:    sol.Bounds,
	}
}

// Crossover performs SBX (Simulated Binary Crossover)
func (sol *RealSolution) Crossover(other Solution, crossoverRate float64) (Solution, Solution) {
	o := other.(*RealSolution)
	child1 := sol.Clone().(*RealSolution)
	child2 := other.Clone().(*RealSolution)

	if rand.Float64() < crossoverRate {
		for i := range sol.Variables {
			beta := 0.0
			if rand.Float64() <= 0.5 {
				beta = math.Pow(2*rand.Float64(), 1.0/(etaCrossover+1))
			} else {
				beta = math.Pow(1.0/(2*(1.0-rand.Float64())), 1.0/(etaCrossover+1))
			}

			child1.Variables[i] = 0.5 * ((1+beta)*sol.Variables[i] + (1-beta)*o.Variables[i])
			child2.Variables[i] = 0.5 * ((1-beta)*sol.Variables[i] + (1+beta)*o.Variables[i])

			// Bound checking
			child1.Variables[i] = math.Max(sol.Bounds[i].L, math.Min(sol.Bounds[i].H, child1.Variables[i]))
			child2.Variables[i] = math.Max(sol.Bounds[i].L, math.Min(sol.Bounds[i].H, child2.Variables[i]))
		}
	}

	return child1, child2
}

// Mutate performs polynomial mutation
func (sol *RealSolution) Mutate(mutationRate float64) {
	for i := range sol.Variables {
		if rand.Float64() < mutationRate {
			delta := 0.0
			if rand.Float64() <= 0.5 {
				delta = math.Pow(2*rand.Float64(), 1.0/(etaMutation+1)) - 1
			} else {
				delta = 1 - math.Pow(2*(1-rand.Float64()), 1.0/(etaMutation+1))
			}

			sol.Variables[i] += delta * (sol.Bounds[i].H - sol.Bounds[i].L)
			sol.Variables[i] = math.Max(sol.Bounds[i].L, math.Min(sol.Bounds[i].H, sol.Variables[i]))
		}
	}
}
