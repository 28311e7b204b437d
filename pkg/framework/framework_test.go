package framework_test

import (
	"testing"

	"github.com/mihai-snyk/nsga3/pkg/framework"
)

func TestRealSolutionClone(t *testing.T) {
	bounds := []framework.Bounds{{L: 0, H: 1}, {L: 0, H: 1}, {L: 0, H: 1}}
	orig := framework.NewRealSolution([]float64{0.1, 0.5, 0.9}, bounds)

	clone := orig.Clone().(*framework.RealSolution)
	if len(clone.Variables) != len(orig.Variables) {
		t.Fatalf("Expected %d variables, got %d", len(orig.Variables), len(clone.Variables))
	}
	for i := range orig.Variables {
		if clone.Variables[i] != orig.Variables[i] {
			t.Errorf("Variable %d: expected %v, got %v", i, orig.Variables[i], clone.Variables[i])
		}
	}

	// Mutating the clone must not touch the original
	clone.Variables[0] = 42.0
	if orig.Variables[0] != 0.1 {
		t.Errorf("Expected original to be unchanged, got %v", orig.Variables[0])
	}
}

func TestRealSolutionCrossoverBounds(t *testing.T) {
	bounds := []framework.Bounds{{L: 0, H: 1}, {L: -5, H: 5}, {L: 2, H: 3}}
	p1 := framework.NewRealSolution([]float64{0.2, -4.0, 2.1}, bounds)
	p2 := framework.NewRealSolution([]float64{0.9, 3.5, 2.9}, bounds)

	for trial := 0; trial < 100; trial++ {
		c1, c2 := p1.Crossover(p2, 1.0)
		for _, child := range []*framework.RealSolution{c1.(*framework.RealSolution), c2.(*framework.RealSolution)} {
			for i, v := range child.Variables {
				if v < bounds[i].L || v > bounds[i].H {
					t.Fatalf("Child variable %d out of bounds: %v not in [%v, %v]", i, v, bounds[i].L, bounds[i].H)
				}
			}
		}
	}
}

func TestRealSolutionCrossoverNoOp(t *testing.T) {
	bounds := []framework.Bounds{{L: 0, H: 1}, {L: 0, H: 1}}
	p1 := framework.NewRealSolution([]float64{0.25, 0.75}, bounds)
	p2 := framework.NewRealSolution([]float64{0.5, 0.5}, bounds)

	// With zero crossover probability the children are copies of the parents
	c1, c2 := p1.Crossover(p2, 0.0)
	r1 := c1.(*framework.RealSolution)
	r2 := c2.(*framework.RealSolution)
	for i := range p1.Variables {
		if r1.Variables[i] != p1.Variables[i] {
			t.Errorf("Expected child1[%d]=%v, got %v", i, p1.Variables[i], r1.Variables[i])
		}
		if r2.Variables[i] != p2.Variables[i] {
			t.Errorf("Expected child2[%d]=%v, got %v", i, p2.Variables[i], r2.Variables[i])
		}
	}
}

func TestRealSolutionMutateBounds(t *testing.T) {
	bounds := []framework.Bounds{{L: 0, H: 1}, {L: -1, H: 1}, {L: 10, H: 20}}

	for trial := 0; trial < 100; trial++ {
		sol := framework.NewRealSolution([]float64{0.5, 0.0, 15.0}, bounds)
		sol.Mutate(1.0)
		for i, v := range sol.Variables {
			if v < bounds[i].L || v > bounds[i].H {
				t.Fatalf("Mutated variable %d out of bounds: %v not in [%v, %v]", i, v, bounds[i].L, bounds[i].H)
			}
		}
	}
}

func TestBinarySolution(t *testing.T) {
	orig := framework.NewBinarySolution([]bool{true, false, true, false})

	clone := orig.Clone().(*framework.BinarySolution)
	clone.Bits[0] = false
	if !orig.Bits[0] {
		t.Error("Expected original bits to be unchanged after clone mutation")
	}

	// Mutation rate 1.0 flips every bit
	sol := framework.NewBinarySolution([]bool{true, false, true})
	sol.Mutate(1.0)
	expected := []bool{false, true, false}
	for i := range expected {
		if sol.Bits[i] != expected[i] {
			t.Errorf("Bit %d: expected %v, got %v", i, expected[i], sol.Bits[i])
		}
	}
}
