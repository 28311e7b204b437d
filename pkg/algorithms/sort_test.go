package algorithms_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
	"github.com/mihai-snyk/nsga3/pkg/framework"
)

// newSolution builds a population member with the given objective values.
// The selection pipeline never looks at the decision variables, so tests can
// leave the underlying solution nil.
func newSolution(objectives ...float64) *algorithms.NSGA3Solution {
	return algorithms.NewNSGA3Solution(nil, framework.ObjectiveSpacePoint(objectives))
}

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want bool
	}{
		{"StrictlyBetterInAll", []float64{1, 1}, []float64{2, 2}, true},
		{"BetterInOneEqualElsewhere", []float64{1, 2}, []float64{2, 2}, true},
		{"Equal", []float64{1, 1}, []float64{1, 1}, false},
		{"Incomparable", []float64{1, 2}, []float64{2, 1}, false},
		{"WorseInAll", []float64{3, 3}, []float64{2, 2}, false},
		{"ThreeObjectives", []float64{1, 2, 3}, []float64{1, 2, 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newSolution(tt.a...)
			b := newSolution(tt.b...)
			if got := algorithms.Dominates(a, b); got != tt.want {
				t.Errorf("Expected Dominates(%v, %v) = %v, got %v", tt.a, tt.b, tt.want, got)
			}
		})
	}
}

func TestNonDominatedSort(t *testing.T) {
	// Four layered fronts: {A, B} incomparable, then {C, D}, then E which C
	// dominates, then F which everyone dominates.
	population := []*algorithms.NSGA3Solution{
		newSolution(1.0, 4.0),
		newSolution(4.0, 1.0),
		newSolution(2.0, 5.0),
		newSolution(5.0, 2.0),
		newSolution(3.0, 6.0),
		newSolution(6.0, 6.0),
	}

	fronts := algorithms.NonDominatedSort(population)

	wantSizes := []int{2, 2, 1, 1}
	if len(fronts) != len(wantSizes) {
		t.Fatalf("Expected %d fronts, got %d", len(wantSizes), len(fronts))
	}
	for i, front := range fronts {
		if len(front) != wantSizes[i] {
			t.Errorf("Expected front %d to have %d members, got %d", i, wantSizes[i], len(front))
		}
		for _, sol := range front {
			if sol.Rank != i {
				t.Errorf("Expected rank %d for a member of front %d, got %d", i, i, sol.Rank)
			}
		}
	}
}

func TestNonDominatedSortPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	population := make([]*algorithms.NSGA3Solution, 40)
	for i := range population {
		population[i] = newSolution(rng.Float64(), rng.Float64(), rng.Float64())
	}

	fronts := algorithms.NonDominatedSort(population)

	total := 0
	seen := make(map[*algorithms.NSGA3Solution]bool)
	for _, front := range fronts {
		total += len(front)
		for _, sol := range front {
			if seen[sol] {
				t.Errorf("Solution %v appears in more than one front", sol.Value)
			}
			seen[sol] = true
		}
	}
	if total != len(population) {
		t.Errorf("Expected the fronts to partition all %d solutions, got %d", len(population), total)
	}

	for i, front := range fronts {
		for _, a := range front {
			for _, b := range front {
				if algorithms.Dominates(a, b) {
					t.Errorf("Front %d contains a dominated member", i)
				}
			}
		}
	}

	// Every member of a later front must be dominated by someone in the
	// previous front, otherwise it would have been placed earlier.
	for i := 1; i < len(fronts); i++ {
		for _, sol := range fronts[i] {
			dominated := false
			for _, prev := range fronts[i-1] {
				if algorithms.Dominates(prev, sol) {
					dominated = true
					break
				}
			}
			if !dominated {
				t.Errorf("Front %d member %v is not dominated by any member of front %d", i, sol.Value, i-1)
			}
		}
	}
}
