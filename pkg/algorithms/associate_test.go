package algorithms_test

import (
	"math"
	"testing"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
)

func TestPerpendicularDistance(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		ref  []float64
		want float64
	}{
		{"OnAxis", []float64{2, 0}, []float64{1, 0}, 0},
		{"UnitOffAxis", []float64{1, 1}, []float64{1, 0}, 1},
		{"ThreeFourFive", []float64{3, 4}, []float64{1, 0}, 4},
		{"OnDiagonal", []float64{2, 2}, []float64{1, 1}, 0},
		{"UnnormalizedRef", []float64{1, 1}, []float64{2, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := algorithms.PerpendicularDistance(tt.v, tt.ref)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected distance %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAssociate(t *testing.T) {
	// This union normalizes to the identity: ideal (0,0), intercepts (1,1).
	union := []*algorithms.NSGA3Solution{
		newSolution(1.0, 0.0),
		newSolution(0.0, 1.0),
		newSolution(0.8, 0.2),
		newSolution(0.5, 0.5),
	}
	refPoints := []algorithms.ReferencePoint{{1, 0}, {0, 1}}

	norm, err := algorithms.NewNormalizer(union)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	algorithms.Associate(union, norm, refPoints)

	// The last point is equidistant from both axes; the tie goes to the
	// lower index.
	wantRef := []int{0, 1, 0, 0}
	wantDist := []float64{0, 0, 0.2, 0.5}
	for i, sol := range union {
		if sol.RefPoint != wantRef[i] {
			t.Errorf("Expected solution %d associated with reference point %d, got %d", i, wantRef[i], sol.RefPoint)
		}
		if math.Abs(sol.RefDist-wantDist[i]) > 1e-9 {
			t.Errorf("Expected solution %d at distance %v, got %v", i, wantDist[i], sol.RefDist)
		}
	}
}
