package algorithms_test

import (
	"math"
	"testing"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
)

func TestUniformReferencePoints(t *testing.T) {
	tests := []struct {
		name          string
		numObjectives int
		divisions     int
		want          int
	}{
		{"TwoObjectives", 2, 4, 5},
		{"ThreeObjectives", 3, 12, 91},
		{"FiveObjectives", 5, 6, 210},
		{"SingleDivision", 3, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := algorithms.UniformReferencePoints(tt.numObjectives, tt.divisions)
			if len(points) != tt.want {
				t.Errorf("Expected %d reference points, got %d", tt.want, len(points))
			}
			assertOnSimplex(t, points)
		})
	}
}

func TestTwoLayerReferencePoints(t *testing.T) {
	tests := []struct {
		name          string
		numObjectives int
		outer         int
		inner         int
		want          int
	}{
		{"EightObjectives", 8, 3, 2, 156},
		{"TenObjectives", 10, 3, 2, 275},
		{"FifteenObjectives", 15, 2, 1, 135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := algorithms.TwoLayerReferencePoints(tt.numObjectives, tt.outer, tt.inner)
			if len(points) != tt.want {
				t.Errorf("Expected %d reference points, got %d", tt.want, len(points))
			}
			assertOnSimplex(t, points)
		})
	}
}

func TestStandardReferencePoints(t *testing.T) {
	tests := []struct {
		numObjectives int
		want          int
	}{
		{3, 91},
		{5, 210},
		{8, 156},
		{10, 275},
		{15, 135},
	}

	for _, tt := range tests {
		points := algorithms.StandardReferencePoints(tt.numObjectives)
		if len(points) != tt.want {
			t.Errorf("Expected %d reference points for %d objectives, got %d", tt.want, tt.numObjectives, len(points))
		}
	}
}

func TestPopulationSizeFor(t *testing.T) {
	tests := []struct {
		refPoints int
		want      int
	}{
		{91, 92},
		{210, 212},
		{156, 156},
		{275, 276},
		{135, 136},
		{1, 4},
	}

	for _, tt := range tests {
		if got := algorithms.PopulationSizeFor(tt.refPoints); got != tt.want {
			t.Errorf("Expected population size %d for %d reference points, got %d", tt.want, tt.refPoints, got)
		}
	}
}

// assertOnSimplex checks that every point has non-negative components summing
// to one.
func assertOnSimplex(t *testing.T, points []algorithms.ReferencePoint) {
	t.Helper()
	for i, point := range points {
		sum := 0.0
		for _, c := range point {
			if c < 0 {
				t.Errorf("Point %d has negative component %v", i, c)
			}
			sum += c
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("Expected components of point %d to sum to 1, got %v", i, sum)
		}
	}
}
