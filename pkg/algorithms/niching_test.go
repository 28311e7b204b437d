package algorithms_test

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/nsga3/pkg/algorithms"
)

// associated builds a splitting-front member with its association already
// filled in, the state NicheSelect expects.
func associated(refPoint int, refDist float64) *algorithms.NSGA3Solution {
	sol := newSolution(refDist, refDist)
	sol.RefPoint = refPoint
	sol.RefDist = refDist
	return sol
}

func TestNicheSelectPrefersClosestForEmptyNiche(t *testing.T) {
	far := associated(0, 0.4)
	near := associated(0, 0.1)
	splitting := []*algorithms.NSGA3Solution{far, near}
	counts := []int{0, 3}

	chosen, err := algorithms.NicheSelect(splitting, counts, 1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(chosen) != 1 || chosen[0] != near {
		t.Errorf("Expected the closest candidate of the empty niche, got %+v", chosen)
	}
	if counts[0] != 1 {
		t.Errorf("Expected niche count 1 after selection, got %d", counts[0])
	}
}

func TestNicheSelectSkipsExhaustedNiches(t *testing.T) {
	// The emptiest niche has no candidates left, so it gets excluded and the
	// crowded niche serves the slot instead.
	only := associated(1, 0.2)
	splitting := []*algorithms.NSGA3Solution{only}
	counts := []int{0, 5}

	chosen, err := algorithms.NicheSelect(splitting, counts, 1, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(chosen) != 1 || chosen[0] != only {
		t.Errorf("Expected the crowded niche's candidate, got %+v", chosen)
	}
}

func TestNicheSelectRoundRobin(t *testing.T) {
	// Ten niches with two candidates each and ten open slots: every niche
	// must contribute exactly its closest candidate.
	const numRefs = 10
	splitting := make([]*algorithms.NSGA3Solution, 0, 2*numRefs)
	for ref := 0; ref < numRefs; ref++ {
		splitting = append(splitting, associated(ref, 0.2), associated(ref, 0.1))
	}

	counts := make([]int, numRefs)
	chosen, err := algorithms.NicheSelect(splitting, counts, numRefs, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(chosen) != numRefs {
		t.Fatalf("Expected %d survivors, got %d", numRefs, len(chosen))
	}

	perNiche := make([]int, numRefs)
	for _, sol := range chosen {
		perNiche[sol.RefPoint]++
		if sol.RefDist != 0.1 {
			t.Errorf("Expected the closest candidate for niche %d, got distance %v", sol.RefPoint, sol.RefDist)
		}
	}
	for ref, got := range perNiche {
		if got != 1 {
			t.Errorf("Expected exactly one survivor from niche %d, got %d", ref, got)
		}
	}
}

func TestNicheSelectFairSpread(t *testing.T) {
	// Four niches with five candidates each and ten slots: since the least
	// crowded niche is always served first, every niche ends up with two or
	// three survivors.
	const numRefs = 4
	splitting := make([]*algorithms.NSGA3Solution, 0, 5*numRefs)
	for ref := 0; ref < numRefs; ref++ {
		for k := 0; k < 5; k++ {
			splitting = append(splitting, associated(ref, 0.1+0.1*float64(k)))
		}
	}

	counts := make([]int, numRefs)
	chosen, err := algorithms.NicheSelect(splitting, counts, 10, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	perNiche := make([]int, numRefs)
	for _, sol := range chosen {
		perNiche[sol.RefPoint]++
	}
	for ref, got := range perNiche {
		if got < 2 || got > 3 {
			t.Errorf("Expected niche %d to receive 2 or 3 survivors, got %d", ref, got)
		}
	}
}

func TestNicheSelectInsufficientFront(t *testing.T) {
	splitting := []*algorithms.NSGA3Solution{associated(0, 0.1)}

	_, err := algorithms.NicheSelect(splitting, []int{0}, 2, rand.New(rand.NewSource(2)))
	if !errors.Is(err, algorithms.ErrInsufficientFront) {
		t.Errorf("Expected ErrInsufficientFront, got %v", err)
	}
}
