package algorithms

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// EnvironmentalSelection picks exactly targetSize survivors from the combined
// parent+offspring pool. Whole fronts are accepted in rank order while they
// fit; the first front that would overshoot is only partially accepted, with
// its members chosen by reference-point niching over objectives normalized
// against the accepted fronts plus that splitting front. rng drives the
// random candidate picks in niching and must not be nil; a seeded source
// makes the whole selection deterministic. The order of the returned slice is
// unspecified.
func EnvironmentalSelection(pool []*NSGA3Solution, refPoints []ReferencePoint, targetSize int, rng *rand.Rand) ([]*NSGA3Solution, error) {
	if err := validateDimensions(pool, refPoints); err != nil {
		return nil, err
	}
	if len(pool) < targetSize {
		return nil, fmt.Errorf("environmental selection: pool of %d cannot fill %d slots", len(pool), targetSize)
	}

	fronts := NonDominatedSort(pool)

	accepted := make([]*NSGA3Solution, 0, targetSize)
	frontIndex := 0
	for frontIndex < len(fronts) && len(accepted)+len(fronts[frontIndex]) <= targetSize {
		accepted = append(accepted, fronts[frontIndex]...)
		frontIndex++
	}
	if len(accepted) == targetSize {
		return accepted, nil
	}

	// Normalization and association run over the accepted fronts plus the
	// splitting front, nothing else.
	splitting := fronts[frontIndex]
	union := make([]*NSGA3Solution, 0, len(accepted)+len(splitting))
	union = append(union, accepted...)
	union = append(union, splitting...)

	norm, err := NewNormalizer(union)
	if err != nil {
		return nil, err
	}
	Associate(union, norm, refPoints)

	// Niche counts are seeded by the accepted fronts only.
	nicheCounts := make([]int, len(refPoints))
	for _, sol := range accepted {
		nicheCounts[sol.RefPoint]++
	}

	chosen, err := NicheSelect(splitting, nicheCounts, targetSize-len(accepted), rng)
	if err != nil {
		return nil, err
	}

	return append(accepted, chosen...), nil
}

func validateDimensions(pool []*NSGA3Solution, refPoints []ReferencePoint) error {
	if len(pool) == 0 {
		return fmt.Errorf("environmental selection: empty pool")
	}
	m := len(pool[0].Value)
	for i, sol := range pool {
		if len(sol.Value) != m {
			return fmt.Errorf("environmental selection: solution %d has %d objectives, want %d: %w",
				i, len(sol.Value), m, ErrDimensionMismatch)
		}
	}
	for i, ref := range refPoints {
		if len(ref) != m {
			return fmt.Errorf("environmental selection: reference point %d has %d components, want %d: %w",
				i, len(ref), m, ErrDimensionMismatch)
		}
	}
	return nil
}
