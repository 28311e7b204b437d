package algorithms

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// NicheSelect fills the remaining survivor slots from the splitting front.
// nicheCounts holds, per reference point, the number of survivors already
// contributed by the fully accepted fronts; it is updated in place as
// candidates are chosen. The reference point with the lowest niche count is
// served first (lowest index on ties). An empty niche takes its closest
// candidate; a non-empty one takes a uniformly random candidate. A reference
// point whose candidates ran out is excluded for the rest of the pass.
func NicheSelect(splitting []*NSGA3Solution, nicheCounts []int, slots int, rng *rand.Rand) ([]*NSGA3Solution, error) {
	if slots > len(splitting) {
		return nil, fmt.Errorf("niche selection: %d slots from %d candidates: %w",
			slots, len(splitting), ErrInsufficientFront)
	}

	// Unselected splitting-front candidates per reference point, in front
	// order.
	members := make(map[int][]*NSGA3Solution)
	for _, sol := range splitting {
		members[sol.RefPoint] = append(members[sol.RefPoint], sol)
	}

	excluded := make([]bool, len(nicheCounts))
	selected := make([]*NSGA3Solution, 0, slots)

	for len(selected) < slots {
		ref := -1
		for j := range nicheCounts {
			if excluded[j] {
				continue
			}
			if ref == -1 || nicheCounts[j] < nicheCounts[ref] {
				ref = j
			}
		}
		if ref == -1 {
			// Every reference point ran out of candidates with slots still
			// open, which the front accumulation upstream rules out.
			return nil, fmt.Errorf("niche selection: no eligible reference point with %d slots left: %w",
				slots-len(selected), ErrInsufficientFront)
		}

		candidates := members[ref]
		if len(candidates) == 0 {
			excluded[ref] = true
			continue
		}

		var pick int
		if nicheCounts[ref] == 0 {
			// First member of an empty niche: the closest candidate.
			pick = 0
			for i := 1; i < len(candidates); i++ {
				if candidates[i].RefDist < candidates[pick].RefDist {
					pick = i
				}
			}
		} else {
			// Occupied niche: a uniformly random candidate.
			pick = rng.Intn(len(candidates))
		}

		selected = append(selected, candidates[pick])
		members[ref] = append(candidates[:pick], candidates[pick+1:]...)
		nicheCounts[ref]++
	}

	return selected, nil
}
