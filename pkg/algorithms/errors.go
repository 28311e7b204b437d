package algorithms

import "errors"

var (
	// ErrDimensionMismatch reports an objective vector or reference point whose
	// dimensionality differs from the rest of the input. Selection cannot
	// proceed on mixed dimensions.
	ErrDimensionMismatch = errors.New("objective dimension mismatch")

	// ErrInsufficientFront reports a splitting front with fewer unselected
	// candidates than remaining survivor slots. By construction the splitting
	// front always overshoots the target, so hitting this means the fronts
	// were miscomputed.
	ErrInsufficientFront = errors.New("splitting front smaller than remaining slots")
)
