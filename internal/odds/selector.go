package odds

import (
	"math/rand"

	"github.com/notnil/chess"
)

// Candidate is a removable square together with its positionally weighted
// material value.
type Candidate struct {
	Square chess.Square
	Value  float64
}

// fillBias is the initial running sum of the greedy fill. Starting below zero
// lets a selection land up to this much under the budget without forcing one
// more removal, which softens the quantization error of discrete piece
// values. Calibration constant; do not re-derive.
const fillBias = -0.35

// SelectRemovals spends the handicap budget on a subset of the candidates
// using a single-pass randomized greedy fill.
//
// The candidate order is shuffled uniformly, then each candidate is taken iff
// taking it keeps the running sum below the budget; after every candidate,
// taken or not, the scan stops once the sum has reached the budget. A
// candidate that would overshoot is skipped for good. There is no
// backtracking and no attempt at an optimal subset sum; the simple fill rule
// is part of the calibrated behavior.
func SelectRemovals(budget float64, candidates []Candidate, rng *rand.Rand) []chess.Square {
	shuffled := make([]Candidate, len(candidates))
	copy(shuffled, candidates)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	removed := make([]chess.Square, 0, len(shuffled))
	sum := fillBias
	for _, c := range shuffled {
		if sum+c.Value < budget {
			removed = append(removed, c.Square)
			sum += c.Value
		}
		if sum >= budget {
			break
		}
	}
	return removed
}
