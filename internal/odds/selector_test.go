package odds

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateValueSum(candidates []Candidate) float64 {
	sum := 0.0
	for _, c := range candidates {
		sum += c.Value
	}
	return sum
}

func TestSelectRemovalsZeroBudget(t *testing.T) {
	removed := SelectRemovals(0, RemovalCandidates(chess.White), newRng(3))
	assert.Empty(t, removed, "a zero budget must not remove anything")
}

func TestSelectRemovalsExhaustsCandidates(t *testing.T) {
	candidates := RemovalCandidates(chess.White)
	budget := candidateValueSum(candidates) + 10

	removed := SelectRemovals(budget, candidates, newRng(3))
	assert.Len(t, removed, 15, "a budget above the total value must remove every candidate")
}

func TestSelectRemovalsDeterministicWithSeed(t *testing.T) {
	candidates := RemovalCandidates(chess.Black)

	first := SelectRemovals(6.5, candidates, newRng(42))
	second := SelectRemovals(6.5, candidates, newRng(42))
	assert.Equal(t, first, second)
}

func TestSelectRemovalsVariesAcrossSeeds(t *testing.T) {
	candidates := RemovalCandidates(chess.White)

	seen := make(map[string]bool)
	for seed := int64(0); seed < 20; seed++ {
		removed := SelectRemovals(6.5, candidates, newRng(seed))
		key := ""
		for _, sq := range removed {
			key += sq.String() + ","
		}
		seen[key] = true
	}
	assert.Greater(t, len(seen), 1, "different seeds should produce different removal sets")
}

// Overshooting candidates are skipped permanently; the scan never backtracks
// to find a closer-fitting subset.
func TestSelectRemovalsSkipsOvershoot(t *testing.T) {
	candidates := []Candidate{
		{Square: chess.A2, Value: 1},
		{Square: chess.B2, Value: 1},
		{Square: chess.C2, Value: 1},
	}

	// -0.35 + 1 = 0.65 < 1.5 takes the first; any further unit overshoots.
	removed := SelectRemovals(1.5, candidates, newRng(5))
	assert.Len(t, removed, 1)
}

// The fill bias lets a single candidate land slightly under budget without
// triggering another removal.
func TestSelectRemovalsFillBias(t *testing.T) {
	single := []Candidate{{Square: chess.E2, Value: 1.2}}

	removed := SelectRemovals(1.0, single, newRng(5))
	require.Len(t, removed, 1, "-0.35 + 1.2 = 0.85 < 1.0, so the pawn is taken")

	large := []Candidate{{Square: chess.E2, Value: 1.4}}
	removed = SelectRemovals(1.0, large, newRng(5))
	assert.Empty(t, removed, "-0.35 + 1.4 overshoots the budget and is skipped")
}

func TestSelectRemovalsStopsAtBudget(t *testing.T) {
	candidates := RemovalCandidates(chess.White)

	for seed := int64(0); seed < 50; seed++ {
		removed := SelectRemovals(4.0, candidates, newRng(seed))
		sum := 0.0
		for _, sq := range removed {
			for _, c := range candidates {
				if c.Square == sq {
					sum += c.Value
				}
			}
		}
		// Each accepted candidate kept the running sum below the budget, so
		// the removed value can exceed it by at most the fill bias.
		assert.Less(t, sum+fillBias-1e-9, 4.0, "seed %d removed too much material", seed)
	}
}

func TestSelectRemovalsDoesNotMutateInput(t *testing.T) {
	candidates := RemovalCandidates(chess.White)
	original := make([]Candidate, len(candidates))
	copy(original, candidates)

	SelectRemovals(8, candidates, newRng(11))
	assert.Equal(t, original, candidates)
}
