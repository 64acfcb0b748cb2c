package matching

import (
	"math"
	"math/rand"
	"sort"
)

// Candidate pairs a user with their score against the caller.
type Candidate struct {
	UserID        uint
	Result        Result
	IsExploration bool
}

const (
	maxRecommendations = 3
	topActiveCount     = 2

	// explorationCeiling bounds the raw score of candidates eligible for the
	// serendipity slot; zero-score candidates are deliberately included.
	explorationCeiling = 5

	percentScale = 40
	percentCap   = 99
	percentFloor = 10
)

// MatchPercentage normalizes a raw score to a 0-99 display value. Any genuine
// overlap is guaranteed a non-zero percentage.
func MatchPercentage(raw int) int {
	if raw <= 0 {
		return 0
	}
	pct := int(math.Round(float64(raw) / percentScale * 100))
	if pct > percentCap {
		pct = percentCap
	}
	if pct == 0 {
		pct = percentFloor
	}
	return pct
}

// SelectRecommendations applies the ranking and diversity policy to a scored
// pool. The top two slots are deterministic: highest raw scores, descending,
// ties kept in pool order. The third slot takes a randomized low-score
// candidate (flagged IsExploration) to surface discovery beyond the top
// matches, backfilling with the third-best active candidate when the
// exploration set is exhausted. The pool must already exclude the caller and
// anyone connected with them.
func SelectRecommendations(pool []Candidate, rng *rand.Rand) []Candidate {
	active := make([]Candidate, 0, len(pool))
	exploration := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if c.Result.RawScore > 0 {
			active = append(active, c)
		}
		if c.Result.RawScore <= explorationCeiling {
			exploration = append(exploration, c)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Result.RawScore > active[j].Result.RawScore
	})
	if rng != nil {
		rng.Shuffle(len(exploration), func(i, j int) {
			exploration[i], exploration[j] = exploration[j], exploration[i]
		})
	}

	selected := make([]Candidate, 0, maxRecommendations)
	taken := make(map[uint]bool, maxRecommendations)
	for _, c := range active {
		if len(selected) == topActiveCount {
			break
		}
		selected = append(selected, c)
		taken[c.UserID] = true
	}

	for _, c := range exploration {
		if taken[c.UserID] {
			continue
		}
		c.IsExploration = true
		selected = append(selected, c)
		return selected
	}

	// No unselected exploration candidate: backfill with the next active one.
	for _, c := range active {
		if taken[c.UserID] {
			continue
		}
		selected = append(selected, c)
		break
	}
	return selected
}
