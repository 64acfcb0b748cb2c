// Package matching implements the compatibility scoring and recommendation
// selection engine. It is pure: no I/O, no store access, everything operates
// on in-memory profiles handed in by the caller.
package matching

import (
	"math"
)

// RatedSkill is one declared (skill, level) relation.
type RatedSkill struct {
	SkillID uint
	Label   string
	Level   int
}

// Profile holds one user's declared taught skills and wanted skills.
type Profile struct {
	Skills    []RatedSkill // can teach
	Interests []RatedSkill // wants to learn
}

// Result is the unnormalized compatibility between two users.
type Result struct {
	RawScore     int
	CommonLabels []string
	IsMutual     bool
}

// mutualBonus rewards two-way fits: both users have something the other wants.
const mutualBonus = 1.3

// Weight converts a declared level into its score weight. Growth is convex:
// high proficiency or desire is worth disproportionately more than low.
// Any level outside the declared 1..3 range falls back to the lowest weight.
func Weight(level int) int {
	switch level {
	case 3:
		return 5
	case 2:
		return 3
	default:
		return 1
	}
}

// Score computes the compatibility of mine toward theirs. Forward matches
// (skills they teach that I want) accumulate additively; any reverse overlap
// (skills I teach that they want) marks the pair mutual and scales the total.
func Score(mine, theirs Profile) Result {
	theirSkills := make(map[uint]RatedSkill, len(theirs.Skills))
	for _, s := range theirs.Skills {
		theirSkills[s.SkillID] = s
	}

	res := Result{CommonLabels: []string{}}
	for _, want := range mine.Interests {
		teach, ok := theirSkills[want.SkillID]
		if !ok {
			continue
		}
		res.RawScore += Weight(want.Level) * Weight(teach.Level)
		res.CommonLabels = append(res.CommonLabels, teach.Label)
	}

	mySkills := make(map[uint]struct{}, len(mine.Skills))
	for _, s := range mine.Skills {
		mySkills[s.SkillID] = struct{}{}
	}
	for _, want := range theirs.Interests {
		if _, ok := mySkills[want.SkillID]; ok {
			res.IsMutual = true
			break
		}
	}

	if res.IsMutual && res.RawScore > 0 {
		res.RawScore = int(math.Round(float64(res.RawScore) * mutualBonus))
	}

	return res
}
