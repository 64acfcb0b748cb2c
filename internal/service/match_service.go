package service

import (
	"context"
	"math/rand"
	"time"

	"skillswap/internal/cache"
	"skillswap/internal/matching"
	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
)

// Recommendation is one entry of the ranked recommendation list.
type Recommendation struct {
	CandidateID       uint               `json:"candidate_id"`
	Candidate         models.UserSummary `json:"candidate"`
	MatchPercentage   int                `json:"match_percentage"`
	CommonSkillLabels []string           `json:"common_skill_labels"`
	IsMutual          bool               `json:"is_mutual"`
	IsExploration     bool               `json:"is_exploration"`
}

// MatchService orchestrates profile reads, scoring and selection into
// recommendation lists.
type MatchService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	friendRepo  repository.FriendRepository
	newRNG      func() *rand.Rand
}

// NewMatchService returns a new MatchService. newRNG provides the randomness
// source for the exploration slot; pass nil for a time-seeded default. Tests
// inject a fixed seed to pin the shuffle.
func NewMatchService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	friendRepo repository.FriendRepository,
	newRNG func() *rand.Rand,
) *MatchService {
	if newRNG == nil {
		newRNG = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &MatchService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		friendRepo:  friendRepo,
		newRNG:      newRNG,
	}
}

// ComputeMatches scores every eligible candidate against the user and applies
// the selection policy. Candidates already sharing an edge with the user, of
// any status and in either direction, never appear. Results are cached
// briefly; declaration and friendship changes invalidate the entry.
func (s *MatchService) ComputeMatches(ctx context.Context, userID uint) ([]Recommendation, error) {
	var recs []Recommendation
	err := cache.Aside(ctx, cache.RecommendationsKey(userID), &recs, cache.RecommendationsTTL, func() error {
		var computeErr error
		recs, computeErr = s.computeMatches(ctx, userID)
		return computeErr
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *MatchService) computeMatches(ctx context.Context, userID uint) ([]Recommendation, error) {
	defer observability.TrackMatchComputation()()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	mine, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidateIDs, err := s.userRepo.ListIDsExcept(ctx, userID)
	if err != nil {
		return nil, err
	}
	connected, err := s.friendRepo.ConnectedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	excluded := make(map[uint]bool, len(connected))
	for _, id := range connected {
		excluded[id] = true
	}

	pool := make([]matching.Candidate, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if excluded[id] {
			continue
		}
		theirs, err := s.loadProfile(ctx, id)
		if err != nil {
			return nil, err
		}
		pool = append(pool, matching.Candidate{
			UserID: id,
			Result: matching.Score(mine, theirs),
		})
	}

	selected := matching.SelectRecommendations(pool, s.newRNG())

	recs := make([]Recommendation, 0, len(selected))
	for _, c := range selected {
		user, err := s.userRepo.GetByID(ctx, c.UserID)
		if err != nil {
			return nil, err
		}
		kind := "active"
		if c.IsExploration {
			kind = "exploration"
		}
		observability.RecommendationsServed.WithLabelValues(kind).Inc()
		recs = append(recs, Recommendation{
			CandidateID:       c.UserID,
			Candidate:         user.Summary(),
			MatchPercentage:   matching.MatchPercentage(c.Result.RawScore),
			CommonSkillLabels: c.Result.CommonLabels,
			IsMutual:          c.Result.IsMutual,
			IsExploration:     c.IsExploration,
		})
	}
	return recs, nil
}

func (s *MatchService) loadProfile(ctx context.Context, userID uint) (matching.Profile, error) {
	skills, err := s.profileRepo.GetSkills(ctx, userID)
	if err != nil {
		return matching.Profile{}, err
	}
	interests, err := s.profileRepo.GetInterests(ctx, userID)
	if err != nil {
		return matching.Profile{}, err
	}
	return matching.Profile{
		Skills:    toRated(skills),
		Interests: toRated(interests),
	}, nil
}

func toRated(rows []models.RatedSkill) []matching.RatedSkill {
	out := make([]matching.RatedSkill, 0, len(rows))
	for _, r := range rows {
		out = append(out, matching.RatedSkill{
			SkillID: r.SkillID,
			Label:   r.Label,
			Level:   int(r.Level),
		})
	}
	return out
}
