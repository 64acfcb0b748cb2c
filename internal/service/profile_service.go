package service

import (
	"context"
	"strings"

	"skillswap/internal/cache"
	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// ProfileService provides user profile and skill declaration business logic.
type ProfileService struct {
	userRepo    repository.UserRepository
	skillRepo   repository.SkillRepository
	profileRepo repository.ProfileRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, skillRepo repository.SkillRepository, profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		skillRepo:   skillRepo,
		profileRepo: profileRepo,
	}
}

// GetUser returns a user's profile.
func (s *ProfileService) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateProfile updates the user's public profile fields.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Bio = strings.TrimSpace(in.Bio)
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	cache.InvalidateUser(ctx, userID)
	return user, nil
}

// Catalog returns the full skill catalog. The catalog is immutable after
// seeding, so it is served cache-aside with a generous TTL.
func (s *ProfileService) Catalog(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := cache.Aside(ctx, cache.CatalogKey(), &skills, cache.CatalogTTL, func() error {
		var fetchErr error
		skills, fetchErr = s.skillRepo.GetAll(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return skills, nil
}

// CatalogForUser returns every catalog entry annotated with the caller's
// declared teach and interest levels.
func (s *ProfileService) CatalogForUser(ctx context.Context, userID uint) ([]models.SkillWithLevels, error) {
	return s.skillRepo.CatalogWithLevels(ctx, userID)
}

// SetSkill declares (or, at level 0, removes) a taught skill.
func (s *ProfileService) SetSkill(ctx context.Context, userID, skillID uint, level models.SkillLevel) error {
	if err := s.validateDeclaration(ctx, skillID, level); err != nil {
		return err
	}
	if err := s.profileRepo.UpsertSkill(ctx, userID, skillID, level); err != nil {
		return err
	}
	cache.InvalidateRecommendations(ctx, userID)
	return nil
}

// SetInterest declares (or, at level 0, removes) a wanted skill.
func (s *ProfileService) SetInterest(ctx context.Context, userID, skillID uint, level models.SkillLevel) error {
	if err := s.validateDeclaration(ctx, skillID, level); err != nil {
		return err
	}
	if err := s.profileRepo.UpsertInterest(ctx, userID, skillID, level); err != nil {
		return err
	}
	cache.InvalidateRecommendations(ctx, userID)
	return nil
}

func (s *ProfileService) validateDeclaration(ctx context.Context, skillID uint, level models.SkillLevel) error {
	if level != 0 && !level.Valid() {
		return models.NewValidationError("Level must be between 0 and 3")
	}
	exists, err := s.skillRepo.Exists(ctx, skillID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("Skill", skillID)
	}
	return nil
}
