package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines the interface for per-user skill and interest
// declarations.
type ProfileRepository interface {
	GetSkills(ctx context.Context, userID uint) ([]models.RatedSkill, error)
	GetInterests(ctx context.Context, userID uint) ([]models.RatedSkill, error)
	UpsertSkill(ctx context.Context, userID, skillID uint, level models.SkillLevel) error
	UpsertInterest(ctx context.Context, userID, skillID uint, level models.SkillLevel) error
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetSkills(ctx context.Context, userID uint) ([]models.RatedSkill, error) {
	return r.ratedSkills(ctx, "user_skills", userID)
}

func (r *profileRepository) GetInterests(ctx context.Context, userID uint) ([]models.RatedSkill, error) {
	return r.ratedSkills(ctx, "user_interests", userID)
}

func (r *profileRepository) ratedSkills(ctx context.Context, table string, userID uint) ([]models.RatedSkill, error) {
	var rows []models.RatedSkill
	if err := readDB(r.db).WithContext(ctx).
		Table(table+" rel").
		Select("rel.skill_id, s.name AS label, rel.level").
		Joins("JOIN skills s ON s.id = rel.skill_id").
		Where("rel.user_id = ?", userID).
		Order("rel.skill_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}

// UpsertSkill stores the declared teach level; level 0 deletes the relation.
func (r *profileRepository) UpsertSkill(ctx context.Context, userID, skillID uint, level models.SkillLevel) error {
	if level == 0 {
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND skill_id = ?", userID, skillID).
			Delete(&models.UserSkill{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	rel := models.UserSkill{UserID: userID, SkillID: skillID, Level: level}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"level"}),
		}).
		Create(&rel).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpsertInterest stores the declared desire level; level 0 deletes the relation.
func (r *profileRepository) UpsertInterest(ctx context.Context, userID, skillID uint, level models.SkillLevel) error {
	if level == 0 {
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND skill_id = ?", userID, skillID).
			Delete(&models.UserInterest{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	rel := models.UserInterest{UserID: userID, SkillID: skillID, Level: level}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"level"}),
		}).
		Create(&rel).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
