package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines the interface for skill catalog operations. The
// catalog is read-only after seeding.
type SkillRepository interface {
	GetAll(ctx context.Context) ([]models.Skill, error)
	Exists(ctx context.Context, skillID uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, skills []models.Skill) error
	CatalogWithLevels(ctx context.Context, userID uint) ([]models.SkillWithLevels, error)
}

// skillRepository implements SkillRepository
type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) GetAll(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := readDB(r.db).WithContext(ctx).Order("id ASC").Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

func (r *skillRepository) Exists(ctx context.Context, skillID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Skill{}).
		Where("id = ?", skillID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *skillRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Skill{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *skillRepository) CreateBatch(ctx context.Context, skills []models.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&skills).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) CatalogWithLevels(ctx context.Context, userID uint) ([]models.SkillWithLevels, error) {
	var rows []models.SkillWithLevels

	// Left joins so every catalog entry appears, with 0 for undeclared levels.
	if err := readDB(r.db).WithContext(ctx).
		Table("skills s").
		Select(`s.id, s.name, s.category,
			COALESCE(us.level, 0) AS teach_level,
			COALESCE(ui.level, 0) AS interest_level`).
		Joins("LEFT JOIN user_skills us ON us.skill_id = s.id AND us.user_id = ?", userID).
		Joins("LEFT JOIN user_interests ui ON ui.skill_id = s.id AND ui.user_id = ?", userID).
		Order("s.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}
