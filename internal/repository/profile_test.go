package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_UpsertAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "gina")
	guitar := createTestSkill(t, db, "Acoustic Guitar", "Music")
	python := createTestSkill(t, db, "Python", "Programming")

	t.Run("insert then read back", func(t *testing.T) {
		require.NoError(t, repo.UpsertSkill(ctx, user.ID, guitar.ID, models.SkillLevelHigh))
		require.NoError(t, repo.UpsertInterest(ctx, user.ID, python.ID, models.SkillLevelMid))

		skills, err := repo.GetSkills(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, skills, 1)
		assert.Equal(t, guitar.ID, skills[0].SkillID)
		assert.Equal(t, "Acoustic Guitar", skills[0].Label)
		assert.Equal(t, models.SkillLevelHigh, skills[0].Level)

		interests, err := repo.GetInterests(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, interests, 1)
		assert.Equal(t, models.SkillLevelMid, interests[0].Level)
	})

	t.Run("upsert overwrites level", func(t *testing.T) {
		require.NoError(t, repo.UpsertSkill(ctx, user.ID, guitar.ID, models.SkillLevelLow))

		skills, err := repo.GetSkills(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, skills, 1)
		assert.Equal(t, models.SkillLevelLow, skills[0].Level)
	})

	t.Run("level zero deletes the relation", func(t *testing.T) {
		require.NoError(t, repo.UpsertSkill(ctx, user.ID, guitar.ID, 0))

		skills, err := repo.GetSkills(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, skills)
	})

	t.Run("same skill may be taught and wanted", func(t *testing.T) {
		require.NoError(t, repo.UpsertSkill(ctx, user.ID, python.ID, models.SkillLevelMid))
		// Interest at python already exists from the first subtest.
		skills, err := repo.GetSkills(ctx, user.ID)
		require.NoError(t, err)
		interests, err := repo.GetInterests(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, skills, 1)
		assert.Len(t, interests, 1)
	})
}

func TestSkillRepository_CatalogWithLevels(t *testing.T) {
	db := setupTestDB(t)
	skills := NewSkillRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "hana")
	guitar := createTestSkill(t, db, "Electric Guitar", "Music")
	chess := createTestSkill(t, db, "Chess", "Lifestyle")

	require.NoError(t, profiles.UpsertSkill(ctx, user.ID, guitar.ID, models.SkillLevelHigh))
	require.NoError(t, profiles.UpsertInterest(ctx, user.ID, guitar.ID, models.SkillLevelLow))

	rows, err := skills.CatalogWithLevels(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[uint]models.SkillWithLevels{}
	for _, r := range rows {
		byID[r.ID] = r
	}
	assert.Equal(t, models.SkillLevelHigh, byID[guitar.ID].TeachLevel)
	assert.Equal(t, models.SkillLevelLow, byID[guitar.ID].InterestLevel)
	assert.Equal(t, models.SkillLevel(0), byID[chess.ID].TeachLevel)
	assert.Equal(t, models.SkillLevel(0), byID[chess.ID].InterestLevel)
}

func TestSkillRepository_GetAllAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateBatch(ctx, []models.Skill{
		{Name: "Running", Category: "Sports"},
		{Name: "Baking", Category: "Lifestyle"},
	}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
