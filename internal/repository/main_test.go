package repository

import (
	"fmt"
	"testing"

	"skillswap/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserSkill{},
		&models.UserInterest{},
		&models.Friendship{},
		&models.Message{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Name: name, Bio: fmt.Sprintf("bio for %s", name)}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func createTestSkill(t *testing.T, db *gorm.DB, name, category string) *models.Skill {
	t.Helper()
	s := &models.Skill{Name: name, Category: category}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create skill %s: %v", name, err)
	}
	return s
}
