// Package seed provides the built-in skill catalog and demo data helpers for
// development and testing.
package seed

import (
	"fmt"

	"skillswap/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInSkill is a permanent catalog entry.
type BuiltInSkill struct {
	Name     string
	Category string
}

// BuiltInSkills defines the permanent skill catalog. Entries are immutable
// once seeded; new skills may be appended in later releases.
var BuiltInSkills = []BuiltInSkill{
	// Programming
	{Name: "Python", Category: "Programming"},
	{Name: "JavaScript", Category: "Programming"},
	{Name: "Go", Category: "Programming"},
	{Name: "Rust", Category: "Programming"},
	{Name: "SQL", Category: "Programming"},
	{Name: "Web Development", Category: "Programming"},
	{Name: "Mobile Development", Category: "Programming"},
	{Name: "Machine Learning", Category: "Programming"},

	// Languages
	{Name: "Spanish", Category: "Languages"},
	{Name: "French", Category: "Languages"},
	{Name: "German", Category: "Languages"},
	{Name: "Japanese", Category: "Languages"},
	{Name: "Mandarin", Category: "Languages"},
	{Name: "Italian", Category: "Languages"},
	{Name: "Portuguese", Category: "Languages"},

	// Academics
	{Name: "Mathematics", Category: "Academics"},
	{Name: "Physics", Category: "Academics"},
	{Name: "Chemistry", Category: "Academics"},
	{Name: "Biology", Category: "Academics"},
	{Name: "History", Category: "Academics"},
	{Name: "Creative Writing", Category: "Academics"},
	{Name: "Public Speaking", Category: "Academics"},

	// Music
	{Name: "Guitar", Category: "Music"},
	{Name: "Piano", Category: "Music"},
	{Name: "Violin", Category: "Music"},
	{Name: "Drums", Category: "Music"},
	{Name: "Singing", Category: "Music"},
	{Name: "Music Production", Category: "Music"},

	// Art
	{Name: "Drawing", Category: "Art"},
	{Name: "Painting", Category: "Art"},
	{Name: "Photography", Category: "Art"},
	{Name: "Graphic Design", Category: "Art"},
	{Name: "Pottery", Category: "Art"},

	// Sports
	{Name: "Tennis", Category: "Sports"},
	{Name: "Swimming", Category: "Sports"},
	{Name: "Yoga", Category: "Sports"},
	{Name: "Rock Climbing", Category: "Sports"},
	{Name: "Martial Arts", Category: "Sports"},
	{Name: "Running", Category: "Sports"},

	// Lifestyle
	{Name: "Cooking", Category: "Lifestyle"},
	{Name: "Baking", Category: "Lifestyle"},
	{Name: "Gardening", Category: "Lifestyle"},
	{Name: "Chess", Category: "Lifestyle"},
	{Name: "Personal Finance", Category: "Lifestyle"},
	{Name: "Meditation", Category: "Lifestyle"},
}

// Skills seeds the built-in skill catalog. Re-running is a no-op for entries
// that already exist, so it is safe on every boot.
func Skills(db *gorm.DB) error {
	for _, item := range BuiltInSkills {
		skill := models.Skill{
			Name:     item.Name,
			Category: item.Category,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&skill).Error; err != nil {
			return fmt.Errorf("seed built-in skill %s: %w", item.Name, err)
		}
	}
	return nil
}
