// Package repository provides data access layer implementations for the application.
package repository

import (
	"skillswap/internal/database"

	"gorm.io/gorm"
)

// readDB returns the read-replica handle when one is configured. Scoring,
// history and list reads tolerate replica staleness; mutations always go to
// the primary.
func readDB(primary *gorm.DB) *gorm.DB {
	if db := database.GetReadDB(); db != nil {
		return db
	}
	return primary
}
