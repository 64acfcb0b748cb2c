package database

import (
	"testing"

	"skillswap/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}

	assert.NoError(t, configurePool(db, cfg))

	// Zero values fall back to defaults rather than disabling the pool.
	assert.NoError(t, configurePool(db, &config.Config{}))
}

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.Config
		wantSQL     bool
		wantAuto    bool
		expectError bool
	}{
		{"Hybrid in development", config.Config{DBSchemaMode: "hybrid", Env: "development"}, true, true, false},
		{"Hybrid in production", config.Config{DBSchemaMode: "hybrid", Env: "production"}, true, false, false},
		{"Empty mode defaults to hybrid", config.Config{Env: "development"}, true, true, false},
		{"SQL only", config.Config{DBSchemaMode: "sql", Env: "production"}, true, false, false},
		{"Auto in development", config.Config{DBSchemaMode: "auto", Env: "development"}, false, true, false},
		{"Auto in production refused", config.Config{DBSchemaMode: "auto", Env: "production"}, false, false, true},
		{"Auto in production with override", config.Config{DBSchemaMode: "auto", Env: "production", DBAutoMigrateAllowDestructive: true}, false, true, false},
		{"Unknown mode", config.Config{DBSchemaMode: "yolo", Env: "development"}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runSQL, runAuto, err := schemaPolicy(&tt.cfg)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, runSQL)
			assert.Equal(t, tt.wantAuto, runAuto)
		})
	}
}

func TestRegisteredMigrationsWellFormed(t *testing.T) {
	ms := GetMigrations()
	require.NotEmpty(t, ms)

	seen := make(map[int]bool)
	for _, m := range ms {
		assert.False(t, seen[m.Version], "duplicate migration version %d", m.Version)
		seen[m.Version] = true
		assert.NotEmpty(t, m.UpScript)
		assert.NotEmpty(t, m.DownScript)
	}
}
