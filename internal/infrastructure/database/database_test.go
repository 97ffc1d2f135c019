package database

import (
	"testing"

	"clinic-dashboard/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAutoMigrate_CreatesPreferenceTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable(&domain.UserPreference{}))
	assert.True(t, db.Migrator().HasColumn(&domain.UserPreference{}, "pref_key"))
}

func TestPinger(t *testing.T) {
	var nilPinger *Pinger
	assert.NoError(t, nilPinger.Ping())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	assert.NoError(t, (&Pinger{DB: db}).Ping())
}
