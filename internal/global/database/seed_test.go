package database

import (
	"path/filepath"
	"testing"

	"skill-marks-system/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed_test.db")), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Student{}, &model.Event{}, &model.Certificate{}))
	return db
}

func TestSeedPopulatesRosterAndCatalog(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))

	var studentCount, eventCount int64
	require.NoError(t, db.Model(&model.Student{}).Count(&studentCount).Error)
	require.NoError(t, db.Model(&model.Event{}).Count(&eventCount).Error)
	require.EqualValues(t, rosterSize, studentCount)
	require.EqualValues(t, len(eventCatalog), eventCount)

	var first model.Student
	require.NoError(t, db.Where("username = ?", "24UCS001").First(&first).Error)
	require.Equal(t, "24ucs001", first.Password)
	require.Zero(t, first.TotalMarks)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var studentCount, eventCount int64
	require.NoError(t, db.Model(&model.Student{}).Count(&studentCount).Error)
	require.NoError(t, db.Model(&model.Event{}).Count(&eventCount).Error)
	require.EqualValues(t, rosterSize, studentCount)
	require.EqualValues(t, len(eventCatalog), eventCount)
}
