package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmoteca/peliculas-api/internal/entities"
)

func setupDatabase(t *testing.T) (*Database, func()) {
	t.Helper()

	dbPath := "./test_db_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_MigratesTables(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	for _, model := range []any{&entities.User{}, &entities.Movie{}, &entities.Favorite{}} {
		assert.True(t, db.DB.Migrator().HasTable(model))
	}
}

func TestSeedSampleData(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	require.NoError(t, db.SeedSampleData())

	var userCount, movieCount, favoriteCount int64
	db.DB.Model(&entities.User{}).Count(&userCount)
	db.DB.Model(&entities.Movie{}).Count(&movieCount)
	db.DB.Model(&entities.Favorite{}).Count(&favoriteCount)

	assert.Equal(t, int64(2), userCount)
	assert.Equal(t, int64(2), movieCount)
	assert.Equal(t, int64(3), favoriteCount)

	// Running the seed again is a no-op
	require.NoError(t, db.SeedSampleData())
	db.DB.Model(&entities.User{}).Count(&userCount)
	assert.Equal(t, int64(2), userCount)
}
