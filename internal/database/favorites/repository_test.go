package favorites

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/filmoteca/peliculas-api/internal/database"
	"github.com/filmoteca/peliculas-api/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_favorites_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Movie{},
		&entities.Favorite{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entities.User {
	user := &entities.User{Name: "Usuario", Email: email}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestMovie(t *testing.T, db *gorm.DB, title, genre string, duration int) *entities.Movie {
	movie := &entities.Movie{
		Title:    title,
		Director: "Director",
		Genre:    genre,
		Duration: duration,
		Year:     2000,
		Rating:   "PG",
	}
	require.NoError(t, db.Create(movie).Error)
	return movie
}

func TestRepository_Create(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "ana@ejemplo.com")
	movie := createTestMovie(t, db, "El Padrino", "Drama", 175)

	favorite, err := repo.Create(user.ID, movie.ID)
	require.NoError(t, err)

	assert.Greater(t, favorite.ID, uint(0))
	assert.Equal(t, user.ID, favorite.UserID)
	assert.Equal(t, movie.ID, favorite.MovieID)
	assert.False(t, favorite.CreatedAt.IsZero())
}

func TestRepository_Create_DuplicatePair(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "ana@ejemplo.com")
	movie := createTestMovie(t, db, "El Padrino", "Drama", 175)

	_, err := repo.Create(user.ID, movie.ID)
	require.NoError(t, err)

	_, err = repo.Create(user.ID, movie.ID)
	assert.ErrorIs(t, err, database.ErrDuplicate)

	// The failed attempt must not have inserted a second row
	var count int64
	db.Model(&entities.Favorite{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRepository_Create_MissingReferences(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "ana@ejemplo.com")
	movie := createTestMovie(t, db, "El Padrino", "Drama", 175)

	_, err := repo.Create(999, movie.ID)
	assert.ErrorIs(t, err, database.ErrNotFound, "missing user")

	_, err = repo.Create(user.ID, 999)
	assert.ErrorIs(t, err, database.ErrNotFound, "missing movie")
}

func TestRepository_Delete(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "ana@ejemplo.com")
	movie := createTestMovie(t, db, "El Padrino", "Drama", 175)

	_, err := repo.Create(user.ID, movie.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(user.ID, movie.ID))
	assert.ErrorIs(t, repo.Delete(user.ID, movie.ID), database.ErrNotFound)
}

func TestRepository_ListMoviesByUser(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	ana := createTestUser(t, db, "ana@ejemplo.com")
	carlos := createTestUser(t, db, "carlos@ejemplo.com")

	padrino := createTestMovie(t, db, "El Padrino", "Drama", 175)
	anillos := createTestMovie(t, db, "El Señor de los Anillos", "Fantasía", 178)
	extra := createTestMovie(t, db, "Otra Película", "Comedia", 90)

	_, err := repo.Create(ana.ID, padrino.ID)
	require.NoError(t, err)
	_, err = repo.Create(ana.ID, anillos.ID)
	require.NoError(t, err)
	_, err = repo.Create(carlos.ID, extra.ID)
	require.NoError(t, err)

	movies, total, err := repo.ListMoviesByUser(ana.ID, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, movies, 2)
	// Ordered by favorite insertion
	assert.Equal(t, "El Padrino", movies[0].Title)
	assert.Equal(t, "El Señor de los Anillos", movies[1].Title)
}

func TestRepository_ListMoviesByUser_Pagination(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "ana@ejemplo.com")
	for i := 0; i < 5; i++ {
		movie := createTestMovie(t, db, fmt.Sprintf("Película %d", i), "Drama", 100)
		_, err := repo.Create(user.ID, movie.ID)
		require.NoError(t, err)
	}

	movies, total, err := repo.ListMoviesByUser(user.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, movies, 2)

	// Page past the end is empty with the same total
	movies, total, err = repo.ListMoviesByUser(user.ID, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, movies)
}

func TestRepository_ListMoviesByUser_UserNotFound(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, _, err := repo.ListMoviesByUser(999, 1, 10)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "ana@ejemplo.com")
	movie := createTestMovie(t, db, "El Padrino", "Drama", 175)
	created, err := repo.Create(user.ID, movie.ID)
	require.NoError(t, err)

	favorites, total, err := repo.List(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, favorites, 1)
	assert.Equal(t, created.ID, favorites[0].ID)
}

func TestRepository_DeleteByID(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "ana@ejemplo.com")
	movie := createTestMovie(t, db, "El Padrino", "Drama", 175)
	created, err := repo.Create(user.ID, movie.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(created.ID))
	assert.ErrorIs(t, repo.DeleteByID(created.ID), database.ErrNotFound)

	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_StatsForUser(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "ana@ejemplo.com")

	drama1 := createTestMovie(t, db, "El Padrino", "Drama", 175)
	drama2 := createTestMovie(t, db, "El Padrino II", "Drama, Crimen", 200)
	fantasy := createTestMovie(t, db, "El Señor de los Anillos", "Fantasía", 178)

	for _, movie := range []*entities.Movie{drama1, drama2, fantasy} {
		_, err := repo.Create(user.ID, movie.ID)
		require.NoError(t, err)
	}

	stats, err := repo.StatsForUser(user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, stats.UserID)
	assert.Equal(t, 3, stats.TotalFavorites)
	assert.Equal(t, 175+200+178, stats.TotalMinutes)
	require.NotEmpty(t, stats.TopGenres)
	assert.Equal(t, GenreCount{Genre: "Drama", Count: 2}, stats.TopGenres[0])
}

func TestRepository_StatsForUser_NoFavorites(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "ana@ejemplo.com")

	stats, err := repo.StatsForUser(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalFavorites)
	assert.Equal(t, 0, stats.TotalMinutes)
	assert.Empty(t, stats.TopGenres)
}
