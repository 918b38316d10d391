// Package favorites provides database operations for the user-movie
// favorite relationship.
//
// # Usage
//
//	repo := favorites.NewRepository(db)
//	movies, total, err := repo.ListMoviesByUser(userID, 1, 10)
package favorites

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/filmoteca/peliculas-api/internal/database"
	"github.com/filmoteca/peliculas-api/internal/entities"
)

// Repository handles all favorites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favorites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GenreCount is one entry of a user's genre preference ranking.
type GenreCount struct {
	Genre string `json:"genero"`
	Count int    `json:"cantidad"`
}

// UserStats aggregates a user's favorite movies.
type UserStats struct {
	UserID         uint         `json:"usuario_id"`
	TotalFavorites int          `json:"total_peliculas_favoritas"`
	TopGenres      []GenreCount `json:"generos_preferidos"`
	TotalMinutes   int          `json:"tiempo_total_minutos"`
}

// Create links a user to a movie. Both rows must exist
// (database.ErrNotFound otherwise) and the pair must be new
// (database.ErrDuplicate otherwise).
func (r *Repository) Create(userID, movieID uint) (*entities.Favorite, error) {
	var favorite *entities.Favorite

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := checkExists(tx, &entities.User{}, userID); err != nil {
			return err
		}
		if err := checkExists(tx, &entities.Movie{}, movieID); err != nil {
			return err
		}

		var existing entities.Favorite
		err := tx.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&existing).Error
		if err == nil {
			return database.ErrDuplicate
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		favorite = &entities.Favorite{UserID: userID, MovieID: movieID}
		return tx.Create(favorite).Error
	})
	if err != nil {
		return nil, err
	}
	return favorite, nil
}

// Delete unlinks a (user, movie) pair.
func (r *Repository) Delete(userID, movieID uint) error {
	result := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&entities.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// GetByID retrieves a favorite link by its own ID.
func (r *Repository) GetByID(id uint) (*entities.Favorite, error) {
	var favorite entities.Favorite
	err := r.db.First(&favorite, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// DeleteByID removes a favorite link by its own ID.
func (r *Repository) DeleteByID(id uint) error {
	result := r.db.Delete(&entities.Favorite{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// List returns one page of favorite links ordered by ID, with the total
// row count.
func (r *Repository) List(page, pageSize int) ([]entities.Favorite, int64, error) {
	var total int64
	if err := r.db.Model(&entities.Favorite{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	favorites := []entities.Favorite{}
	err := r.db.Order("id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&favorites).Error
	return favorites, total, err
}

// ListMoviesByUser returns one page of the movies a user has favorited,
// ordered by when the favorite was added, plus the total count. The user
// must exist.
func (r *Repository) ListMoviesByUser(userID uint, page, pageSize int) ([]entities.Movie, int64, error) {
	if err := checkExists(r.db, &entities.User{}, userID); err != nil {
		return nil, 0, err
	}

	var total int64
	err := r.db.Model(&entities.Favorite{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	movies := []entities.Movie{}
	err = r.db.Model(&entities.Movie{}).
		Joins("JOIN favorites ON favorites.movie_id = movies.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&movies).Error
	return movies, total, err
}

// StatsForUser aggregates favorite count, top three genres and total
// runtime over all of a user's favorite movies.
func (r *Repository) StatsForUser(userID uint) (*UserStats, error) {
	if err := checkExists(r.db, &entities.User{}, userID); err != nil {
		return nil, err
	}

	movies := []entities.Movie{}
	err := r.db.Model(&entities.Movie{}).
		Joins("JOIN favorites ON favorites.movie_id = movies.id").
		Where("favorites.user_id = ?", userID).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		UserID:         userID,
		TotalFavorites: len(movies),
		TopGenres:      []GenreCount{},
	}

	genreCounts := make(map[string]int)
	for _, movie := range movies {
		stats.TotalMinutes += movie.Duration
		for _, genre := range strings.Split(movie.Genre, ",") {
			genre = strings.TrimSpace(genre)
			if genre != "" {
				genreCounts[genre]++
			}
		}
	}

	for genre, count := range genreCounts {
		stats.TopGenres = append(stats.TopGenres, GenreCount{Genre: genre, Count: count})
	}
	sort.Slice(stats.TopGenres, func(i, j int) bool {
		if stats.TopGenres[i].Count != stats.TopGenres[j].Count {
			return stats.TopGenres[i].Count > stats.TopGenres[j].Count
		}
		return stats.TopGenres[i].Genre < stats.TopGenres[j].Genre
	})
	if len(stats.TopGenres) > 3 {
		stats.TopGenres = stats.TopGenres[:3]
	}

	return stats, nil
}

func checkExists(tx *gorm.DB, model any, id uint) error {
	err := tx.First(model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.ErrNotFound
	}
	return err
}
