// Package movies provides database operations for the movie catalog.
package movies

import (
	"errors"

	"gorm.io/gorm"

	"github.com/filmoteca/peliculas-api/internal/database"
	"github.com/filmoteca/peliculas-api/internal/entities"
)

// Repository handles all movie database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new movies repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpdateParams holds the optional fields for a partial movie update.
type UpdateParams struct {
	Title    *string
	Director *string
	Genre    *string
	Duration *int
	Year     *int
	Rating   *string
	Synopsis *string
}

// Create stores a new movie.
func (r *Repository) Create(movie *entities.Movie) error {
	return r.db.Create(movie).Error
}

// GetByID retrieves a movie by ID.
func (r *Repository) GetByID(id uint) (*entities.Movie, error) {
	var movie entities.Movie
	err := r.db.First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// List returns one page of movies ordered by ID, with the total row count.
func (r *Repository) List(page, pageSize int) ([]entities.Movie, int64, error) {
	var total int64
	if err := r.db.Model(&entities.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	movies := []entities.Movie{}
	err := r.db.Order("id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&movies).Error
	return movies, total, err
}

// Update applies a partial update, leaving nil fields untouched.
func (r *Repository) Update(id uint, params UpdateParams) (*entities.Movie, error) {
	movie, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		movie.Title = *params.Title
	}
	if params.Director != nil {
		movie.Director = *params.Director
	}
	if params.Genre != nil {
		movie.Genre = *params.Genre
	}
	if params.Duration != nil {
		movie.Duration = *params.Duration
	}
	if params.Year != nil {
		movie.Year = *params.Year
	}
	if params.Rating != nil {
		movie.Rating = *params.Rating
	}
	if params.Synopsis != nil {
		movie.Synopsis = *params.Synopsis
	}

	if err := r.db.Save(movie).Error; err != nil {
		return nil, err
	}
	return movie, nil
}

// Delete removes a movie and every favorite link pointing at it in one
// transaction, so no orphaned rows are left behind.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var movie entities.Movie
		err := tx.First(&movie, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return database.ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Where("movie_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&movie).Error
	})
}
