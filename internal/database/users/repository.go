// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.Create("Ana", "ana@ejemplo.com")
package users

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/filmoteca/peliculas-api/internal/database"
	"github.com/filmoteca/peliculas-api/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpdateParams holds the optional fields for a partial user update.
// Nil fields are left untouched.
type UpdateParams struct {
	Name  *string
	Email *string
}

// Create stores a new user. Emails are stored lowercase and must be unique;
// a taken email returns database.ErrDuplicate.
func (r *Repository) Create(name, email string) (*entities.User, error) {
	email = strings.ToLower(email)

	var existing entities.User
	err := r.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, database.ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &entities.User{
		Name:  name,
		Email: email,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by ID.
func (r *Repository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns one page of users ordered by ID, with the total row count.
func (r *Repository) List(page, pageSize int) ([]entities.User, int64, error) {
	var total int64
	if err := r.db.Model(&entities.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := []entities.User{}
	err := r.db.Order("id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&users).Error
	return users, total, err
}

// Update applies a partial update. Changing the email re-checks uniqueness
// against other users.
func (r *Repository) Update(id uint, params UpdateParams) (*entities.User, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if params.Email != nil {
		email := strings.ToLower(*params.Email)
		if email != user.Email {
			var existing entities.User
			err := r.db.Where("email = ? AND id <> ?", email, id).First(&existing).Error
			if err == nil {
				return nil, database.ErrDuplicate
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		user.Email = email
	}
	if params.Name != nil {
		user.Name = *params.Name
	}

	if err := r.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user and all of their favorite links in one transaction.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user entities.User
		err := tx.First(&user, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return database.ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
