package entities

import (
	"time"
)

// Favorite links one user to one movie they marked. The composite unique
// index keeps a (user, movie) pair from being stored twice.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_movie" json:"id_usuario"`
	MovieID   uint      `gorm:"uniqueIndex:idx_user_movie" json:"id_pelicula"`
	CreatedAt time.Time `json:"fecha_marcado"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Movie Movie `gorm:"foreignKey:MovieID" json:"-"`
}
