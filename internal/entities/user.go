package entities

import (
	"time"
)

// User is a registered account that can mark movies as favorites.
// JSON field names follow the public (Spanish) API contract.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"index;size:100" json:"nombre"`
	Email     string     `gorm:"uniqueIndex;size:150" json:"correo"`
	CreatedAt time.Time  `json:"fecha_registro"`
	Favorites []Favorite `gorm:"foreignKey:UserID" json:"-"`
}
