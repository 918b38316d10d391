package entities

import (
	"time"
)

// Movie is a catalog record. Duration is in minutes, Year is the release
// year (cinema starts in 1888), Rating holds classifications like "PG-13".
type Movie struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"index;size:200" json:"titulo"`
	Director  string     `gorm:"size:150" json:"director"`
	Genre     string     `gorm:"size:100" json:"genero"`
	Duration  int        `json:"duracion"`
	Year      int        `json:"año"`
	Rating    string     `gorm:"size:10" json:"clasificacion"`
	Synopsis  string     `gorm:"size:1000" json:"sinopsis,omitempty"`
	CreatedAt time.Time  `json:"fecha_creacion"`
	Favorites []Favorite `gorm:"foreignKey:MovieID" json:"-"`
}
