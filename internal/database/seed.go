package database

import (
	"fmt"
	"log"

	"github.com/filmoteca/peliculas-api/internal/entities"
)

var sampleUsers = []entities.User{
	{Name: "Ana", Email: "ana@ejemplo.com"},
	{Name: "Carlos", Email: "carlos@ejemplo.com"},
}

var sampleMovies = []entities.Movie{
	{Title: "El Padrino", Director: "Francis Ford Coppola", Genre: "Drama", Duration: 175, Year: 1972, Rating: "R"},
	{Title: "El Señor de los Anillos", Director: "Peter Jackson", Genre: "Fantasía, Aventura", Duration: 178, Year: 2001, Rating: "PG-13"},
}

// SeedSampleData populates the database with a couple of users, movies and
// favorite links for local development. It is a no-op when users already
// exist, so running it twice is safe.
func (d *Database) SeedSampleData() error {
	var count int64
	if err := d.DB.Model(&entities.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		log.Printf("Database already has %d users, skipping seed", count)
		return nil
	}

	users := make([]entities.User, len(sampleUsers))
	copy(users, sampleUsers)
	if err := d.DB.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	movies := make([]entities.Movie, len(sampleMovies))
	copy(movies, sampleMovies)
	if err := d.DB.Create(&movies).Error; err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	favorites := []entities.Favorite{
		{UserID: users[0].ID, MovieID: movies[0].ID},
		{UserID: users[0].ID, MovieID: movies[1].ID},
		{UserID: users[1].ID, MovieID: movies[1].ID},
	}
	if err := d.DB.Create(&favorites).Error; err != nil {
		return fmt.Errorf("failed to seed favorites: %w", err)
	}

	log.Printf("Seeded %d users, %d movies, %d favorites", len(users), len(movies), len(favorites))
	return nil
}
