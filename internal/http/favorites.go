package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmoteca/peliculas-api/internal/database"
	"github.com/filmoteca/peliculas-api/internal/database/favorites"
	"github.com/filmoteca/peliculas-api/internal/entities"
)

// FavoritesStore defines database operations for favorite management.
type FavoritesStore interface {
	Create(userID, movieID uint) (*entities.Favorite, error)
	Delete(userID, movieID uint) error
	GetByID(id uint) (*entities.Favorite, error)
	DeleteByID(id uint) error
	List(page, pageSize int) ([]entities.Favorite, int64, error)
	ListMoviesByUser(userID uint, page, pageSize int) ([]entities.Movie, int64, error)
	StatsForUser(userID uint) (*favorites.UserStats, error)
}

type FavoritesController struct {
	store FavoritesStore
}

func NewFavoritesController(store FavoritesStore) *FavoritesController {
	return &FavoritesController{store: store}
}

type createFavoriteRequest struct {
	UserID  uint `json:"id_usuario" binding:"required,gt=0"`
	MovieID uint `json:"id_pelicula" binding:"required,gt=0"`
}

// ListByUser returns a page of the movies a user has favorited.
// GET /api/usuarios/:id/favoritos
func (fc *FavoritesController) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	movies, total, err := fc.store.ListMoviesByUser(userID, page, pageSize)
	if err != nil {
		respondStoreError(c, err, "user", "list user favorites")
		return
	}

	c.JSON(http.StatusOK, newPaginatedResponse(movies, total, page, pageSize))
}

// Mark links a movie to a user via the nested route.
// POST /api/usuarios/:id/favoritos/:peliculaID
func (fc *FavoritesController) Mark(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "peliculaID")
	if !ok {
		return
	}

	favorite, err := fc.store.Create(userID, movieID)
	if err != nil {
		respondFavoriteCreateError(c, err)
		return
	}

	respondCreated(c, favorite)
}

// respondFavoriteCreateError distinguishes a missing referenced row (404)
// from an already existing pair (409).
func respondFavoriteCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondNotFound(c, "user or movie")
	case errors.Is(err, database.ErrDuplicate):
		respondConflict(c, "movie is already a favorite for this user")
	default:
		respondInternalError(c, err, "create favorite")
	}
}

// Unmark removes the link between a user and a movie.
// DELETE /api/usuarios/:id/favoritos/:peliculaID
func (fc *FavoritesController) Unmark(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "peliculaID")
	if !ok {
		return
	}

	if err := fc.store.Delete(userID, movieID); err != nil {
		respondStoreError(c, err, "favorite", "unmark favorite")
		return
	}

	respondNoContent(c)
}

// Stats returns aggregates over a user's favorite movies.
// GET /api/usuarios/:id/estadisticas
func (fc *FavoritesController) Stats(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := fc.store.StatsForUser(userID)
	if err != nil {
		respondStoreError(c, err, "user", "user stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// List returns a page of favorite links.
// GET /api/favoritos
func (fc *FavoritesController) List(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	favoriteList, total, err := fc.store.List(page, pageSize)
	if err != nil {
		respondInternalError(c, err, "list favorites")
		return
	}

	c.JSON(http.StatusOK, newPaginatedResponse(favoriteList, total, page, pageSize))
}

// Create links a user to a movie from a JSON body.
// POST /api/favoritos
func (fc *FavoritesController) Create(c *gin.Context) {
	var req createFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	favorite, err := fc.store.Create(req.UserID, req.MovieID)
	if err != nil {
		respondFavoriteCreateError(c, err)
		return
	}

	respondCreated(c, favorite)
}

// Get returns a favorite link by its own ID.
// GET /api/favoritos/:id
func (fc *FavoritesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	favorite, err := fc.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "favorite", "get favorite")
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// Delete removes a favorite link by its own ID.
// DELETE /api/favoritos/:id
func (fc *FavoritesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.store.DeleteByID(id); err != nil {
		respondStoreError(c, err, "favorite", "delete favorite")
		return
	}

	respondNoContent(c)
}
