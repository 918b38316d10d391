package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmoteca/peliculas-api/internal/database/movies"
	"github.com/filmoteca/peliculas-api/internal/entities"
)

// MovieStore defines database operations for the movie catalog.
type MovieStore interface {
	Create(movie *entities.Movie) error
	GetByID(id uint) (*entities.Movie, error)
	List(page, pageSize int) ([]entities.Movie, int64, error)
	Update(id uint, params movies.UpdateParams) (*entities.Movie, error)
	Delete(id uint) error
}

type MoviesController struct {
	store MovieStore
}

func NewMoviesController(store MovieStore) *MoviesController {
	return &MoviesController{store: store}
}

type createMovieRequest struct {
	Title    string `json:"titulo" binding:"required,min=1,max=200"`
	Director string `json:"director" binding:"required,min=1,max=150"`
	Genre    string `json:"genero" binding:"required,min=1,max=100"`
	Duration int    `json:"duracion" binding:"required,gt=0"`
	Year     int    `json:"año" binding:"required,gte=1888,lte=2100"`
	Rating   string `json:"clasificacion" binding:"required,max=10"`
	Synopsis string `json:"sinopsis" binding:"omitempty,max=1000"`
}

type updateMovieRequest struct {
	Title    *string `json:"titulo" binding:"omitempty,min=1,max=200"`
	Director *string `json:"director" binding:"omitempty,min=1,max=150"`
	Genre    *string `json:"genero" binding:"omitempty,min=1,max=100"`
	Duration *int    `json:"duracion" binding:"omitempty,gt=0"`
	Year     *int    `json:"año" binding:"omitempty,gte=1888,lte=2100"`
	Rating   *string `json:"clasificacion" binding:"omitempty,max=10"`
	Synopsis *string `json:"sinopsis" binding:"omitempty,max=1000"`
}

// List returns a page of movies.
// GET /api/peliculas
func (mc *MoviesController) List(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	movieList, total, err := mc.store.List(page, pageSize)
	if err != nil {
		respondInternalError(c, err, "list movies")
		return
	}

	c.JSON(http.StatusOK, newPaginatedResponse(movieList, total, page, pageSize))
}

// Create adds a movie to the catalog.
// POST /api/peliculas
func (mc *MoviesController) Create(c *gin.Context) {
	var req createMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	movie := &entities.Movie{
		Title:    req.Title,
		Director: req.Director,
		Genre:    req.Genre,
		Duration: req.Duration,
		Year:     req.Year,
		Rating:   req.Rating,
		Synopsis: req.Synopsis,
	}
	if err := mc.store.Create(movie); err != nil {
		respondInternalError(c, err, "create movie")
		return
	}

	respondCreated(c, movie)
}

// Get returns a single movie.
// GET /api/peliculas/:id
func (mc *MoviesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	movie, err := mc.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "movie", "get movie")
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Update partially updates a movie.
// PUT /api/peliculas/:id
func (mc *MoviesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	movie, err := mc.store.Update(id, movies.UpdateParams{
		Title:    req.Title,
		Director: req.Director,
		Genre:    req.Genre,
		Duration: req.Duration,
		Year:     req.Year,
		Rating:   req.Rating,
		Synopsis: req.Synopsis,
	})
	if err != nil {
		respondStoreError(c, err, "movie", "update movie")
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Delete removes a movie and every favorite link pointing at it.
// DELETE /api/peliculas/:id
func (mc *MoviesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := mc.store.Delete(id); err != nil {
		respondStoreError(c, err, "movie", "delete movie")
		return
	}

	respondNoContent(c)
}
